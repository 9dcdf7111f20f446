// Package load writes eligible records into the target table.
//
// The loader classifies every record before the first write, so the set
// of rows it inserts is decided against the table state as it was at the
// start of the run. Small eligible sets go through per-row INSERTs; sets
// above the bulk threshold go through the PostgreSQL COPY protocol.
package load
