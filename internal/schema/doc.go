// Package schema introspects the target table's column metadata from the
// store's live catalog.
//
// Specs are re-fetched at the start of every run and never cached across
// runs, so schema changes between runs are always observed.
package schema
