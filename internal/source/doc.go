// Package source reads a delimited text file into ordered records.
//
// The header line defines the field names for the whole file; each data
// line becomes one csvload.Record whose fields keep the file's header
// order. Line numbers are 1-based and count data lines only.
package source
