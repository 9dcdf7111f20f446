// Package pipeline orchestrates a full run: separator detection, file
// reading, store connection, schema introspection, validation and load.
//
// The stages execute strictly in that order. Separator detection and file
// reading happen before any connection is opened, so an unreadable file
// never costs a round trip to the store.
package pipeline
