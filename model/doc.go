// Package model provides the intermediate representation for tabular data
// inferred from document text.
//
// This package defines the user-facing data structures produced by table
// extraction and consumed by report rendering. A Table holds an ordered
// header row and zero or more data rows; every cell is a Value, a tagged
// union of a numeric or textual payload.
//
// The central invariant, enforced at construction time, is that every data
// row has exactly as many cells as the table has headers. Rows that would
// violate the invariant are never stored; they are counted in Table.Dropped
// so callers can report how much input was discarded.
package model
