// Package pdftext recovers the plain-text layer of a PDF document.
//
// Extraction is layout-aware just enough to keep tables detectable
// downstream: text fragments are grouped into visual rows by their Y
// coordinate, ordered by X within a row, and separated by a two-space gap
// wherever the horizontal distance between fragments indicates a column
// boundary. Table inference over the resulting text stream keys on exactly
// those multi-space gaps.
//
// Failures opening or reading a document (malformed, encrypted, truncated)
// are returned to the caller unchanged; this package never reinterprets an
// upstream extraction error.
package pdftext
