// Package tables provides table detection and extraction from document text.
//
// This package infers tabular structure from the linear text stream
// recovered from a PDF, where no layout or geometry information survives.
// The detector keys on the one structural signal such text reliably keeps:
// a table renderer's column gaps come through as tab characters or runs of
// two or more whitespace characters.
//
// Lines carrying that signal are candidate rows. The first candidate fixes
// the header row and the column count; later candidates become data rows
// when their cell count matches, and are dropped (and counted) when it does
// not, since OCR and text-layer extraction routinely produce ragged lines.
// Cell tokens that fully parse as plain decimal literals are coerced to
// numbers; everything else stays text.
//
// The heuristic intentionally favors false negatives (a single-spaced table
// goes undetected) over false positives that would corrupt downstream
// numeric coercion. Detection is deterministic: the same input text always
// yields the same table.
package tables
