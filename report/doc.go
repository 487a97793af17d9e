// Package report renders an extracted table as a self-contained HTML
// dashboard and persists it to disk.
//
// The Renderer is a pure function of its input: rendering the same table
// twice yields byte-identical output. The document embeds its own styling
// and references no external stylesheets or scripts, so a stored report is
// viewable as a standalone file. All cell content is escaped during
// rendering; document text is untrusted input and must never reach the
// markup live.
//
// The Writer persists a rendered report under a deterministic name derived
// from a caller-supplied base name. Writes go through a temporary file and
// a rename, so a partially written report is never visible at the final
// path; rewriting the same base name is a last-write-wins overwrite.
package report
