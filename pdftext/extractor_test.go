package pdftext

import (
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

// frag builds a positioned text fragment. W approximates the rendered
// width the way a real text layer would report it.
func frag(s string, x, y, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w}
}

func TestGroupRows_Ordering(t *testing.T) {
	e := NewExtractor()

	// Supplied out of order; Y grows upward in PDF space, so 700 is the
	// top row and 680 the one beneath it.
	texts := []pdf.Text{
		frag("Bob", 50, 680, 20),
		frag("Name", 50, 700, 30),
		frag("85", 150, 680, 12),
		frag("Score", 150, 700, 32),
	}

	rows := e.groupRows(texts)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].frags[0].S != "Name" || rows[0].frags[1].S != "Score" {
		t.Errorf("Top row out of order: %+v", rows[0].frags)
	}
	if rows[1].frags[0].S != "Bob" || rows[1].frags[1].S != "85" {
		t.Errorf("Second row out of order: %+v", rows[1].frags)
	}
}

func TestGroupRows_ToleranceBandsJaggedBaselines(t *testing.T) {
	e := NewExtractor()

	// Fragments 1.5pt apart vertically belong to the same visual row.
	texts := []pdf.Text{
		frag("Alice", 50, 700, 28),
		frag("90", 150, 698.5, 12),
	}
	rows := e.groupRows(texts)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if len(rows[0].frags) != 2 {
		t.Errorf("Expected 2 fragments in the row, got %d", len(rows[0].frags))
	}
}

func TestGroupRows_SkipsBlankFragments(t *testing.T) {
	e := NewExtractor()
	rows := e.groupRows([]pdf.Text{frag("  ", 10, 700, 5), frag("x", 20, 700, 5)})
	if len(rows) != 1 || len(rows[0].frags) != 1 {
		t.Fatalf("Expected blank fragment skipped, got %+v", rows)
	}
}

func TestWritePage_ColumnGapsBecomeDoubleSpaces(t *testing.T) {
	e := NewExtractor()

	texts := []pdf.Text{
		frag("Name", 50, 700, 30),
		frag("Score", 150, 700, 32), // 70pt gap: column boundary
		frag("Alice", 50, 680, 28),
		frag("90", 150, 680, 12),
	}

	var sb strings.Builder
	e.writePage(&sb, texts)
	got := sb.String()
	want := "Name  Score\nAlice  90\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWritePage_WordGapsBecomeSingleSpaces(t *testing.T) {
	e := NewExtractor()

	// "Grand" and "total" are 3pt apart: one word gap, not a column.
	texts := []pdf.Text{
		frag("Grand", 50, 700, 30),
		frag("total", 83, 700, 25),
	}

	var sb strings.Builder
	e.writePage(&sb, texts)
	if got := sb.String(); got != "Grand total\n" {
		t.Errorf("Expected single-space join, got %q", got)
	}
}

func TestWritePage_GlyphRunsJoinWithoutSpaces(t *testing.T) {
	e := NewExtractor()

	// Glyph-by-glyph positioning: sub-point gaps join with no separator.
	texts := []pdf.Text{
		frag("A", 50, 700, 6),
		frag("l", 56.2, 700, 3),
		frag("i", 59.5, 700, 3),
	}

	var sb strings.Builder
	e.writePage(&sb, texts)
	if got := sb.String(); got != "Ali\n" {
		t.Errorf("Expected glyphs joined, got %q", got)
	}
}

func TestExtractFile_MissingFile(t *testing.T) {
	_, err := NewExtractor().ExtractFile("testdata/does-not-exist.pdf")
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}
