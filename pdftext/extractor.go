package pdftext

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/docdash/ocr"
)

// Config holds extraction configuration.
type Config struct {
	// RowTolerance is the maximum Y distance (in points) between fragments
	// considered part of the same visual row.
	RowTolerance float64

	// ColumnGap is the minimum horizontal gap (in points) between adjacent
	// fragments treated as a column boundary and rendered as a two-space
	// separator.
	ColumnGap float64

	// WordGap is the minimum horizontal gap treated as a word boundary.
	// Gaps below it occur in PDFs positioned glyph by glyph and are joined
	// with no separator at all.
	WordGap float64
}

// DefaultConfig returns default extraction configuration.
func DefaultConfig() Config {
	return Config{
		RowTolerance: 2.0,
		ColumnGap:    10.0,
		WordGap:      1.0,
	}
}

// Extractor recovers text from PDF files and scanned images.
type Extractor struct {
	config Config
}

// NewExtractor creates an extractor with default configuration.
func NewExtractor() *Extractor {
	return NewExtractorWithConfig(DefaultConfig())
}

// NewExtractorWithConfig creates an extractor with custom configuration.
func NewExtractorWithConfig(config Config) *Extractor {
	return &Extractor{config: config}
}

// ExtractFile reads the text layer of the PDF at path and returns it as
// NFC-normalized plain text, one visual row per line, pages separated by a
// blank line. Open and read errors propagate unchanged.
func (e *Extractor) ExtractFile(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		if i > 1 {
			sb.WriteString("\n")
		}
		e.writePage(&sb, p.Content().Text)
	}

	return norm.NFC.String(sb.String()), nil
}

// ExtractImage performs OCR on a scanned page image (PNG or JPEG) and
// returns NFC-normalized text. It requires OCR support to be compiled in;
// otherwise it returns ocr.ErrOCRNotEnabled.
func (e *Extractor) ExtractImage(imageData []byte) (string, error) {
	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()

	prepared, err := ocr.Prepare(imageData)
	if err != nil {
		// Unsupported or undecodable image data: let Tesseract try the
		// original bytes rather than failing outright.
		prepared = imageData
	}

	text, err := client.RecognizeImage(prepared)
	if err != nil {
		return "", err
	}
	return norm.NFC.String(text), nil
}

// visualRow collects the fragments sharing one Y band on a page.
type visualRow struct {
	y     float64
	frags []pdf.Text
}

// groupRows buckets fragments into visual rows by Y coordinate, within
// RowTolerance. Rows come back in top-to-bottom reading order (PDF Y grows
// upward), fragments left to right.
func (e *Extractor) groupRows(texts []pdf.Text) []visualRow {
	var rows []visualRow
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) < e.config.RowTolerance {
				rows[i].frags = append(rows[i].frags, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, visualRow{y: t.Y, frags: []pdf.Text{t}})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	for i := range rows {
		frags := rows[i].frags
		sort.SliceStable(frags, func(a, b int) bool { return frags[a].X < frags[b].X })
	}
	return rows
}

// writePage renders one page's fragments as text lines, inserting a
// two-space separator at column boundaries so downstream table detection
// can recover the column structure.
func (e *Extractor) writePage(sb *strings.Builder, texts []pdf.Text) {
	for _, row := range e.groupRows(texts) {
		var prev *pdf.Text
		for i := range row.frags {
			frag := &row.frags[i]
			if prev != nil {
				gap := frag.X - (prev.X + prev.W)
				switch {
				case gap >= e.config.ColumnGap:
					sb.WriteString("  ")
				case gap >= e.config.WordGap:
					sb.WriteString(" ")
				}
			}
			sb.WriteString(frag.S)
			prev = frag
		}
		sb.WriteString("\n")
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
