package model

import (
	"regexp"
	"strconv"
	"strings"
)

// ValueKind identifies which variant of the Value union is populated.
type ValueKind int

const (
	// KindString is a textual cell value.
	KindString ValueKind = iota
	// KindNumber is a numeric cell value.
	KindNumber
)

// Value represents a single table cell: either a number or a string.
// The zero Value is the empty string.
type Value struct {
	Kind   ValueKind
	Number float64
	Text   string
}

// StringValue creates a textual Value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Text: s}
}

// NumberValue creates a numeric Value.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

// numericLiteral matches an optionally signed integer or decimal literal.
// Exponents, hex forms, thousands separators, a trailing decimal point
// ("3."), Inf, and NaN are all deliberately excluded: anything Tesseract or
// a PDF text layer produces that is not a plain decimal stays text.
var numericLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)$`)

// ParseValue coerces a raw cell token to a Value. The token is trimmed
// first. A non-empty token that fully parses as an optionally signed
// integer or decimal literal becomes a number; everything else, including
// the empty token, stays a string. An empty cell is never coerced to zero.
func ParseValue(token string) Value {
	token = strings.TrimSpace(token)
	if token == "" || !numericLiteral.MatchString(token) {
		return StringValue(token)
	}
	n, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return StringValue(token)
	}
	return NumberValue(n)
}

// IsNumber reports whether the value holds the numeric variant.
func (v Value) IsNumber() bool {
	return v.Kind == KindNumber
}

// String returns the natural textual representation of the value. Numbers
// use the shortest locale-independent decimal form that round-trips
// (strconv with precision -1), so 90 renders as "90", not "90.000000".
func (v Value) String() string {
	if v.Kind == KindNumber {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

// Table is the result of table extraction: an ordered header row plus zero
// or more data rows of equal width.
type Table struct {
	Headers []string
	Rows    [][]Value

	// Dropped counts candidate data rows discarded because their cell
	// count did not match len(Headers).
	Dropped int
}

// NewTable creates an empty table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{Headers: headers}
}

// AppendRow adds a data row when its width matches the header row, and
// reports whether the row was kept. A row of any other width is counted in
// Dropped and discarded; it is never stored malformed.
func (t *Table) AppendRow(cells []Value) bool {
	if len(cells) != len(t.Headers) {
		t.Dropped++
		return false
	}
	t.Rows = append(t.Rows, cells)
	return true
}

// RowCount returns the number of data rows (the header row is not counted).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	return len(t.Headers)
}

// GetText returns a plain-text rendering of the table with cells separated
// by tabs and rows by newlines, headers first.
func (t *Table) GetText() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Headers, "\t"))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell.String())
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToCSV converts the table to CSV format, headers first.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	writeCSVRow := func(cells []string) {
		for j, text := range cells {
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(cells)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}

	writeCSVRow(t.Headers)
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cell.String()
		}
		writeCSVRow(cells)
	}
	return sb.String()
}
