package tables

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tsawler/docdash/model"
)

// cellSeparator matches a column boundary in extracted text: a run of two
// or more whitespace characters, or a lone tab. The run alternative comes
// first so a tab inside a wider gap ("\t  ") merges into one separator
// instead of producing a phantom empty cell (regexp alternation is
// leftmost-first, not longest). The same pattern serves as the
// candidate-line predicate and as the cell splitter, so a line is a
// candidate exactly when it splits into at least two cells.
var cellSeparator = regexp.MustCompile(`\s{2,}|\t`)

// NoTabularDataError is returned when the input text does not contain
// enough tabular-shaped lines to form a table (at minimum a header line
// plus one further candidate line).
type NoTabularDataError struct {
	// Candidates is the number of tabular-shaped lines found.
	Candidates int
}

func (e *NoTabularDataError) Error() string {
	return "no table-like data found"
}

// Config holds detector configuration.
type Config struct {
	// MinCandidateLines is the minimum number of tabular-shaped lines
	// required before extraction succeeds. The floor is 2: a header line
	// and at least one further candidate.
	MinCandidateLines int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		MinCandidateLines: 2,
	}
}

// Detector extracts a single table from document text.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return NewDetectorWithConfig(DefaultConfig())
}

// NewDetectorWithConfig creates a detector with custom configuration.
// MinCandidateLines below 2 is raised to 2.
func NewDetectorWithConfig(config Config) *Detector {
	if config.MinCandidateLines < 2 {
		config.MinCandidateLines = 2
	}
	return &Detector{config: config}
}

// Detect infers a table from raw document text.
//
// Lines that are non-blank after trimming and contain a column separator
// are candidates. The first candidate becomes the header row and fixes the
// column count; each later candidate becomes a data row when its cell count
// matches, and is dropped (counted in Table.Dropped) otherwise. A
// header-only table is a valid result as long as the candidate minimum was
// met.
//
// Detect returns *NoTabularDataError when fewer candidates than
// Config.MinCandidateLines are found.
func (d *Detector) Detect(text string) (*model.Table, error) {
	var candidates []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !cellSeparator.MatchString(line) {
			continue
		}
		candidates = append(candidates, line)
	}

	if len(candidates) < d.config.MinCandidateLines {
		return nil, &NoTabularDataError{Candidates: len(candidates)}
	}

	table := model.NewTable(splitCells(candidates[0]))
	for _, line := range candidates[1:] {
		tokens := splitCells(line)
		cells := make([]model.Value, len(tokens))
		for i, token := range tokens {
			cells[i] = model.ParseValue(token)
		}
		table.AppendRow(cells)
	}

	return table, nil
}

// Extract infers a table from raw document text using the default
// configuration. See Detector.Detect.
func Extract(text string) (*model.Table, error) {
	return NewDetector().Detect(text)
}

// splitCells tokenizes a candidate line into trimmed cells. Adjacent
// separators merge (any whitespace run of two or more is one boundary), so
// a row that lost a cell to extraction noise comes back narrower and gets
// dropped by the width check rather than padded with phantom cells.
func splitCells(line string) []string {
	tokens := cellSeparator.Split(line, -1)
	for i, token := range tokens {
		tokens[i] = strings.TrimSpace(token)
	}
	return tokens
}

// FormatDropSummary returns a short human-readable description of how much
// input the detector discarded, for logging by callers.
func FormatDropSummary(t *model.Table) string {
	if t.Dropped == 0 {
		return "no rows dropped"
	}
	return fmt.Sprintf("%d row(s) dropped (cell count != %d)", t.Dropped, t.ColCount())
}
