// Package docdash turns the text recovered from a PDF into a tabular
// dataset and renders it as a self-contained HTML dashboard.
//
// Basic usage:
//
//	handle, err := docdash.FromFile("statement.pdf").Generate("statement")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println("dashboard written to", handle)
//
// With options:
//
//	handle, err := docdash.FromText(rawText).
//	    Title("Q3 Results").
//	    OutputDir("/var/dashboards").
//	    Generate("q3-results")
//
// Intermediate results are available through the same chain: Table()
// returns the inferred dataset, HTML() the rendered document, CSV() a
// spreadsheet-friendly export. The lower-level tables, report, and pdftext
// packages are also available for advanced use.
package docdash

import "strings"

// FromText creates a Pipeline over already-extracted document text. Use it
// when text recovery happened elsewhere (an upload handler, an OCR pass, a
// test).
func FromText(text string) *Pipeline {
	return &Pipeline{
		source:  source{text: text, fromText: true},
		options: defaultOptions(),
	}
}

// FromFile creates a Pipeline that reads its text from a file. PDFs go
// through the pdftext extractor, PNG and JPEG scans through OCR, and
// anything else is read as plain text.
func FromFile(path string) *Pipeline {
	return &Pipeline{
		source:  source{path: path},
		options: defaultOptions(),
	}
}

// BaseName derives the report base name from a source file's name: the
// final path element with its extension stripped.
func BaseName(path string) string {
	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	table := docdash.Must(docdash.FromText(text).Table())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
