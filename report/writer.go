package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputDir is where dashboards are stored when no directory is
// configured.
const DefaultOutputDir = "dashboards"

// reportExtension is appended to every stored report's base name.
const reportExtension = ".html"

// StorageError is returned when the output directory cannot be created or
// the report cannot be written. It wraps the underlying cause.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to store report at %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Writer persists rendered reports to a configured output directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a Writer that stores reports under outputDir. An empty
// outputDir selects DefaultOutputDir.
func NewWriter(outputDir string) *Writer {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	return &Writer{outputDir: outputDir}
}

// OutputDir returns the directory this Writer stores reports in.
func (w *Writer) OutputDir() string {
	return w.outputDir
}

// Path returns the destination path a report with the given base name
// would be stored at, without writing anything.
func (w *Writer) Path(baseName string) string {
	base := filepath.Base(baseName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "report"
	}
	return filepath.Join(w.outputDir, base+reportExtension)
}

// Store persists a rendered report under a deterministic name derived from
// baseName (any directory components and extension are stripped) and
// returns the stored path. The output directory is created if absent.
// Storing the same base name again overwrites the prior report.
//
// The report is written to a temporary file in the destination directory
// and renamed into place, so concurrent writers racing on the same base
// name resolve last-write-wins without a partially written report ever
// being visible.
func (w *Writer) Store(report string, baseName string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", &StorageError{Path: w.outputDir, Err: err}
	}

	dest := w.Path(baseName)

	tmp, err := os.CreateTemp(w.outputDir, ".report-*")
	if err != nil {
		return "", &StorageError{Path: dest, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(report); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &StorageError{Path: dest, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", &StorageError{Path: dest, Err: err}
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", &StorageError{Path: dest, Err: err}
	}

	return dest, nil
}
