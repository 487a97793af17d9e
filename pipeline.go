package docdash

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/docdash/model"
	"github.com/tsawler/docdash/pdftext"
	"github.com/tsawler/docdash/report"
	"github.com/tsawler/docdash/tables"
)

// source identifies where a pipeline's document text comes from.
type source struct {
	text     string
	path     string
	fromText bool
}

// Pipeline carries one document through extraction, table inference,
// rendering, and storage. Each configuration method returns a new Pipeline
// instance, making chains safe to share and reuse; a Pipeline holds no
// state between invocations of its terminal operations.
type Pipeline struct {
	source  source
	options pipelineOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Pipeline with copied options. Configuration
// methods operate on the clone, keeping every earlier value immutable.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		source:  p.source,
		options: p.options.clone(),
		err:     p.err,
	}
}

// Title sets the dashboard's page title and heading.
func (p *Pipeline) Title(title string) *Pipeline {
	np := p.clone()
	np.options.title = title
	return np
}

// OutputDir sets the directory dashboards are stored in.
// The default is report.DefaultOutputDir.
func (p *Pipeline) OutputDir(dir string) *Pipeline {
	np := p.clone()
	np.options.outputDir = dir
	return np
}

// DetectorConfig overrides the table detection configuration.
func (p *Pipeline) DetectorConfig(config tables.Config) *Pipeline {
	np := p.clone()
	np.options.detector = config
	return np
}

// ExtractorConfig overrides the PDF text extraction configuration.
func (p *Pipeline) ExtractorConfig(config pdftext.Config) *Pipeline {
	np := p.clone()
	np.options.extractor = config
	return np
}

// Text resolves the document's raw text. For a FromText pipeline that is
// the supplied string; for a FromFile pipeline the file is read according
// to its extension (PDF text layer, OCR for PNG/JPEG scans, plain text
// otherwise). File and extraction errors propagate unchanged.
func (p *Pipeline) Text() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if p.source.fromText {
		return p.source.text, nil
	}

	extractor := pdftext.NewExtractorWithConfig(p.options.extractor)
	switch strings.ToLower(filepath.Ext(p.source.path)) {
	case ".pdf":
		return extractor.ExtractFile(p.source.path)
	case ".png", ".jpg", ".jpeg":
		data, err := os.ReadFile(p.source.path)
		if err != nil {
			return "", err
		}
		return extractor.ExtractImage(data)
	default:
		data, err := os.ReadFile(p.source.path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// Table infers the document's table. It returns *tables.NoTabularDataError
// when the text holds no recognizable tabular structure.
func (p *Pipeline) Table() (*model.Table, error) {
	text, err := p.Text()
	if err != nil {
		return nil, err
	}
	return tables.NewDetectorWithConfig(p.options.detector).Detect(text)
}

// HTML renders the inferred table as a self-contained dashboard document
// without storing it.
func (p *Pipeline) HTML() (string, error) {
	table, err := p.Table()
	if err != nil {
		return "", err
	}
	return report.NewRendererWithConfig(p.options.renderConfig()).Render(table)
}

// CSV exports the inferred table as CSV.
func (p *Pipeline) CSV() (string, error) {
	table, err := p.Table()
	if err != nil {
		return "", err
	}
	return table.ToCSV(), nil
}

// Generate runs the whole pipeline: extract text, infer the table, render
// the dashboard, and store it under baseName in the configured output
// directory. It returns the stored report's path.
//
// The rendered document is verified (well-formed HTML, exactly one table)
// before anything touches disk, so a malformed report is never persisted.
// Generating the same baseName again overwrites the prior report.
func (p *Pipeline) Generate(baseName string) (string, error) {
	html, err := p.HTML()
	if err != nil {
		return "", err
	}
	if err := report.Verify(html); err != nil {
		return "", fmt.Errorf("refusing to store report: %w", err)
	}
	return report.NewWriter(p.options.outputDir).Store(html, baseName)
}
