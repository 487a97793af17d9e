package docdash

import (
	"github.com/tsawler/docdash/pdftext"
	"github.com/tsawler/docdash/report"
	"github.com/tsawler/docdash/tables"
)

// pipelineOptions holds configuration for a dashboard pipeline.
type pipelineOptions struct {
	// Rendering
	title     string // empty means the renderer's default
	outputDir string // empty means report.DefaultOutputDir

	// Component configuration
	detector  tables.Config
	extractor pdftext.Config
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		title:     "",
		outputDir: "",
		detector:  tables.DefaultConfig(),
		extractor: pdftext.DefaultConfig(),
	}
}

// clone creates a copy of pipelineOptions. All fields are value types, so
// a shallow copy is a deep copy.
func (o pipelineOptions) clone() pipelineOptions {
	return o
}

// renderConfig builds the report renderer configuration for these options.
func (o pipelineOptions) renderConfig() report.RenderConfig {
	rc := report.DefaultRenderConfig()
	if o.title != "" {
		rc.Title = o.title
	}
	return rc
}
