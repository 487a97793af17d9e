package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/tsawler/docdash/model"
)

// reportTemplate is the whole dashboard document. It is deliberately free
// of timestamps and other run-dependent content so that rendering is
// reproducible. html/template's contextual escaping guarantees that cell
// text cannot inject markup.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 2rem; color: #1f2430; }
h1 { font-size: 1.4rem; margin-bottom: 1rem; }
table { border-collapse: collapse; min-width: 24rem; }
th, td { border: 1px solid #c6cbd4; padding: 0.45rem 0.75rem; text-align: left; }
th { background: #eef1f5; font-weight: 600; }
tr:nth-child(even) td { background: #f8f9fb; }
td.num { text-align: right; font-variant-numeric: tabular-nums; }
p.note { margin-top: 1rem; color: #6a7180; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
<thead>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>{{range .}}{{if .Numeric}}<td class="num">{{.Text}}</td>{{else}}<td>{{.Text}}</td>{{end}}{{end}}</tr>
{{end}}</tbody>
</table>
{{if .Dropped}}<p class="note">{{.Dropped}} malformed row(s) were dropped during extraction.</p>
{{end}}</body>
</html>
`))

// reportCell is the template view of a single cell.
type reportCell struct {
	Text    string
	Numeric bool
}

// reportData is the template view of a whole dashboard.
type reportData struct {
	Title   string
	Headers []string
	Rows    [][]reportCell
	Dropped int
}

// RenderConfig holds renderer configuration.
type RenderConfig struct {
	// Title is the page title and heading. Defaults to "Document Dashboard".
	Title string
}

// DefaultRenderConfig returns default renderer configuration.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Title: "Document Dashboard",
	}
}

// Renderer produces self-contained HTML dashboards from tables.
type Renderer struct {
	config RenderConfig
}

// NewRenderer creates a renderer with default configuration.
func NewRenderer() *Renderer {
	return NewRendererWithConfig(DefaultRenderConfig())
}

// NewRendererWithConfig creates a renderer with custom configuration. An
// empty Title falls back to the default.
func NewRendererWithConfig(config RenderConfig) *Renderer {
	if config.Title == "" {
		config.Title = DefaultRenderConfig().Title
	}
	return &Renderer{config: config}
}

// Render produces the complete HTML document for a table. Numbers render
// in locale-independent decimal form, strings verbatim (escaped). Equal
// tables render to byte-identical documents.
func (r *Renderer) Render(t *model.Table) (string, error) {
	var sb strings.Builder
	if err := r.RenderTo(&sb, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderTo writes the rendered document to w.
func (r *Renderer) RenderTo(w io.Writer, t *model.Table) error {
	data := reportData{
		Title:   r.config.Title,
		Headers: t.Headers,
		Rows:    make([][]reportCell, 0, len(t.Rows)),
		Dropped: t.Dropped,
	}
	for _, row := range t.Rows {
		cells := make([]reportCell, len(row))
		for j, cell := range row {
			cells[j] = reportCell{Text: cell.String(), Numeric: cell.IsNumber()}
		}
		data.Rows = append(data.Rows, cells)
	}

	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
