package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/docdash"
)

// generateResult is the JSON envelope printed after a generation run.
type generateResult struct {
	Report  string `json:"report"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
	Dropped int    `json:"dropped_rows"`
	CSV     string `json:"csv,omitempty"`
}

func generateCmd() *cobra.Command {
	var out string
	var title string
	var baseName string
	var withCSV bool

	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate an HTML dashboard from a PDF, text file, or scanned image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if baseName == "" {
				baseName = docdash.BaseName(path)
			}

			pipeline := docdash.FromFile(path).OutputDir(out)
			if title != "" {
				pipeline = pipeline.Title(title)
			}

			table, err := pipeline.Table()
			if err != nil {
				return err
			}
			handle, err := pipeline.Generate(baseName)
			if err != nil {
				return err
			}

			res := generateResult{
				Report:  handle,
				Columns: table.ColCount(),
				Rows:    table.RowCount(),
				Dropped: table.Dropped,
			}
			if withCSV {
				res.CSV = table.ToCSV()
			}
			b, _ := json.MarshalIndent(res, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory for dashboards (default: dashboards)")
	cmd.Flags().StringVar(&title, "title", "", "dashboard title (default: Document Dashboard)")
	cmd.Flags().StringVar(&baseName, "base-name", "", "report base name (default: source file name without extension)")
	cmd.Flags().BoolVar(&withCSV, "csv", false, "include a CSV export of the table in the output")
	return cmd
}
