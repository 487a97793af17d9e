package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tsawler/docdash/ai"
	"github.com/tsawler/docdash/server"
)

// getenv returns the environment value for key, or fallback when unset.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func serveCmd() *cobra.Command {
	var addr string
	var uploads string
	var reports string
	var provider string
	var model string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the document upload and dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(os.Stdout, nil))
			slog.SetDefault(log)

			if err := godotenv.Load(); err != nil {
				log.Warn("no .env file found, using system env vars")
			}

			cfg := server.DefaultConfig()
			if addr == "" {
				addr = ":" + getenv("PORT", "8080")
			}
			cfg.Addr = addr
			cfg.UploadDir = uploads
			cfg.ReportDir = reports

			var assistant ai.Assistant = ai.Noop{}
			if strings.EqualFold(provider, "gemini") {
				key := os.Getenv("GEMINI_API_KEY")
				g, err := ai.NewGemini(cmd.Context(), key, model)
				if err != nil {
					return fmt.Errorf("gemini assistant unavailable: %w", err)
				}
				assistant = g
				log.Info("gemini assistant enabled", "model", model)
			} else {
				log.Info("no AI provider configured; chat endpoints return empty answers")
			}

			return server.New(cfg, assistant, log).ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: :$PORT or :8080)")
	cmd.Flags().StringVar(&uploads, "uploads", "uploads", "directory for uploaded source files")
	cmd.Flags().StringVar(&reports, "reports", "dashboards", "directory for generated dashboards")
	cmd.Flags().StringVar(&provider, "ai", "off", "AI provider: off|gemini (gemini needs GEMINI_API_KEY)")
	cmd.Flags().StringVar(&model, "model", ai.DefaultModel, "Gemini model name")
	return cmd
}
