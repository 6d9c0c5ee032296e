package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"outliner/internal/classify"
	"outliner/internal/config"
	"outliner/internal/extractor"
	"outliner/internal/outline"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Document outline extraction service",
	Long: `Outliner turns documents into structured outlines: a title plus an
ordered list of H1-H3 headings tagged with their pages.

Text-native PDFs are classified from typographic signals (font size,
weight, centering); scanned documents fall back to OCR with text-pattern
classification. Markdown, HTML, and DOCX headings are read natively.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(batchCmd)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// extractorConfig maps service configuration onto the collaborator settings
// shared by every extractor.
func extractorConfig(cfg config.Config, log *slog.Logger) extractor.Config {
	return extractor.Config{
		Classify: classify.Config{
			H1Ratio:         cfg.H1Ratio,
			MaxHeadingWords: cfg.MaxHeadingWords,
		},
		Assemble: outline.AssembleConfig{
			DedupPageWindow: cfg.DedupPageWindow,
		},
		OCRLanguage: cfg.OCRLanguage,
		Log:         log,
	}
}
