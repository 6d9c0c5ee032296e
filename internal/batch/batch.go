// Package batch processes a folder of documents into outline JSON files,
// one `<stem>_outline.json` per input. Each document is an independent
// pipeline run with no shared mutable state, so the folder fans out over a
// bounded worker pool.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"outliner/internal/extractor"
	"outliner/internal/pipeline"
)

// Options configures a batch run.
type Options struct {
	InputDir  string
	OutputDir string
	Mode      pipeline.Mode
	Workers   int
	Extractor extractor.Config
	Log       *slog.Logger
}

// Run processes every supported file in InputDir and writes one outline JSON
// per input to OutputDir. Individual document failures are logged and
// skipped; Run fails only when the folders themselves are unusable.
func Run(ctx context.Context, opts Options) error {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	entries, err := os.ReadDir(opts.InputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !extractor.IsSupportedExtension(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(opts.InputDir, entry.Name()))
	}
	if len(paths) == 0 {
		opts.Log.Info("no supported files found", "dir", opts.InputDir)
		return nil
	}
	opts.Log.Info("processing batch", "files", len(paths), "workers", opts.Workers)

	sem := make(chan struct{}, opts.Workers)
	var wg sync.WaitGroup
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()
			processFile(ctx, path, opts)
		}(path)
	}
	wg.Wait()
	return ctx.Err()
}

func processFile(ctx context.Context, path string, opts Options) {
	log := opts.Log.With("file", filepath.Base(path))

	ext, err := extractor.ForFile(path, opts.Extractor)
	if err != nil {
		log.Error("unsupported file", "error", err)
		return
	}

	o, err := ext.Extract(ctx, opts.Mode, filepath.Base(path))
	if err != nil {
		log.Error("extraction failed", "error", err)
		return
	}

	outPath := outputPath(opts.OutputDir, path)
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		log.Error("encode outline", "error", err)
		return
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Error("write outline", "error", err)
		return
	}
	log.Info("outline written", "output", outPath, "title", o.Title, "headings", len(o.Entries))
}

// outputPath maps input/report.pdf to <outputDir>/report_outline.json.
func outputPath(outputDir, inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+"_outline.json")
}
