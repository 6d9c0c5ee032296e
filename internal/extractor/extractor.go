// Package extractor holds the collaborators that feed the classification
// engine: per-format document readers that produce text observations (PDF
// layout analysis, OCR) or ready-made heading candidates (markdown, HTML,
// DOCX). The classification core never touches files; everything
// file-shaped lives here.
package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"outliner/internal/classify"
	"outliner/internal/outline"
	"outliner/internal/pipeline"
)

// Config carries collaborator settings shared by all extractors.
type Config struct {
	Classify    classify.Config
	Assemble    outline.AssembleConfig
	OCRLanguage string
	Log         *slog.Logger
}

// Extractor produces the outline for one document. sourceName is the title
// fallback when no page-1 candidate qualifies; callers pass the original
// filename, which may differ from the path on disk for uploads.
type Extractor interface {
	Extract(ctx context.Context, mode pipeline.Mode, sourceName string) (outline.Outline, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".docx": true,
	".txt":  true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(path string, cfg Config) (Extractor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return &PDFExtractor{path: path, cfg: cfg}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{path: path, cfg: cfg}, nil
	case ".html", ".htm":
		return &HTMLExtractor{path: path, cfg: cfg}, nil
	case ".docx":
		return &DOCXExtractor{path: path, cfg: cfg}, nil
	case ".txt":
		return &TextExtractor{path: path, cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".markdown" {
		return true
	}
	return SupportedExtensions[ext]
}

// ExtractBytes runs the pipeline over in-memory document bytes. The PDF and
// DOCX readers need a seekable file, so the data lands in a temp file first;
// filename supplies the extension and the title fallback.
func ExtractBytes(ctx context.Context, data []byte, filename string, mode pipeline.Mode, cfg Config) (outline.Outline, error) {
	tmp, err := os.CreateTemp("", "outliner-*"+strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		return outline.Outline{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		return outline.Outline{}, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	ext, err := ForFile(tmpPath, cfg)
	if err != nil {
		return outline.Outline{}, err
	}
	return ext.Extract(ctx, mode, filename)
}
