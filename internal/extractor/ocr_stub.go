//go:build !ocr

package extractor

import (
	"context"
	"log/slog"

	"outliner/internal/outline"
	"outliner/internal/pipeline"
)

// ocrSource is the stub used when the "ocr" build tag is not set. It reports
// an empty observation sequence, which downstream is indistinguishable from
// "no headings found". Rebuild with -tags ocr (and a system Tesseract
// install) to enable recognition.
type ocrSource struct {
	log *slog.Logger
}

func newOCRSource(path, lang string, log *slog.Logger) pipeline.Source {
	return &ocrSource{log: log}
}

func (s *ocrSource) Observations(ctx context.Context) ([]outline.Observation, error) {
	if s.log != nil {
		s.log.Debug("ocr disabled; rebuild with -tags ocr to enable")
	}
	return nil, nil
}
