package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"outliner/internal/classify"
	"outliner/internal/outline"
	"outliner/internal/pipeline"
)

// TextExtractor handles plain text files. Lines carry no typography, so they
// run through the pattern classifier like OCR output. Form feeds separate
// pages, matching what text dumps of paginated documents produce.
type TextExtractor struct {
	path string
	cfg  Config
}

func (e *TextExtractor) Extract(ctx context.Context, _ pipeline.Mode, sourceName string) (outline.Outline, error) {
	data, err := os.ReadFile(e.path)
	if err != nil {
		return outline.Outline{}, fmt.Errorf("read text: %w", err)
	}

	var obs []outline.Observation
	order := 0
	for pageIdx, page := range strings.Split(string(data), "\f") {
		for _, line := range strings.Split(page, "\n") {
			line = outline.NormalizeText(line)
			if line == "" {
				continue
			}
			order++
			obs = append(obs, outline.Observation{
				Text:  line,
				Page:  pageIdx + 1,
				Order: order,
			})
		}
	}

	candidates := classify.NewPatternClassifier(e.cfg.Classify).Classify(obs)
	return outline.Assemble(candidates, sourceName, e.cfg.Assemble), nil
}
