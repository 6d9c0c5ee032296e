package classify

import (
	"math"
	"strings"

	"outliner/internal/outline"
)

// LayoutClassifier labels styled spans using typographic signals: font size
// relative to the document's body size, boldness, and centering.
type LayoutClassifier struct {
	cfg Config
}

// NewLayoutClassifier creates a layout classifier. Zero-valued config fields
// fall back to defaults.
func NewLayoutClassifier(cfg Config) *LayoutClassifier {
	return &LayoutClassifier{cfg: cfg.withDefaults()}
}

// Classify scores each styled observation against the document's body font
// size. Observations without style metadata are skipped. An empty result is
// the signal the pipeline uses to fall back to OCR.
func (c *LayoutClassifier) Classify(observations []outline.Observation) []outline.Candidate {
	observations = outline.Sanitize(observations)

	body := bodyFontSize(observations)
	if body <= 0 {
		return nil
	}

	var candidates []outline.Candidate
	for _, obs := range observations {
		if obs.Style == nil || obs.Style.FontSize <= 0 {
			continue
		}
		if len([]rune(obs.Text)) < c.cfg.MinTextLen {
			continue
		}
		words := len(strings.Fields(obs.Text))
		if words > c.cfg.MaxHeadingWords {
			continue
		}

		ratio := obs.Style.FontSize / body
		emphasized := obs.Style.Bold || obs.Style.Centered

		var level outline.Level
		switch {
		case ratio > c.cfg.H1Ratio && emphasized:
			level = outline.H1
		case ratio >= 1.0 && ratio <= c.cfg.H1Ratio && emphasized:
			level = outline.H2
		case ratio < 1.0 && obs.Style.Bold && words <= c.cfg.H3MaxWords:
			level = outline.H3
		default:
			continue
		}

		candidates = append(candidates, outline.Candidate{
			Text:       obs.Text,
			Page:       obs.Page,
			Order:      obs.Order,
			Level:      level,
			Confidence: layoutConfidence(ratio, obs.Style),
		})
	}
	return candidates
}

// bodyFontSize returns the statistical mode of the rounded font sizes across
// the document. This is a per-document computed baseline; body size varies by
// document and must never be a fixed constant. Ties break toward the smaller
// size so the result is deterministic.
func bodyFontSize(observations []outline.Observation) float64 {
	counts := make(map[int]int)
	for _, obs := range observations {
		if obs.Style == nil || obs.Style.FontSize <= 0 {
			continue
		}
		counts[int(math.Round(obs.Style.FontSize))]++
	}

	bestSize, bestCount := 0, 0
	for size, count := range counts {
		if count > bestCount || (count == bestCount && size < bestSize) {
			bestSize, bestCount = size, count
		}
	}
	return float64(bestSize)
}

// layoutConfidence is linear in the size ratio with a bonus for bold and
// centered text. It feeds title tie-breaking only; level selection is
// threshold-based and deterministic.
func layoutConfidence(ratio float64, style *outline.Style) float64 {
	conf := 0.4 * ratio
	if style.Bold {
		conf += 0.2
	}
	if style.Centered {
		conf += 0.1
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}
