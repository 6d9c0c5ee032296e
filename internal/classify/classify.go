// Package classify labels text observations as heading candidates. Two
// strategies implement the same contract: LayoutClassifier works from
// typographic signals on styled spans, PatternClassifier works from surface
// text patterns on plain OCR lines. The extraction pipeline selects one per
// run; neither holds state across documents.
package classify

import "outliner/internal/outline"

// Classifier turns an observation sequence into heading candidates.
// An empty result is a valid outcome, not a failure.
type Classifier interface {
	Classify(observations []outline.Observation) []outline.Candidate
}

// Config holds the classification tunables. The defaults come from the
// heuristics the engine was calibrated with; treat them as starting points,
// not hard requirements.
type Config struct {
	// H1Ratio is the font size ratio above which styled text becomes H1.
	// Ratios in [1.0, H1Ratio] become H2 when bold or centered.
	H1Ratio float64

	// H3MaxWords caps the word count for the small-but-bold H3 rule.
	H3MaxWords int

	// MaxHeadingWords rejects any candidate longer than this, regardless of
	// typography. Long bold or centered runs are emphasized body text.
	MaxHeadingWords int

	// MinTextLen skips fragments shorter than this many runes.
	MinTextLen int

	// CapsMaxWords caps the word count for the all-caps H1 pattern rule.
	CapsMaxWords int

	// TitleCaseMinWords and TitleCaseMaxWords bound the Title Case H3 rule.
	TitleCaseMinWords int
	TitleCaseMaxWords int
}

// DefaultConfig returns the default classification parameters.
func DefaultConfig() Config {
	return Config{
		H1Ratio:           1.3,
		H3MaxWords:        12,
		MaxHeadingWords:   20,
		MinTextLen:        3,
		CapsMaxWords:      8,
		TitleCaseMinWords: 2,
		TitleCaseMaxWords: 12,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.H1Ratio <= 0 {
		c.H1Ratio = d.H1Ratio
	}
	if c.H3MaxWords <= 0 {
		c.H3MaxWords = d.H3MaxWords
	}
	if c.MaxHeadingWords <= 0 {
		c.MaxHeadingWords = d.MaxHeadingWords
	}
	if c.MinTextLen <= 0 {
		c.MinTextLen = d.MinTextLen
	}
	if c.CapsMaxWords <= 0 {
		c.CapsMaxWords = d.CapsMaxWords
	}
	if c.TitleCaseMinWords <= 0 {
		c.TitleCaseMinWords = d.TitleCaseMinWords
	}
	if c.TitleCaseMaxWords <= 0 {
		c.TitleCaseMaxWords = d.TitleCaseMaxWords
	}
	return c
}
