package classify

import (
	"regexp"
	"strings"
	"unicode"

	"outliner/internal/outline"
)

// numberedPrefixRe matches numeric heading prefixes like "2. " or "14. ".
var numberedPrefixRe = regexp.MustCompile(`^\d+\.\s`)

// Confidence assigned per pattern rule. OCR text carries no typographic
// signal, so these are coarse and serve title tie-breaking only.
const (
	capsConfidence      = 0.9
	numberedConfidence  = 0.8
	titleCaseConfidence = 0.7
)

// PatternClassifier labels plain recognized lines using surface text
// patterns: casing, numbering, and length. It is the strategy of last resort
// for scanned documents where no font metadata exists.
type PatternClassifier struct {
	cfg Config
}

// NewPatternClassifier creates a pattern classifier. Zero-valued config
// fields fall back to defaults.
func NewPatternClassifier(cfg Config) *PatternClassifier {
	return &PatternClassifier{cfg: cfg.withDefaults()}
}

// Classify applies the pattern rules in declared priority order; the first
// matching rule wins. All-caps outranks numbering, so a line like
// "1. OVERVIEW" classifies as H1, not H2.
func (c *PatternClassifier) Classify(observations []outline.Observation) []outline.Candidate {
	observations = outline.Sanitize(observations)

	var candidates []outline.Candidate
	for _, obs := range observations {
		if len([]rune(obs.Text)) < c.cfg.MinTextLen {
			continue
		}
		if isJunkLine(obs.Text) {
			continue
		}
		words := len(strings.Fields(obs.Text))
		if words > c.cfg.MaxHeadingWords {
			continue
		}

		var level outline.Level
		var conf float64
		switch {
		case isAllCaps(obs.Text) && words <= c.cfg.CapsMaxWords:
			level, conf = outline.H1, capsConfidence
		case numberedPrefixRe.MatchString(obs.Text):
			level, conf = outline.H2, numberedConfidence
		case !isAllCaps(obs.Text) && isTitleCase(obs.Text) && words >= c.cfg.TitleCaseMinWords && words <= c.cfg.TitleCaseMaxWords:
			level, conf = outline.H3, titleCaseConfidence
		default:
			continue
		}

		candidates = append(candidates, outline.Candidate{
			Text:       obs.Text,
			Page:       obs.Page,
			Order:      obs.Order,
			Level:      level,
			Confidence: conf,
		})
	}
	return candidates
}

// isAllCaps reports whether the line consists entirely of upper-case letters,
// digits, and punctuation. At least one letter is required so bare page
// numbers never qualify.
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether every word longer than 3 runes starts with an
// upper-case letter. Short connective words ("of", "the") are exempt.
func isTitleCase(s string) bool {
	sawLong := false
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		if len(runes) <= 3 {
			continue
		}
		sawLong = true
		if !unicode.IsUpper(runes[0]) {
			return false
		}
	}
	return sawLong
}

// isJunkLine filters OCR noise that pattern rules would otherwise pick up:
// bare numbers and common continuation markers.
func isJunkLine(s string) bool {
	digitsOnly := true
	for _, r := range s {
		if !unicode.IsDigit(r) {
			digitsOnly = false
			break
		}
	}
	if digitsOnly {
		return true
	}
	switch strings.ToLower(s) {
	case "page", "continued", "...":
		return true
	}
	return false
}
