package outline

import (
	"sort"
	"strings"
)

// AssembleConfig tunes outline assembly.
type AssembleConfig struct {
	// DedupPageWindow is the page distance within which a repeated heading
	// text is treated as a running header and dropped.
	DedupPageWindow int
}

// DefaultAssembleConfig returns the default assembly parameters.
func DefaultAssembleConfig() AssembleConfig {
	return AssembleConfig{DedupPageWindow: 2}
}

// Assemble builds the final outline from classifier candidates. Candidates are
// sorted by reading order, consecutive duplicates within the dedup window are
// dropped, and the title is resolved from page-1 candidates with sourceName as
// the fallback. An empty candidate list is a valid result, not an error.
func Assemble(candidates []Candidate, sourceName string, cfg AssembleConfig) Outline {
	deduped := sortAndDedup(candidates, cfg)

	title, titleIdx := resolveTitle(deduped)

	entries := make([]Entry, 0, len(deduped))
	for i, c := range deduped {
		// The title is not repeated as the first heading.
		if i == 0 && i == titleIdx {
			continue
		}
		entries = append(entries, Entry{Level: c.Level, Text: c.Text, Page: c.Page})
	}

	if title == "" {
		title = sourceName
	}
	return Outline{Title: title, Entries: entries}
}

// AssembleTitled builds the outline for a document that declares its own
// title, such as an HTML <title> element. Sorting and dedup match Assemble,
// but no candidate is promoted to the title, so every heading stays an entry.
func AssembleTitled(candidates []Candidate, title string, cfg AssembleConfig) Outline {
	deduped := sortAndDedup(candidates, cfg)

	entries := make([]Entry, 0, len(deduped))
	for _, c := range deduped {
		entries = append(entries, Entry{Level: c.Level, Text: c.Text, Page: c.Page})
	}
	return Outline{Title: title, Entries: entries}
}

// sortAndDedup orders candidates by reading order and drops consecutive
// repeats of the same normalized text within DedupPageWindow pages of the
// first occurrence. Running headers and footers misclassified as headings
// show up exactly this way.
func sortAndDedup(candidates []Candidate, cfg AssembleConfig) []Candidate {
	if cfg.DedupPageWindow <= 0 {
		cfg.DedupPageWindow = DefaultAssembleConfig().DedupPageWindow
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	deduped := sorted[:0]
	for _, c := range sorted {
		c.Text = NormalizeText(c.Text)
		if c.Text == "" {
			continue
		}
		if len(deduped) > 0 {
			prev := deduped[len(deduped)-1]
			if strings.EqualFold(prev.Text, c.Text) && c.Page-prev.Page <= cfg.DedupPageWindow {
				continue
			}
		}
		deduped = append(deduped, c)
	}
	return deduped
}

// resolveTitle picks the highest-confidence page-1 candidate, breaking ties by
// the lowest order. Returns the empty string and -1 when page 1 has none.
func resolveTitle(candidates []Candidate) (string, int) {
	best := -1
	for i, c := range candidates {
		if c.Page != 1 {
			continue
		}
		if best < 0 || c.Confidence > candidates[best].Confidence {
			best = i
		}
	}
	if best < 0 {
		return "", -1
	}
	return candidates[best].Text, best
}
