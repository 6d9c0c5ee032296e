package outline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level is a heading level in the three-level outline hierarchy.
type Level int

const (
	H1 Level = iota + 1
	H2
	H3
)

func (l Level) String() string {
	switch l {
	case H1:
		return "H1"
	case H2:
		return "H2"
	case H3:
		return "H3"
	}
	return "unknown"
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "H1":
		*l = H1
	case "H2":
		*l = H2
	case "H3":
		*l = H3
	default:
		return fmt.Errorf("unknown heading level: %q", s)
	}
	return nil
}

// Style carries the typographic metadata attached to layout-extracted text.
type Style struct {
	FontSize float64
	Bold     bool
	Centered bool
}

// Observation is one line or span of candidate text in reading order.
// Style is nil for text that comes from OCR or plain-text sources.
type Observation struct {
	Text  string
	Page  int // 1-based
	Order int // strictly increasing across the document
	Style *Style
}

// Candidate is an observation tentatively labeled as a heading.
// Confidence is used only for title tie-breaking, never for level selection.
type Candidate struct {
	Text       string
	Page       int
	Order      int
	Level      Level
	Confidence float64
}

// Entry is one heading in the final outline.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the single output artifact: a title plus headings in document order.
type Outline struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"outline"`
}

// NormalizeText trims the string and collapses internal whitespace runs
// to single spaces.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Sanitize drops observations that violate the sequence invariants: empty
// text, page < 1, order not increasing, or page decreasing. Malformed
// observations are skipped individually; the rest of the document survives.
func Sanitize(observations []Observation) []Observation {
	out := make([]Observation, 0, len(observations))
	lastOrder := -1
	lastPage := 0
	for _, obs := range observations {
		obs.Text = NormalizeText(obs.Text)
		if obs.Text == "" || obs.Page < 1 {
			continue
		}
		if obs.Order <= lastOrder || obs.Page < lastPage {
			continue
		}
		lastOrder = obs.Order
		lastPage = obs.Page
		out = append(out, obs)
	}
	return out
}
