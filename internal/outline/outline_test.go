package outline

import (
	"encoding/json"
	"testing"
)

func TestNormalizeText_CollapsesWhitespace(t *testing.T) {
	got := NormalizeText("  Chapter   One\t\tIntroduction ")
	want := "Chapter One Introduction"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSanitize_DropsOutOfOrderObservations(t *testing.T) {
	obs := []Observation{
		{Text: "First", Page: 1, Order: 1},
		{Text: "Stale", Page: 1, Order: 1}, // duplicate order
		{Text: "Second", Page: 2, Order: 3},
		{Text: "Backwards", Page: 1, Order: 4}, // page decreased
		{Text: "Third", Page: 2, Order: 5},
	}
	got := Sanitize(obs)
	if len(got) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(got))
	}
	if got[0].Text != "First" || got[1].Text != "Second" || got[2].Text != "Third" {
		t.Errorf("unexpected survivors: %+v", got)
	}
}

func TestSanitize_DropsNegativePageAndEmptyText(t *testing.T) {
	obs := []Observation{
		{Text: "Valid", Page: 1, Order: 1},
		{Text: "   ", Page: 1, Order: 2},
		{Text: "Bad page", Page: -1, Order: 3},
		{Text: "Also valid", Page: 1, Order: 4},
	}
	got := Sanitize(obs)
	if len(got) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(got))
	}
}

func TestSanitize_NormalizesSurvivorText(t *testing.T) {
	obs := []Observation{{Text: "  Two   Words ", Page: 1, Order: 1}}
	got := Sanitize(obs)
	if len(got) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(got))
	}
	if got[0].Text != "Two Words" {
		t.Errorf("expected normalized text, got %q", got[0].Text)
	}
}

func TestLevel_JSONRoundTrip(t *testing.T) {
	entry := Entry{Level: H2, Text: "Methods", Page: 4}
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"level":"H2","text":"Methods","page":4}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}

	var back Entry
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != entry {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestLevel_UnmarshalRejectsUnknown(t *testing.T) {
	var l Level
	if err := json.Unmarshal([]byte(`"H7"`), &l); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOutline_EmptyEntriesMarshalAsArray(t *testing.T) {
	o := Outline{Title: "report.pdf", Entries: []Entry{}}
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"title":"report.pdf","outline":[]}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}
