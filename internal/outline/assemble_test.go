package outline

import "testing"

func TestAssemble_SortsByReadingOrder(t *testing.T) {
	candidates := []Candidate{
		{Text: "Conclusion", Page: 9, Order: 30, Level: H1, Confidence: 0.8},
		{Text: "Introduction", Page: 2, Order: 10, Level: H1, Confidence: 0.8},
		{Text: "Methods", Page: 5, Order: 20, Level: H1, Confidence: 0.8},
	}
	got := Assemble(candidates, "doc.pdf", DefaultAssembleConfig())
	if len(got.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got.Entries))
	}
	want := []string{"Introduction", "Methods", "Conclusion"}
	for i, text := range want {
		if got.Entries[i].Text != text {
			t.Errorf("entry %d: expected %q, got %q", i, text, got.Entries[i].Text)
		}
	}
}

func TestAssemble_DropsRunningHeaderWithinWindow(t *testing.T) {
	candidates := []Candidate{
		{Text: "Annual Report", Page: 3, Order: 1, Level: H1, Confidence: 0.6},
		{Text: "ANNUAL REPORT", Page: 4, Order: 2, Level: H1, Confidence: 0.6},
		{Text: "Annual Report", Page: 5, Order: 3, Level: H1, Confidence: 0.6},
	}
	got := Assemble(candidates, "doc.pdf", DefaultAssembleConfig())
	if len(got.Entries) != 1 {
		t.Fatalf("expected 1 entry after dedup, got %d: %+v", len(got.Entries), got.Entries)
	}
	if got.Entries[0].Page != 3 {
		t.Errorf("expected first occurrence to survive, got page %d", got.Entries[0].Page)
	}
}

func TestAssemble_KeepsRepeatOutsideWindow(t *testing.T) {
	candidates := []Candidate{
		{Text: "Summary", Page: 1, Order: 1, Level: H2, Confidence: 0.5},
		{Text: "Summary", Page: 10, Order: 2, Level: H2, Confidence: 0.5},
	}
	got := Assemble(candidates, "doc.pdf", DefaultAssembleConfig())
	// The page-1 occurrence becomes the title; the distant repeat stays an entry.
	if got.Title != "Summary" {
		t.Fatalf("expected page-1 candidate as title, got %q", got.Title)
	}
	if len(got.Entries) != 1 || got.Entries[0].Page != 10 {
		t.Errorf("expected distant repeat to survive, got %+v", got.Entries)
	}
}

func TestAssemble_TitleFromHighestConfidencePageOne(t *testing.T) {
	candidates := []Candidate{
		{Text: "Draft", Page: 1, Order: 1, Level: H2, Confidence: 0.4},
		{Text: "Network Security Review", Page: 1, Order: 2, Level: H1, Confidence: 0.9},
		{Text: "Scope", Page: 2, Order: 3, Level: H2, Confidence: 0.5},
	}
	got := Assemble(candidates, "doc.pdf", DefaultAssembleConfig())
	if got.Title != "Network Security Review" {
		t.Errorf("expected highest-confidence title, got %q", got.Title)
	}
	// The title candidate was not first in reading order, so it stays an entry.
	if len(got.Entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(got.Entries))
	}
}

func TestAssemble_TitleNotRepeatedAsFirstEntry(t *testing.T) {
	candidates := []Candidate{
		{Text: "User Guide", Page: 1, Order: 1, Level: H1, Confidence: 0.9},
		{Text: "Getting Started", Page: 1, Order: 2, Level: H2, Confidence: 0.5},
	}
	got := Assemble(candidates, "guide.pdf", DefaultAssembleConfig())
	if got.Title != "User Guide" {
		t.Fatalf("expected title %q, got %q", "User Guide", got.Title)
	}
	if len(got.Entries) != 1 || got.Entries[0].Text != "Getting Started" {
		t.Errorf("title should not repeat as first entry, got %+v", got.Entries)
	}
}

func TestAssemble_TitleTieBreaksToEarliestOrder(t *testing.T) {
	candidates := []Candidate{
		{Text: "First", Page: 1, Order: 1, Level: H1, Confidence: 0.8},
		{Text: "Second", Page: 1, Order: 2, Level: H1, Confidence: 0.8},
	}
	got := Assemble(candidates, "doc.pdf", DefaultAssembleConfig())
	if got.Title != "First" {
		t.Errorf("expected earliest candidate on tie, got %q", got.Title)
	}
}

func TestAssemble_FallbackTitleFromSourceName(t *testing.T) {
	candidates := []Candidate{
		{Text: "Appendix", Page: 7, Order: 1, Level: H2, Confidence: 0.5},
	}
	got := Assemble(candidates, "report.pdf", DefaultAssembleConfig())
	if got.Title != "report.pdf" {
		t.Errorf("expected fallback title, got %q", got.Title)
	}
	if len(got.Entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(got.Entries))
	}
}

func TestAssemble_EmptyCandidatesIsValid(t *testing.T) {
	got := Assemble(nil, "scan.pdf", DefaultAssembleConfig())
	if got.Title != "scan.pdf" {
		t.Errorf("expected source name title, got %q", got.Title)
	}
	if got.Entries == nil || len(got.Entries) != 0 {
		t.Errorf("expected empty non-nil entries, got %#v", got.Entries)
	}
}

func TestAssembleTitled_DeclaredTitleKeepsAllEntries(t *testing.T) {
	candidates := []Candidate{
		{Text: "Version 2.0", Page: 1, Order: 1, Level: H1, Confidence: 1.0},
		{Text: "Bug Fixes", Page: 1, Order: 2, Level: H2, Confidence: 1.0},
	}
	got := AssembleTitled(candidates, "Release Notes", DefaultAssembleConfig())
	if got.Title != "Release Notes" {
		t.Fatalf("expected declared title, got %q", got.Title)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("declared title must not consume a heading, got %+v", got.Entries)
	}
	if got.Entries[0].Text != "Version 2.0" {
		t.Errorf("expected first heading kept as entry, got %+v", got.Entries[0])
	}
}

func TestAssembleTitled_StillDedupsRunningHeaders(t *testing.T) {
	candidates := []Candidate{
		{Text: "Handbook", Page: 1, Order: 1, Level: H1, Confidence: 0.6},
		{Text: "HANDBOOK", Page: 2, Order: 2, Level: H1, Confidence: 0.6},
	}
	got := AssembleTitled(candidates, "Employee Handbook", DefaultAssembleConfig())
	if len(got.Entries) != 1 {
		t.Errorf("expected running header deduped, got %+v", got.Entries)
	}
}

func TestAssemble_DoesNotMutateInput(t *testing.T) {
	candidates := []Candidate{
		{Text: "B", Page: 2, Order: 2, Level: H1, Confidence: 0.5},
		{Text: "A", Page: 2, Order: 1, Level: H1, Confidence: 0.5},
	}
	Assemble(candidates, "doc.pdf", DefaultAssembleConfig())
	if candidates[0].Text != "B" {
		t.Error("input slice was reordered")
	}
}
