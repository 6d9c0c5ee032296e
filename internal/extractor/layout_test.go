package extractor

import (
	"testing"

	pdflib "github.com/ledongthuc/pdf"
)

func frag(s string, x, w, size float64, font string) pdflib.Text {
	return pdflib.Text{S: s, X: x, W: w, FontSize: size, Font: font}
}

func TestMergeRow_JoinsFragmentsWithGapSpaces(t *testing.T) {
	// "Chapter" then "One" with a 4pt gap at 12pt type. The gap exceeds a
	// fifth of the font size, so a space is inserted.
	row := []pdflib.Text{
		frag("Chap", 100, 20, 12, "Helvetica"),
		frag("ter", 120, 15, 12, "Helvetica"),
		frag("One", 139, 18, 12, "Helvetica"),
	}
	text, style := mergeRow(row, 612)
	if text != "Chapter One" {
		t.Errorf("expected %q, got %q", "Chapter One", text)
	}
	if style == nil || style.FontSize != 12 {
		t.Errorf("unexpected style: %+v", style)
	}
}

func TestMergeRow_DetectsBoldFromFontName(t *testing.T) {
	cases := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"ABCDEF+ArialBlack", true},
		{"TimesNewRoman-SemiBold", true},
		{"Helvetica", false},
		{"Times-Italic", false},
	}
	for _, tc := range cases {
		_, style := mergeRow([]pdflib.Text{frag("Heading", 100, 50, 14, tc.font)}, 612)
		if style == nil {
			t.Fatalf("font %q: expected style", tc.font)
		}
		if style.Bold != tc.want {
			t.Errorf("font %q: bold = %v, want %v", tc.font, style.Bold, tc.want)
		}
	}
}

func TestMergeRow_CarriesLargestFontSize(t *testing.T) {
	row := []pdflib.Text{
		frag("Big", 100, 30, 18, "Helvetica"),
		frag("small", 140, 25, 10, "Helvetica"),
	}
	_, style := mergeRow(row, 612)
	if style.FontSize != 18 {
		t.Errorf("expected dominant size 18, got %v", style.FontSize)
	}
}

func TestMergeRow_EmptyRow(t *testing.T) {
	text, style := mergeRow(nil, 612)
	if text != "" || style != nil {
		t.Errorf("expected empty result, got %q %+v", text, style)
	}
}

func TestMergeRow_CenteredRow(t *testing.T) {
	// Row spans 256..356 on a 612pt page: midpoint 306 is exact center.
	_, style := mergeRow([]pdflib.Text{frag("Title", 256, 100, 14, "Helvetica")}, 612)
	if !style.Centered {
		t.Error("expected centered row")
	}

	// Left-aligned row far from center.
	_, style = mergeRow([]pdflib.Text{frag("margin note", 40, 80, 14, "Helvetica")}, 612)
	if style.Centered {
		t.Error("expected left-aligned row not centered")
	}
}

func TestIsCentered_ZeroWidthPage(t *testing.T) {
	if isCentered(10, 50, 0) {
		t.Error("zero page width must never report centered")
	}
}
