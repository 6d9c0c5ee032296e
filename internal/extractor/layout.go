package extractor

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"outliner/internal/outline"
	"outliner/internal/pipeline"
)

// centerTolerance is the fraction of the page width a row's midpoint may
// deviate from the page center and still count as centered.
const centerTolerance = 0.1

// defaultPageWidth is US Letter in points, used when no MediaBox resolves.
const defaultPageWidth = 612.0

// PDFExtractor runs the full layout-or-OCR pipeline over a PDF file.
type PDFExtractor struct {
	path string
	cfg  Config
}

func (e *PDFExtractor) Extract(ctx context.Context, mode pipeline.Mode, sourceName string) (outline.Outline, error) {
	// Validate the file before any extraction runs. Both the layout and OCR
	// sources flatten their own failures into empty sequences, so a PDF that
	// cannot be read at all would otherwise surface as a silently empty
	// outline instead of an error the caller can report.
	f, err := os.Open(e.path)
	if err != nil {
		return outline.Outline{}, fmt.Errorf("open pdf: %w", err)
	}
	pages, err := api.PageCount(f, nil)
	f.Close()
	if err != nil {
		return outline.Outline{}, fmt.Errorf("read pdf: %w", err)
	}
	if e.cfg.Log != nil {
		e.cfg.Log.Debug("pdf opened", "file", sourceName, "pages", pages)
	}

	runner := &pipeline.Runner{
		Layout:   &layoutSource{path: e.path},
		OCR:      newOCRSource(e.path, e.cfg.OCRLanguage, e.cfg.Log),
		Classify: e.cfg.Classify,
		Assemble: e.cfg.Assemble,
		Log:      e.cfg.Log,
	}
	return runner.Extract(ctx, mode, sourceName)
}

// layoutSource reads typed, positioned text rows out of a text-native PDF.
type layoutSource struct {
	path string
}

func (s *layoutSource) Observations(ctx context.Context) ([]outline.Observation, error) {
	f, reader, err := pdflib.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var obs []outline.Observation
	order := 0
	numPages := reader.NumPage()
	for pageNr := 1; pageNr <= numPages; pageNr++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(pageNr)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		// Top of the page first. Row positions grow bottom-to-top in PDF
		// coordinates.
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Position > rows[j].Position
		})

		width := pageWidth(page)
		for _, row := range rows {
			text, style := mergeRow(row.Content, width)
			if text == "" {
				continue
			}
			order++
			obs = append(obs, outline.Observation{
				Text:  text,
				Page:  pageNr,
				Order: order,
				Style: style,
			})
		}
	}
	return obs, nil
}

// mergeRow joins the character fragments of one text row into a single
// observation, carrying the row's dominant font size, boldness, and
// horizontal placement. Gaps wider than a fifth of the font size become
// spaces; PDFs often position words instead of drawing space glyphs.
func mergeRow(texts []pdflib.Text, pageWidth float64) (string, *outline.Style) {
	if len(texts) == 0 {
		return "", nil
	}

	var sb strings.Builder
	var fontSize float64
	bold := false
	minX := texts[0].X
	maxX := texts[0].X + texts[0].W
	prevEnd := texts[0].X

	for _, t := range texts {
		if gap := t.X - prevEnd; gap > t.FontSize*0.2 && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.S)
		prevEnd = t.X + t.W

		if t.FontSize > fontSize {
			fontSize = t.FontSize
		}
		if isBoldFont(t.Font) {
			bold = true
		}
		if t.X < minX {
			minX = t.X
		}
		if t.X+t.W > maxX {
			maxX = t.X + t.W
		}
	}

	text := outline.NormalizeText(sb.String())
	if text == "" {
		return "", nil
	}
	return text, &outline.Style{
		FontSize: fontSize,
		Bold:     bold,
		Centered: isCentered(minX, maxX, pageWidth),
	}
}

// isBoldFont checks the PostScript font name for weight markers.
func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold")
}

// isCentered reports whether the row's midpoint sits within centerTolerance
// of the page center.
func isCentered(minX, maxX, pageWidth float64) bool {
	if pageWidth <= 0 {
		return false
	}
	mid := (minX + maxX) / 2
	center := pageWidth / 2
	diff := mid - center
	if diff < 0 {
		diff = -diff
	}
	return diff < pageWidth*centerTolerance
}

// pageWidth resolves the page's MediaBox width, walking up the page tree for
// inherited values.
func pageWidth(page pdflib.Page) float64 {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		mb := v.Key("MediaBox")
		if !mb.IsNull() && mb.Len() == 4 {
			return mb.Index(2).Float64() - mb.Index(0).Float64()
		}
	}
	return defaultPageWidth
}
