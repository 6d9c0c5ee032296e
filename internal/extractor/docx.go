package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"outliner/internal/outline"
	"outliner/internal/pipeline"
)

// DOCXExtractor reads Heading1-Heading3 styled paragraphs out of a .docx
// file. Word documents flow without fixed pages, so everything reports
// page 1. The mode argument is ignored.
type DOCXExtractor struct {
	path string
	cfg  Config
}

func (e *DOCXExtractor) Extract(ctx context.Context, _ pipeline.Mode, sourceName string) (outline.Outline, error) {
	f, err := os.Open(e.path)
	if err != nil {
		return outline.Outline{}, fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return outline.Outline{}, fmt.Errorf("stat docx: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return outline.Outline{}, fmt.Errorf("parse docx: %w", err)
	}

	var candidates []outline.Candidate
	order := 0
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		level := docxHeadingLevel(para)
		if level == 0 || level > 3 {
			continue
		}
		text := outline.NormalizeText(docxParagraphText(para))
		if text == "" {
			continue
		}
		order++
		candidates = append(candidates, outline.Candidate{
			Text:       text,
			Page:       1,
			Order:      order,
			Level:      outline.Level(level),
			Confidence: 1.0,
		})
	}

	return outline.Assemble(candidates, sourceName, e.cfg.Assemble), nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	switch {
	case strings.EqualFold(style, "Heading1") || strings.EqualFold(style, "heading 1"):
		return 1
	case strings.EqualFold(style, "Heading2") || strings.EqualFold(style, "heading 2"):
		return 2
	case strings.EqualFold(style, "Heading3") || strings.EqualFold(style, "heading 3"):
		return 3
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
