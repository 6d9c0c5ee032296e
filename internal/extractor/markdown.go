package extractor

import (
	"context"
	"fmt"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"outliner/internal/outline"
	"outliner/internal/pipeline"
)

// MarkdownExtractor reads headings straight out of a markdown document.
// Markdown declares its own heading levels, so the candidates skip both
// classifiers and go directly to the assembler. Markdown has no pages;
// everything reports page 1. The mode argument is ignored.
type MarkdownExtractor struct {
	path string
	cfg  Config
}

func (e *MarkdownExtractor) Extract(ctx context.Context, _ pipeline.Mode, sourceName string) (outline.Outline, error) {
	src, err := os.ReadFile(e.path)
	if err != nil {
		return outline.Outline{}, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var candidates []outline.Candidate
	order := 0
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level > 3 {
			continue
		}
		title := outline.NormalizeText(string(heading.Text(src)))
		if title == "" {
			continue
		}
		order++
		candidates = append(candidates, outline.Candidate{
			Text:       title,
			Page:       1,
			Order:      order,
			Level:      outline.Level(heading.Level),
			Confidence: 1.0,
		})
	}

	return outline.Assemble(candidates, sourceName, e.cfg.Assemble), nil
}
