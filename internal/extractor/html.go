package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"outliner/internal/outline"
	"outliner/internal/pipeline"
)

// HTMLExtractor reads h1-h3 headings out of an HTML document. Like markdown,
// HTML declares its levels, so candidates feed the assembler directly. The
// <title> element, when present, is the outline title and all headings stay
// entries; without one, title resolution falls back to the filename.
type HTMLExtractor struct {
	path string
	cfg  Config
}

func (e *HTMLExtractor) Extract(ctx context.Context, _ pipeline.Mode, sourceName string) (outline.Outline, error) {
	f, err := os.Open(e.path)
	if err != nil {
		return outline.Outline{}, fmt.Errorf("open html: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return outline.Outline{}, fmt.Errorf("parse html: %w", err)
	}

	var candidates []outline.Candidate
	order := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "h1", "h2", "h3":
				text := outline.NormalizeText(textContent(n))
				if text != "" {
					order++
					candidates = append(candidates, outline.Candidate{
						Text:       text,
						Page:       1,
						Order:      order,
						Level:      outline.Level(n.Data[1] - '0'),
						Confidence: 1.0,
					})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	// A declared <title> is authoritative: it becomes the outline title and
	// no heading is promoted out of the entries to serve as one.
	if title := findTitle(doc); title != "" {
		return outline.AssembleTitled(candidates, title, e.cfg.Assemble), nil
	}
	return outline.Assemble(candidates, sourceName, e.cfg.Assemble), nil
}

func findTitle(doc *html.Node) string {
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			title = outline.NormalizeText(textContent(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
