package source

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/textsieve/textsieve/internal/model"
)

// StripHTML reduces markup to its visible text, skipping script/style
// content. Text that fails to parse is returned unchanged — a best-effort
// normalization, never a fault.
func StripHTML(text string) string {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return text
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if buf.Len() == 0 {
		return text
	}
	return buf.String()
}

// StripItemText rewrites the subject-text field of every item through
// StripHTML. Items without a usable subject text are left alone; the
// pipeline will skip them.
func StripItemText(items []model.InputItem, field string) {
	for _, item := range items {
		if text, ok := item.Text(field); ok {
			item[field] = StripHTML(text)
		}
	}
}
