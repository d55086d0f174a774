package handlers

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders component descriptions. Raw HTML in the source is dropped.
type markdown struct {
	parser goldmark.Markdown
}

func newMarkdown() *markdown {
	return &markdown{
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.Linkify,
				extension.Typographer,
			),
		),
	}
}

func (m *markdown) render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.parser.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// renderAll renders every description of the id -> description map. A description
// that fails to render is shown as escaped text.
func (m *markdown) renderAll(descriptions map[string]string) map[string]template.HTML {
	rendered := make(map[string]template.HTML, len(descriptions))
	for id, src := range descriptions {
		html, err := m.render(src)
		if err != nil {
			html = template.HTML(template.HTMLEscapeString(src))
		}
		rendered[id] = html
	}
	return rendered
}
