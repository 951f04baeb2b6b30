package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// maxRendered bounds the output cache
const maxRendered = 256

type renderKey struct {
	md    string
	width int
}

// MarkdownRenderer renders slide bodies, caching one glamour renderer per wrap
// width and the output for each body and width
type MarkdownRenderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
	rendered  map[renderKey]string
}

// NewMarkdownRenderer creates a renderer for a glamour standard style
// ("dark", "light", "notty", ...)
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &MarkdownRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		rendered:  make(map[renderKey]string),
	}
}

// Render formats markdown wrapped at width. On failure the raw text is returned.
func (m *MarkdownRenderer) Render(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	k := renderKey{md: md, width: width}
	if out, ok := m.rendered[k]; ok {
		return out
	}

	r, ok := m.renderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		m.renderers[width] = r
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	result := strings.Join(lines, "\n")
	if len(m.rendered) >= maxRendered {
		clear(m.rendered)
	}
	m.rendered[k] = result
	return result
}
