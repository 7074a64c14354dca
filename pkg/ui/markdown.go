package ui

import (
	"github.com/charmbracelet/glamour"
)

// DefaultWrapWidth is the column markdown is wrapped at
const DefaultWrapWidth = 80

// RenderMarkdown converts markdown for display. With rich set it is styled
// with glamour; otherwise, or if glamour fails, the source is returned as is.
func RenderMarkdown(content string, rich bool) string {
	if !rich {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(DefaultWrapWidth),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
