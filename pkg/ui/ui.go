// Package ui renders command results in terminal, text, JSON or YAML form.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/heyps/pkg/ui/json"
	"github.com/arthur-debert/heyps/pkg/ui/terminal"
	"github.com/arthur-debert/heyps/pkg/ui/text"
	"github.com/arthur-debert/heyps/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a result from pkg/ui/display
	RenderResult(result interface{}) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
