// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/heyps/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ListResult:
		return r.renderList(v)
	case *display.ResolveResult:
		_, err := fmt.Fprintln(r.output, v.Path)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// renderList writes one tab-aligned line per installation:
// name, version, selectors and path.
func (r *Renderer) renderList(list *display.ListResult) error {
	w := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, inst := range list.Installations {
		version := inst.Version
		if version == "" {
			version = "-"
		}
		picked := strings.Join(inst.PickedBy, ",")
		if picked == "" {
			picked = "-"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", inst.Name, version, picked, inst.Path); err != nil {
			return err
		}
	}
	return w.Flush()
}
