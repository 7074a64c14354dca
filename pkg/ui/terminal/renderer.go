// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/heyps/pkg/ui/display"
	"github.com/arthur-debert/heyps/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer draws results as styled tables and labels
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ListResult:
		return r.renderList(v)
	case *display.ResolveResult:
		return r.renderResolve(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Success", msg))
	return err
}

func (r *Renderer) renderList(list *display.ListResult) error {
	header := fmt.Sprintf("%s %s", styles.Render("Header", list.BundleID),
		styles.Render("Muted", fmt.Sprintf("(%d installed)", len(list.Installations))))
	if _, err := fmt.Fprintln(r.output, header); err != nil {
		return err
	}

	data := pterm.TableData{{"Name", "Version", "Selected by", "Path"}}
	for _, inst := range list.Installations {
		name := styles.Render("AppName", inst.Name)
		if inst.Beta {
			name += " " + styles.Render("Warning", "beta")
		}
		version := inst.Version
		if version == "" {
			version = styles.Render("Muted", "-")
		}
		data = append(data, []string{
			name,
			version,
			styles.Render("Selected", strings.Join(inst.PickedBy, ", ")),
			styles.Render("FilePath", inst.Path),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

func (r *Renderer) renderResolve(res *display.ResolveResult) error {
	lines := []string{
		fmt.Sprintf("%s %s", styles.Render("AppName", res.Name), styles.Render("Muted", "("+res.Target+")")),
		styles.Render("FilePath", res.Path),
	}
	if res.Version != "" {
		lines = append(lines, styles.Render("Muted", "version "+res.Version))
	}
	_, err := fmt.Fprintln(r.output, strings.Join(lines, "\n"))
	return err
}
