// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Renderer writes results as YAML documents
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as a YAML document
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

func (r *Renderer) encode(v interface{}) error {
	encoder := yaml.NewEncoder(r.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
