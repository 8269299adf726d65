// Package render writes metric results for human or machine consumption.
package render

import (
	"fmt"
	"io"

	"github.com/revelaction/tecla/metric"
)

// Renderer writes one document's result mapping.
type Renderer interface {
	Render(title string, res metric.Result) error
}

// TextRenderer writes a result as an aligned code/value table, one index per
// line, in code order.
type TextRenderer struct {
	W io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

func (r *TextRenderer) Render(title string, res metric.Result) error {
	if _, err := fmt.Fprintf(r.W, "📖 %s\n", title); err != nil {
		return err
	}

	for _, code := range metric.Codes {
		if _, err := fmt.Fprintf(r.W, "%-10s %12.4f\n", code, res[code]); err != nil {
			return err
		}
	}

	return nil
}

// compile-time interface check
var _ Renderer = (*TextRenderer)(nil)
