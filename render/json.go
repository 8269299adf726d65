package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/tecla/metric"
)

// JSONRenderer writes a result mapping as a JSON object to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type jsonResult struct {
	Title   string        `json:"title"`
	Metrics metric.Result `json:"metrics"`
}

// Render serializes the document title and its indices as one JSON object.
func (r *JSONRenderer) Render(title string, res metric.Result) error {
	return json.NewEncoder(r.W).Encode(jsonResult{Title: title, Metrics: res})
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
