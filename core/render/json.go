// Package render serializes converted documents.
package render

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/gaurav-prasanna/htmladf/core"
)

// JSONRenderer produces the ADF JSON for a document.
type JSONRenderer struct {
	indent bool
}

var _ core.Renderer = (*JSONRenderer)(nil)

// NewJSONRenderer creates a JSONRenderer. With indent set the output is
// pretty-printed with two spaces.
func NewJSONRenderer(indent bool) *JSONRenderer {
	return &JSONRenderer{indent: indent}
}

// Render marshals doc. A nil doc renders as an empty document.
func (r *JSONRenderer) Render(doc *core.Doc) ([]byte, error) {
	if doc == nil {
		doc = core.NewDoc(nil)
	}

	var (
		data []byte
		err  error
	)
	if r.indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, errors.Wrap(err, "marshaling JSON")
	}
	return data, nil
}
