package report

import (
	"io"

	"github.com/bytedance/sonic"
)

// WriteJSON encodes doc as indented JSON with encoding/json-compatible
// semantics (sorted map keys, HTML escaping).
func WriteJSON(w io.Writer, doc Document) error {
	data, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}

// ReadJSON decodes a document written by WriteJSON.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	data, err := io.ReadAll(r)
	if err != nil {
		return doc, err
	}
	err = sonic.ConfigStd.Unmarshal(data, &doc)

	return doc, err
}
