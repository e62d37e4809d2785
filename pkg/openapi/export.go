package openapi

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is the minimal exportable wrapper around a components section.
// The surrounding toolchain owns paths, info and the rest of the OpenAPI
// root; this toolkit only contributes reusable schemas.
type Document struct {
	Components *Components `json:"components,omitempty"`
}

// WriteJSON writes the document as pretty-printed JSON.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteYAML writes the document as YAML. The document is round-tripped
// through JSON first so the emitted keys keep their JSON casing
// (propertyName, externalDocs) instead of yaml.v3's lowercased field names.
func WriteYAML(w io.Writer, doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return err
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}
