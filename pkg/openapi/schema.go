package openapi

import "encoding/json"

// NOTE: These definitions intentionally keep only the fields the derivation
// logic actively populates. Additional fields can be added without breaking
// existing users as the toolkit expands.

// Schema represents an OpenAPI 3.1 schema object defining the structure of
// request/response data.
type Schema struct {
	// Title provides a human-readable name for the schema. Documentation UIs
	// (e.g. ReDoc, Swagger UI) display this value in type signatures.
	Title         string             `json:"title,omitempty"`
	Ref           string             `json:"$ref,omitempty"`
	Type          string             `json:"-"`
	Types         []string           `json:"-"`
	Properties    map[string]*Schema `json:"properties,omitempty"`
	Required      []string           `json:"required,omitempty"`
	OneOf         []*Schema          `json:"oneOf,omitempty"`
	AnyOf         []*Schema          `json:"anyOf,omitempty"`
	Discriminator *Discriminator     `json:"discriminator,omitempty"`
	Description   string             `json:"description,omitempty"`
	ExternalDocs  *ExternalDocs      `json:"externalDocs,omitempty"`
	Format        string             `json:"format,omitempty"`
	Minimum       *float64           `json:"minimum,omitempty"`
	Maximum       *float64           `json:"maximum,omitempty"`
	MinLength     *int               `json:"minLength,omitempty"`
	MaxLength     *int               `json:"maxLength,omitempty"`
	Pattern       string             `json:"pattern,omitempty"`
	Enum          []string           `json:"enum,omitempty"`
	Items         *Schema            `json:"items,omitempty"`
}

// MarshalJSON implements custom JSON marshaling for Schema to handle the type
// field correctly. If Types is set, it marshals as an array. If Type is set,
// it marshals as a string.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type Alias Schema
	aux := &struct {
		Type interface{} `json:"type,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(s),
	}

	if len(s.Types) > 0 {
		aux.Type = s.Types
	} else if s.Type != "" {
		aux.Type = s.Type
	}

	return json.Marshal(aux)
}

// UnmarshalJSON implements custom JSON unmarshaling for Schema to handle the
// type field correctly.
func (s *Schema) UnmarshalJSON(data []byte) error {
	type Alias Schema
	aux := &struct {
		Type interface{} `json:"type"`
		*Alias
	}{
		Alias: (*Alias)(s),
	}

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	switch v := aux.Type.(type) {
	case string:
		s.Type = v
	case []interface{}:
		s.Types = make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				s.Types = append(s.Types, str)
			}
		}
	}

	return nil
}

// Discriminator represents an OpenAPI discriminator object for polymorphic
// schemas. Mapping holds only explicitly declared tag overrides; implicit
// tags are resolved by schema consumers through the name convention.
type Discriminator struct {
	PropertyName string            `json:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty"`
}

// ExternalDocs represents an OpenAPI external documentation object.
type ExternalDocs struct {
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

// Components represents the OpenAPI components section containing reusable
// schema objects.
type Components struct {
	Schemas map[string]*Schema `json:"schemas,omitempty"`
}
