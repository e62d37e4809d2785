package cli

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gork-labs/oneof/pkg/oneof"
	"github.com/gork-labs/oneof/pkg/openapi"
)

// Manifest is the YAML declaration format consumed by the generate command:
// named object schemas plus the unions built from them. It is the IDL
// front-end to the same derivation the library API exposes.
type Manifest struct {
	Schemas map[string]*SchemaDef `yaml:"schemas"`
	Unions  map[string]*UnionDef  `yaml:"unions"`
}

// SchemaDef is a declared object schema node.
type SchemaDef struct {
	Type        string                `yaml:"type"`
	Description string                `yaml:"description"`
	Format      string                `yaml:"format"`
	Properties  map[string]*SchemaDef `yaml:"properties"`
	Required    []string              `yaml:"required"`
	Items       *SchemaDef            `yaml:"items"`
	Enum        []string              `yaml:"enum"`
	Minimum     *float64              `yaml:"minimum"`
	Maximum     *float64              `yaml:"maximum"`
	MinLength   *int                  `yaml:"minLength"`
	MaxLength   *int                  `yaml:"maxLength"`
	Pattern     string                `yaml:"pattern"`
}

// UnionDef declares one discriminated union.
type UnionDef struct {
	Discriminator      string         `yaml:"discriminator"`
	Title              string         `yaml:"title"`
	Description        string         `yaml:"description"`
	ExternalDocs       *ExternalDef   `yaml:"externalDocs"`
	AllowDuplicateTags bool           `yaml:"allowDuplicateTags"`
	Cases              []CaseDef      `yaml:"cases"`
}

// ExternalDef declares external documentation metadata.
type ExternalDef struct {
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// CaseDef declares one union case: the case name, the payload schema it
// wraps, and an optional explicit discriminator tag.
type CaseDef struct {
	Case   string `yaml:"case"`
	Schema string `yaml:"schema"`
	Tag    string `yaml:"tag"`
}

// ParseManifest parses and structurally validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Build derives every declared union and returns the components document
// containing all payload and union schemas.
func (m *Manifest) Build() (*openapi.Document, error) {
	descriptors := make(map[string]openapi.Type, len(m.Schemas))
	for name, def := range m.Schemas {
		descriptors[name] = &declaredType{name: name, schema: def.toSchema()}
	}

	reg := openapi.NewRegistry()

	// Deterministic processing order for reproducible diagnostics.
	names := make([]string, 0, len(m.Unions))
	for name := range m.Unions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := m.Unions[name]
		decl := oneof.Declaration{
			Name:                  name,
			Title:                 def.Title,
			Description:           def.Description,
			DiscriminatorProperty: def.Discriminator,
		}
		if def.ExternalDocs != nil {
			decl.ExternalDocs = &openapi.ExternalDocs{
				Description: def.ExternalDocs.Description,
				URL:         def.ExternalDocs.URL,
			}
		}
		for _, c := range def.Cases {
			payload, ok := descriptors[c.Schema]
			if !ok {
				return nil, fmt.Errorf("union %q, case %q: schema %q is not declared", name, c.Case, c.Schema)
			}
			cs := oneof.NewCase(c.Case, payload)
			if c.Tag != "" {
				cs = cs.WithTag(c.Tag)
			}
			decl.Cases = append(decl.Cases, cs)
		}

		var opts []oneof.Option
		if def.AllowDuplicateTags {
			opts = append(opts, oneof.AllowDuplicateTags())
		}
		u, err := oneof.New(decl, opts...)
		if err != nil {
			return nil, err
		}

		u.Register(reg)
		reg.Register(name, u.Schema())
	}

	// Schemas no union references still belong to the document.
	for _, d := range descriptors {
		d.Register(reg)
	}

	return &openapi.Document{Components: reg.Components()}, nil
}

// toSchema converts a manifest schema node into the document model.
func (d *SchemaDef) toSchema() *openapi.Schema {
	if d == nil {
		return nil
	}
	s := &openapi.Schema{
		Type:        d.Type,
		Description: d.Description,
		Format:      d.Format,
		Required:    d.Required,
		Enum:        d.Enum,
		Minimum:     d.Minimum,
		Maximum:     d.Maximum,
		MinLength:   d.MinLength,
		MaxLength:   d.MaxLength,
		Pattern:     d.Pattern,
		Items:       d.Items.toSchema(),
	}
	if s.Type == "" && len(d.Properties) > 0 {
		s.Type = "object"
	}
	if len(d.Properties) > 0 {
		s.Properties = make(map[string]*openapi.Schema, len(d.Properties))
		for name, prop := range d.Properties {
			s.Properties[name] = prop.toSchema()
		}
	}
	return s
}

// declaredType adapts a manifest schema into the openapi.Type contract.
// Decode and Encode are structural: the payload stays a JSON object, which
// is all the generator needs and mirrors how dynamic payloads behave.
type declaredType struct {
	name   string
	schema *openapi.Schema
}

func (t *declaredType) Name() string { return t.name }

func (t *declaredType) SchemaRef() openapi.SchemaRef {
	return openapi.ComponentRef(t.name)
}

func (t *declaredType) Register(reg *openapi.Registry) {
	reg.Register(t.name, t.schema)
}

func (t *declaredType) Decode(value any) (any, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a JSON object, got %T", t.name, value)
	}
	return obj, nil
}

func (t *declaredType) Encode(value any) (any, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a JSON object, got %T", t.name, value)
	}
	// Copy so the caller-owned result can be mutated without touching the
	// input value.
	cp := make(map[string]any, len(obj))
	for k, v := range obj {
		cp[k] = v
	}
	return cp, nil
}
