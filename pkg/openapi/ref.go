package openapi

import (
	"errors"
	"fmt"
)

// ErrInlineSchema is returned by SchemaRef.Reference when the referenced
// schema is inline and therefore has no component name to point at.
var ErrInlineSchema = errors.New("openapi: schema is inline, not a named component reference")

// ComponentPrefix is the JSON pointer prefix for named component schemas.
const ComponentPrefix = "#/components/schemas/"

// SchemaRef points at a schema either by component name or by carrying the
// schema inline. Exactly one of the two forms is set.
type SchemaRef struct {
	name   string
	inline *Schema
}

// ComponentRef returns a reference to the named component schema.
func ComponentRef(name string) SchemaRef {
	return SchemaRef{name: name}
}

// InlineRef returns a reference carrying the schema inline.
func InlineRef(s *Schema) SchemaRef {
	return SchemaRef{inline: s}
}

// IsInline reports whether the reference carries an inline schema.
func (r SchemaRef) IsInline() bool {
	return r.name == ""
}

// Reference returns the component name of a named reference. It fails with
// ErrInlineSchema for inline references, which cannot appear where a
// "#/components/schemas/" pointer is required (discriminator mappings).
func (r SchemaRef) Reference() (string, error) {
	if r.name == "" {
		return "", ErrInlineSchema
	}
	return r.name, nil
}

// Schema renders the reference as a schema node: a $ref pointer for named
// references, or the inline schema itself.
func (r SchemaRef) Schema() *Schema {
	if r.name != "" {
		return &Schema{Ref: ComponentPrefix + r.name}
	}
	return r.inline
}

// String implements fmt.Stringer for diagnostics.
func (r SchemaRef) String() string {
	if r.name != "" {
		return fmt.Sprintf("ref(%s)", r.name)
	}
	return "inline"
}
