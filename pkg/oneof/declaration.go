package oneof

import "github.com/gork-labs/oneof/pkg/openapi"

// Declaration describes a discriminated union. It is fixed at definition
// time and immutable thereafter; New derives all runtime artifacts from it.
type Declaration struct {
	// Name identifies the union in diagnostics and serves as its descriptor
	// name when the union itself is used as a payload type.
	Name string

	// Title and Description are copied verbatim into the emitted schema.
	Title       string
	Description string

	// DiscriminatorProperty names the JSON property read and written for
	// tagging. Must be non-empty.
	DiscriminatorProperty string

	// ExternalDocs is copied verbatim into the emitted schema when present.
	ExternalDocs *openapi.ExternalDocs

	// Cases lists the union's alternatives in declaration order. The order
	// is significant: it fixes the oneOf ordering, the discriminator enum
	// ordering, and the decode tie-break when duplicate tags are allowed.
	Cases []Case
}

// Case declares one union alternative. Payloads must contain exactly one
// descriptor; any other shape is rejected by New with a DeclarationError.
type Case struct {
	// Identifier names the case within the union (the case constructor).
	Identifier string

	// Payloads holds the case's payload type descriptor. Exactly one entry
	// is required.
	Payloads []openapi.Type

	// Tag, when non-empty, overrides the discriminator tag otherwise derived
	// from the payload type's name. Only explicitly tagged cases contribute
	// entries to the discriminator mapping.
	Tag string
}

// NewCase declares a case wrapping a single payload type with an implicit,
// type-name-derived discriminator tag.
func NewCase(identifier string, payload openapi.Type) Case {
	return Case{Identifier: identifier, Payloads: []openapi.Type{payload}}
}

// WithTag returns a copy of the case with an explicit discriminator tag.
func (c Case) WithTag(tag string) Case {
	c.Tag = tag
	return c
}
