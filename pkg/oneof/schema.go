package oneof

import "github.com/gork-labs/oneof/pkg/openapi"

// buildSchema assembles the discriminated oneOf schema from the resolved
// cases: sub-schema references and the discriminator enum in declaration
// order, and the discriminator mapping restricted to explicit-tag cases.
// Documentation metadata is copied through verbatim.
func buildSchema(decl Declaration, cases []resolvedCase) (*openapi.Schema, error) {
	oneOf := make([]*openapi.Schema, 0, len(cases))
	tags := make([]string, 0, len(cases))
	mapping := make(map[string]string)

	for _, rc := range cases {
		oneOf = append(oneOf, rc.payload.SchemaRef().Schema())
		// Declaration order, duplicates preserved verbatim.
		tags = append(tags, rc.tag)

		// Implicit tags contribute no mapping entry; only explicit tags
		// need a component name to map to.
		if !rc.explicitTag {
			continue
		}
		name, err := rc.payload.SchemaRef().Reference()
		if err != nil {
			return nil, &SchemaError{Union: decl.Name, Case: rc.identifier, Cause: err}
		}
		mapping[rc.tag] = openapi.ComponentPrefix + name
	}

	schema := &openapi.Schema{
		Type:         "object",
		Title:        decl.Title,
		Description:  decl.Description,
		ExternalDocs: decl.ExternalDocs,
		OneOf:        oneOf,
		Properties: map[string]*openapi.Schema{
			decl.DiscriminatorProperty: {Type: "string", Enum: tags},
		},
		Discriminator: &openapi.Discriminator{
			PropertyName: decl.DiscriminatorProperty,
			Mapping:      mapping,
		},
	}
	if len(mapping) == 0 {
		schema.Discriminator.Mapping = nil
	}
	return schema, nil
}
