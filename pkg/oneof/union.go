package oneof

import "github.com/gork-labs/oneof/pkg/openapi"

// Union is the derived form of a Declaration: resolved cases plus the
// discriminated schema, computed once by New. A Union is immutable and may
// be used concurrently from any number of goroutines without synchronization.
//
// Union implements openapi.Type, so a union can itself serve as a payload
// type of another union. Its schema is inline, which means a nested union
// cannot be given an explicit tag in its parent (there is no component name
// to map to) — the same restriction the schema builder enforces for any
// inline payload.
type Union struct {
	decl   Declaration
	cases  []resolvedCase
	schema *openapi.Schema
}

// Option tweaks definition-time validation.
type Option func(*config)

type config struct {
	allowDuplicateTags bool
}

// AllowDuplicateTags disables the definition-time rejection of colliding
// discriminator tags. With duplicates allowed, decoding resolves the
// ambiguity in favor of the first-declared case, and the discriminator enum
// lists every tag verbatim including the duplicates.
func AllowDuplicateTags() Option {
	return func(c *config) { c.allowDuplicateTags = true }
}

// New derives a Union from its declaration. It validates the declaration
// (non-empty discriminator property, exactly one payload per case, unique
// tags unless AllowDuplicateTags) and builds the discriminated schema
// eagerly, so every definition-time failure surfaces here rather than at
// decode or encode time.
func New(decl Declaration, opts ...Option) (*Union, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if decl.DiscriminatorProperty == "" {
		return nil, &DeclarationError{Union: decl.Name, Reason: ErrMissingDiscriminator}
	}

	cases, err := resolveCases(decl)
	if err != nil {
		return nil, err
	}

	if !cfg.allowDuplicateTags {
		seen := make(map[string]struct{}, len(cases))
		for _, rc := range cases {
			if _, dup := seen[rc.tag]; dup {
				return nil, &DeclarationError{Union: decl.Name, Case: rc.identifier, Reason: ErrDuplicateTag}
			}
			seen[rc.tag] = struct{}{}
		}
	}

	schema, err := buildSchema(decl, cases)
	if err != nil {
		return nil, err
	}

	return &Union{decl: decl, cases: cases, schema: schema}, nil
}

// MustNew is like New but panics on a declaration error. Intended for
// package-level union definitions.
func MustNew(decl Declaration, opts ...Option) *Union {
	u, err := New(decl, opts...)
	if err != nil {
		panic(err)
	}
	return u
}

// Name returns the declared union name.
func (u *Union) Name() string {
	return u.decl.Name
}

// DiscriminatorProperty returns the JSON property carrying the tag.
func (u *Union) DiscriminatorProperty() string {
	return u.decl.DiscriminatorProperty
}

// Tags returns the resolved discriminator tags in declaration order.
func (u *Union) Tags() []string {
	tags := make([]string, len(u.cases))
	for i, rc := range u.cases {
		tags[i] = rc.tag
	}
	return tags
}

// Tag returns the resolved discriminator tag for the named case.
func (u *Union) Tag(caseIdentifier string) (string, bool) {
	for _, rc := range u.cases {
		if rc.identifier == caseIdentifier {
			return rc.tag, true
		}
	}
	return "", false
}

// SchemaRef returns the union's discriminated schema, inline.
func (u *Union) SchemaRef() openapi.SchemaRef {
	return openapi.InlineRef(u.schema)
}

// Schema returns the derived discriminated schema. Callers must not mutate
// the returned value.
func (u *Union) Schema() *openapi.Schema {
	return u.schema
}

// Register registers every case payload type in declaration order, so all
// named schemas reachable from this union are present in the registry exactly
// once no matter how many times the union itself is registered.
func (u *Union) Register(reg *openapi.Registry) {
	for _, rc := range u.cases {
		rc.payload.Register(reg)
	}
}
