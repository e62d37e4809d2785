// Package objects provides a reflection-backed payload descriptor for plain
// struct types. It implements the openapi.Type contract — name, named schema
// reference, registry registration, and a JSON codec — so struct payloads can
// be used as union cases without hand-written descriptors.
//
// Field schemas are derived from json tags and go-playground/validator tags,
// and decoded values are validated with the same tags, so the schema and the
// runtime validation cannot drift apart.
package objects

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/gork-labs/oneof/pkg/openapi"
)

// Object is a payload descriptor for the struct type T. Build one with New;
// the schema is reflected once at construction and the descriptor is
// immutable and safe for concurrent use afterwards.
type Object[T any] struct {
	name        string
	description string
	schema      *openapi.Schema
}

// Option configures a descriptor at construction time.
type Option func(*options)

type options struct {
	name        string
	description string
}

// WithName overrides the component name otherwise derived from the Go type
// name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithDescription sets the schema description.
func WithDescription(description string) Option {
	return func(o *options) { o.description = description }
}

// New builds a descriptor for the struct type T. The type parameter must be
// a struct; anything else is a programming error and panics at definition
// time.
func New[T any](opts ...Option) *Object[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("objects: %s is not a struct type", t))
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = t.Name()
	}
	if o.name == "" {
		panic(fmt.Sprintf("objects: anonymous struct %s needs WithName", t))
	}

	schema := buildStructSchema(t)
	schema.Title = o.name
	schema.Description = o.description

	return &Object[T]{name: o.name, description: o.description, schema: schema}
}

// Name returns the component name, used as the implicit discriminator tag.
func (o *Object[T]) Name() string {
	return o.name
}

// SchemaRef returns a named reference to the component schema.
func (o *Object[T]) SchemaRef() openapi.SchemaRef {
	return openapi.ComponentRef(o.name)
}

// Register stores the reflected schema under the descriptor name.
func (o *Object[T]) Register(reg *openapi.Registry) {
	reg.Register(o.name, o.schema)
}

// Schema returns the reflected schema. Callers must not mutate it.
func (o *Object[T]) Schema() *openapi.Schema {
	return o.schema
}

// Decode reconstructs a T from a materialized JSON value and validates it
// with its validator tags. Unknown properties — including a discriminator a
// union embeds alongside the payload's own fields — are ignored. Unmarshal
// and validation errors are returned as-is so callers see the original
// diagnostic detail.
func (o *Object[T]) Decode(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if err := getValidator().Struct(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode serializes a T (or *T) back into a materialized JSON object. The
// returned map is freshly allocated on every call, so callers may modify it.
func (o *Object[T]) Encode(value any) (any, error) {
	var payload T
	switch v := value.(type) {
	case T:
		payload = v
	case *T:
		if v == nil {
			return nil, fmt.Errorf("objects: nil *%s", o.name)
		}
		payload = *v
	default:
		return nil, fmt.Errorf("objects: cannot encode %T as %s", value, o.name)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
