package openapi

// Type is the descriptor capability every payload type exposes. A descriptor
// is the single source of truth for a type's name, its schema, and its JSON
// codec; union derivation dispatches through this interface and never reasons
// about a payload's internals.
//
// Decode and Encode operate on materialized JSON values (map[string]any,
// []any, string, float64, bool, nil). Decode returns the typed value; Encode
// accepts the value Decode produced. Both must be safe for concurrent use.
type Type interface {
	// Name returns the canonical type name used for implicit discriminator
	// tags and registry deduplication.
	Name() string

	// SchemaRef returns the schema for this type, either as a named
	// component reference or inline.
	SchemaRef() SchemaRef

	// Register stores this type's named schemas — and those of any nested
	// types — in the registry. Implementations must be idempotent.
	Register(reg *Registry)

	// Decode reconstructs a typed value from a materialized JSON value.
	Decode(value any) (any, error)

	// Encode serializes a typed value back into a materialized JSON value.
	// The returned value is owned by the caller, who may mutate it (union
	// encoding injects the discriminator property into the returned object).
	Encode(value any) (any, error)
}
