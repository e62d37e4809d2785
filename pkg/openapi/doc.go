// Package openapi holds the schema document model shared by all payload
// descriptors: the Schema object, schema references, the Type descriptor
// interface, and the deduplicating component registry.
//
// Everything in this package operates on materialized JSON values — the
// result of unmarshaling into interface{} — so descriptors never deal with
// raw bytes or streaming.
package openapi
