package openapi

import "sync"

// Registry is a deduplicating store of named schema components. It is
// intentionally not global so that multiple documents can be assembled in the
// same process without stepping on each other's toes.
//
// The registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry creates a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register stores a schema under the given name. The insert is idempotent:
// the first schema registered for a name is kept and later registrations of
// the same name are ignored, so recursive or repeated registration never
// duplicates or overwrites entries.
func (r *Registry) Register(name string, schema *Schema) {
	if name == "" || schema == nil {
		return
	}
	r.mu.Lock()
	if _, exists := r.schemas[name]; !exists {
		r.schemas[name] = schema
	}
	r.mu.Unlock()
}

// Has reports whether a schema is registered under the given name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.schemas[name]
	return ok
}

// Lookup returns the schema registered under the given name, if any.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

// Schemas returns a copy of the name → schema map so callers can freely
// modify the returned map without affecting the internal state.
func (r *Registry) Schemas() map[string]*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := make(map[string]*Schema, len(r.schemas))
	for name, s := range r.schemas {
		cp[name] = s
	}
	return cp
}

// Components returns a components document snapshot of the registry.
func (r *Registry) Components() *Components {
	return &Components{Schemas: r.Schemas()}
}
