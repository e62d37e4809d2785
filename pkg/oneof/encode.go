package oneof

import "encoding/json"

// Encode serializes a union value into a materialized JSON value. It
// implements openapi.Type; value must be a Value or *Value.
//
// The active case's payload encoder runs first, then the discriminator
// property is inserted into the resulting object, overwriting any property
// of the same name the payload may have emitted. A payload encoder yielding
// a non-object JSON value is a programming error and fails fast with
// ErrNotAnObject rather than emitting an untagged document.
func (u *Union) Encode(value any) (any, error) {
	switch v := value.(type) {
	case Value:
		return u.EncodeValue(v)
	case *Value:
		return u.EncodeValue(*v)
	default:
		return nil, &EncodeError{Union: u.decl.Name, Reason: ErrUnknownCase}
	}
}

// EncodeValue is Encode with a concrete argument type.
func (u *Union) EncodeValue(v Value) (any, error) {
	for _, rc := range u.cases {
		if rc.identifier != v.Case {
			continue
		}
		encoded, err := rc.payload.Encode(v.Payload)
		if err != nil {
			return nil, err
		}
		obj, ok := encoded.(map[string]any)
		if !ok {
			return nil, &EncodeError{Union: u.decl.Name, Case: v.Case, Reason: ErrNotAnObject}
		}
		obj[u.decl.DiscriminatorProperty] = rc.tag
		return obj, nil
	}
	return nil, &EncodeError{Union: u.decl.Name, Case: v.Case, Reason: ErrUnknownCase}
}

// EncodeJSON encodes the value and marshals the result to raw JSON.
func (u *Union) EncodeJSON(v Value) ([]byte, error) {
	encoded, err := u.EncodeValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(encoded)
}
