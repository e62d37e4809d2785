package oneof

import (
	"encoding/json"
	"fmt"
)

// Decode reconstructs a union value from a materialized JSON value. It
// implements openapi.Type; the returned any is always a Value.
//
// The input must be a JSON object carrying the discriminator property as a
// string. Cases are scanned in declaration order and the first tag match
// wins; the entire original object — discriminator included — is handed to
// the matched payload's decoder, whose failures are propagated verbatim.
func (u *Union) Decode(value any) (any, error) {
	return u.DecodeValue(value)
}

// DecodeValue is Decode with a concrete return type.
func (u *Union) DecodeValue(value any) (Value, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return Value{}, &ParseError{Union: u.decl.Name, Reason: "expected a JSON object"}
	}

	raw, ok := obj[u.decl.DiscriminatorProperty]
	if !ok {
		return Value{}, &ParseError{
			Union:  u.decl.Name,
			Reason: fmt.Sprintf("missing discriminator property %q", u.decl.DiscriminatorProperty),
		}
	}
	tag, ok := raw.(string)
	if !ok {
		return Value{}, &ParseError{
			Union:  u.decl.Name,
			Reason: fmt.Sprintf("discriminator property %q is not a string", u.decl.DiscriminatorProperty),
		}
	}

	for _, rc := range u.cases {
		if rc.tag != tag {
			continue
		}
		payload, err := rc.payload.Decode(value)
		if err != nil {
			return Value{}, err
		}
		return Value{Case: rc.identifier, Payload: payload}, nil
	}

	return Value{}, &ParseError{Union: u.decl.Name, Reason: "unrecognized discriminator value", Tag: tag}
}

// DecodeJSON unmarshals raw JSON and decodes the resulting value.
func (u *Union) DecodeJSON(data []byte) (Value, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return Value{}, err
	}
	return u.DecodeValue(value)
}
