package oneof

import "github.com/gork-labs/oneof/pkg/openapi"

// resolvedCase is the derived form of a Case: the declaration's shape has
// been validated and the discriminator tag computed. Resolved cases are
// never mutated after New returns.
type resolvedCase struct {
	identifier  string
	tag         string
	explicitTag bool
	payload     openapi.Type
}

// resolveCases validates the one-payload-per-case shape and computes each
// case's discriminator tag: the explicit override when declared, the payload
// type's name otherwise. It performs no uniqueness check; that policy lives
// in New.
func resolveCases(decl Declaration) ([]resolvedCase, error) {
	cases := make([]resolvedCase, 0, len(decl.Cases))
	for _, c := range decl.Cases {
		if len(c.Payloads) != 1 {
			return nil, &DeclarationError{Union: decl.Name, Case: c.Identifier, Reason: ErrInvalidCaseShape}
		}
		payload := c.Payloads[0]
		if payload == nil {
			return nil, &DeclarationError{Union: decl.Name, Case: c.Identifier, Reason: ErrNilPayload}
		}

		tag := c.Tag
		explicit := tag != ""
		if !explicit {
			tag = payload.Name()
		}

		cases = append(cases, resolvedCase{
			identifier:  c.Identifier,
			tag:         tag,
			explicitTag: explicit,
			payload:     payload,
		})
	}
	return cases, nil
}
