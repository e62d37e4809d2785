package oneof

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic handling via errors.Is. Each sentinel is
// carried by the corresponding structured error type, so callers can match a
// whole category or inspect details with errors.As.
var (
	// ErrInvalidCaseShape matches DeclarationError for a case that does not
	// wrap exactly one payload type.
	ErrInvalidCaseShape = errors.New("oneof: case must wrap exactly one payload type")

	// ErrMissingDiscriminator matches DeclarationError for a declaration
	// without a discriminator property name.
	ErrMissingDiscriminator = errors.New("oneof: discriminator property must not be empty")

	// ErrNilPayload matches DeclarationError for a case whose payload
	// descriptor is nil.
	ErrNilPayload = errors.New("oneof: case payload descriptor is nil")

	// ErrDuplicateTag matches DeclarationError for two cases resolving to
	// the same discriminator tag. See AllowDuplicateTags.
	ErrDuplicateTag = errors.New("oneof: duplicate discriminator tag")

	// ErrExpectedType matches ParseError: the decode input is not an object,
	// lacks the discriminator property, or carries an unrecognized tag.
	ErrExpectedType = errors.New("oneof: value does not match the expected union shape")

	// ErrUnknownCase matches EncodeError for a value naming a case the union
	// does not declare.
	ErrUnknownCase = errors.New("oneof: unknown union case")

	// ErrNotAnObject matches EncodeError when a payload encoder produced a
	// non-object JSON value, so no discriminator property can be injected.
	ErrNotAnObject = errors.New("oneof: payload encoder did not produce a JSON object")
)

// DeclarationError reports an invalid union declaration. Declarations are
// fixed at definition time, so this error is fatal and surfaced to the
// union's author; it never reaches runtime decode or encode.
type DeclarationError struct {
	// Union is the declared union name.
	Union string
	// Case is the offending case identifier, when the error concerns a
	// single case.
	Case string
	// Reason is the matching sentinel error.
	Reason error
}

func (e *DeclarationError) Error() string {
	if e.Case != "" {
		return fmt.Sprintf("invalid declaration of union %q, case %q: %v", e.Union, e.Case, e.Reason)
	}
	return fmt.Sprintf("invalid declaration of union %q: %v", e.Union, e.Reason)
}

func (e *DeclarationError) Unwrap() error { return e.Reason }

// SchemaError reports that the discriminated schema could not be built.
// The only construction failure is an explicit-tag case whose payload schema
// is inline: a discriminator mapping reference cannot be formed for it.
// Fatal at definition time.
type SchemaError struct {
	Union string
	Case  string
	Cause error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("cannot build schema for union %q, case %q: %v", e.Union, e.Case, e.Cause)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// ParseError reports a recoverable runtime decode failure attributable to
// this union (as opposed to payload decode failures, which are propagated
// verbatim). It always wraps ErrExpectedType.
type ParseError struct {
	// Union is the union name, for diagnostics.
	Union string
	// Reason describes what was wrong with the input.
	Reason string
	// Tag is the unrecognized discriminator value, when that is the reason.
	Tag string
}

func (e *ParseError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("cannot decode union %q: %s %q", e.Union, e.Reason, e.Tag)
	}
	return fmt.Sprintf("cannot decode union %q: %s", e.Union, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrExpectedType }

// EncodeError reports that a union value could not be serialized. Encoding
// only fails on programming errors: an unknown case identifier, or a payload
// encoder yielding a non-object JSON value.
type EncodeError struct {
	Union  string
	Case   string
	Reason error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cannot encode union %q, case %q: %v", e.Union, e.Case, e.Reason)
}

func (e *EncodeError) Unwrap() error { return e.Reason }
