package oneof

// Value is a decoded union value: the identifier of the active case plus the
// typed payload that case's descriptor produced. Construct one directly to
// encode a value, e.g. oneof.Value{Case: "Circle", Payload: Circle{Radius: 2}}.
type Value struct {
	// Case is the declaration identifier of the active case.
	Case string

	// Payload is the case's payload value, of whatever type the payload
	// descriptor decodes to.
	Payload any
}
