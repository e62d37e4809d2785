// Package oneof derives three coupled artifacts from a declarative
// description of a discriminated union: an OpenAPI oneOf schema with a
// discriminator object, a JSON decoder that selects the active case by the
// discriminator property, and a JSON encoder that injects that property into
// the serialized payload.
//
// The declaration is plain data (see Declaration); payload types plug in
// through the openapi.Type descriptor interface. All three artifacts are
// derived once by New from the same resolved case list, so schema, decoder
// and encoder can never disagree about which tag selects which payload.
//
// On the wire a union value is a single flat JSON object: the payload's own
// fields plus the discriminator property at the top level, not nested under
// an envelope key. Payload decoders are therefore expected to tolerate the
// discriminator property alongside their own fields.
package oneof
