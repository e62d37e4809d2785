package objects

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/gork-labs/oneof/pkg/openapi"
)

// buildStructSchema reflects a struct type into an object schema. Field names
// come from json tags, required-ness from pointer-ness, omitempty and the
// validate tag, and constraints from the same validate tag the decoder
// enforces at runtime.
func buildStructSchema(t reflect.Type) *openapi.Schema {
	s := &openapi.Schema{
		Type:       "object",
		Properties: map[string]*openapi.Schema{},
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}

		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get("json") == "" {
			processEmbeddedStruct(f, s)
			continue
		}

		processStructField(f, s)
	}

	return s
}

func processEmbeddedStruct(f reflect.StructField, s *openapi.Schema) {
	embedded := buildStructSchema(f.Type)
	for name, prop := range embedded.Properties {
		s.Properties[name] = prop
	}
	s.Required = append(s.Required, embedded.Required...)
}

func processStructField(f reflect.StructField, s *openapi.Schema) {
	name := jsonFieldName(f)
	if name == "" {
		return
	}

	fieldSchema := fieldTypeToSchema(f.Type)

	validateTag := f.Tag.Get("validate")
	if validateTag != "" {
		applyValidationConstraints(fieldSchema, validateTag, f.Type)
	}

	if isRequiredField(f, validateTag) {
		s.Required = append(s.Required, name)
	}

	s.Properties[name] = fieldSchema
}

// jsonFieldName returns the JSON property name for a field, or "" for fields
// excluded from JSON.
func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if tag == "" {
		return f.Name
	}
	if idx := strings.Index(tag, ","); idx != -1 {
		tag = tag[:idx]
	}
	if tag == "" {
		return f.Name
	}
	return tag
}

// isRequiredField reports whether a field belongs in the schema's required
// list: non-pointer fields without omitempty are required, and a
// validate:"required" rule forces the matter either way.
func isRequiredField(f reflect.StructField, validateTag string) bool {
	for _, rule := range strings.Split(validateTag, ",") {
		if rule == "required" {
			return true
		}
	}
	if f.Type.Kind() == reflect.Ptr {
		return false
	}
	return !strings.Contains(f.Tag.Get("json"), "omitempty")
}

// fieldTypeToSchema converts a field's Go type into a schema. Pointers map to
// nullable schemas using the OpenAPI 3.1 type-array form; nested structs are
// inlined.
func fieldTypeToSchema(t reflect.Type) *openapi.Schema {
	if t.Kind() == reflect.Ptr {
		inner := fieldTypeToSchema(t.Elem())
		if inner.Type != "" {
			inner.Types = []string{inner.Type, "null"}
			inner.Type = ""
		}
		return inner
	}

	switch t.Kind() {
	case reflect.Struct:
		return buildStructSchema(t)
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return &openapi.Schema{Type: "string", Format: "byte"}
		}
		return &openapi.Schema{Type: "array", Items: fieldTypeToSchema(t.Elem())}
	case reflect.Map:
		return &openapi.Schema{Type: "object"}
	default:
		return mapBasicKind(t.Kind())
	}
}

// mapBasicKind maps Go kinds to OpenAPI schema types.
func mapBasicKind(kind reflect.Kind) *openapi.Schema {
	switch kind {
	case reflect.String:
		return &openapi.Schema{Type: "string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &openapi.Schema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &openapi.Schema{Type: "number"}
	case reflect.Bool:
		return &openapi.Schema{Type: "boolean"}
	default:
		return &openapi.Schema{Type: "object"}
	}
}

// applyValidationConstraints maps struct tag validation rules into schema
// fields. Supported rules (subset):
//
//	min / gte / gt  -> minimum / minLength
//	max / lte / lt  -> maximum / maxLength
//	len             -> minLength + maxLength
//	oneof           -> enum
//	email / uuid / uri -> format
func applyValidationConstraints(fieldSchema *openapi.Schema, validateTag string, fieldType reflect.Type) {
	for _, rule := range strings.Split(validateTag, ",") {
		key, val := parseValidationRule(rule)
		applyValidationRule(fieldSchema, key, val, fieldType)
	}
}

func parseValidationRule(rule string) (key, val string) {
	if idx := strings.Index(rule, "="); idx != -1 {
		return rule[:idx], rule[idx+1:]
	}
	return rule, ""
}

func applyValidationRule(fieldSchema *openapi.Schema, key, val string, fieldType reflect.Type) {
	switch key {
	case "min", "gte", "gt":
		applyMinConstraint(fieldSchema, val, fieldType)
	case "max", "lte", "lt":
		applyMaxConstraint(fieldSchema, val, fieldType)
	case "len":
		applyLenConstraint(fieldSchema, val, fieldType)
	case "oneof":
		if opts := strings.Fields(val); len(opts) > 0 {
			fieldSchema.Enum = opts
		}
	case "email":
		fieldSchema.Format = "email"
	case "uuid":
		fieldSchema.Format = "uuid"
	case "uri", "url":
		fieldSchema.Format = "uri"
	}
}

func applyMinConstraint(fieldSchema *openapi.Schema, val string, fieldType reflect.Type) {
	if num, err := strconv.ParseFloat(val, 64); err == nil {
		if isStringKind(fieldType) {
			v := int(num)
			fieldSchema.MinLength = &v
		} else {
			fieldSchema.Minimum = &num
		}
	}
}

func applyMaxConstraint(fieldSchema *openapi.Schema, val string, fieldType reflect.Type) {
	if num, err := strconv.ParseFloat(val, 64); err == nil {
		if isStringKind(fieldType) {
			v := int(num)
			fieldSchema.MaxLength = &v
		} else {
			fieldSchema.Maximum = &num
		}
	}
}

func applyLenConstraint(fieldSchema *openapi.Schema, val string, fieldType reflect.Type) {
	if num, err := strconv.Atoi(val); err == nil && isStringKind(fieldType) {
		fieldSchema.MinLength = &num
		fieldSchema.MaxLength = &num
	}
}

func isStringKind(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.String
}
