package oneof_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/gork-labs/oneof/pkg/objects"
	"github.com/gork-labs/oneof/pkg/oneof"
	"github.com/gork-labs/oneof/pkg/openapi"
)

type CircleData struct {
	Radius float64 `json:"radius"`
}

type SquareData struct {
	Side float64 `json:"side"`
}

// scalarType is a payload descriptor with an inline schema whose encoder
// yields a bare JSON string. Used to exercise the inline-reference and
// non-object failure paths.
type scalarType struct {
	name string
}

func (s scalarType) Name() string { return s.name }

func (s scalarType) SchemaRef() openapi.SchemaRef {
	return openapi.InlineRef(&openapi.Schema{Type: "string"})
}

func (s scalarType) Register(*openapi.Registry) {}

func (s scalarType) Decode(value any) (any, error) { return value, nil }

func (s scalarType) Encode(value any) (any, error) { return value, nil }

var (
	circle = objects.New[CircleData](objects.WithName("Circle"))
	square = objects.New[SquareData](objects.WithName("Square"))
)

// shapeUnion is the canonical fixture: an implicitly tagged Circle case and
// a Square case with the explicit tag "sq".
func shapeUnion(t *testing.T) *oneof.Union {
	t.Helper()
	u, err := oneof.New(oneof.Declaration{
		Name:                  "Shape",
		DiscriminatorProperty: "type",
		Cases: []oneof.Case{
			oneof.NewCase("Circle", circle),
			oneof.NewCase("Square", square).WithTag("sq"),
		},
	})
	if err != nil {
		t.Fatalf("declare Shape: %v", err)
	}
	return u
}

func TestShapeScenario(t *testing.T) {
	u := shapeUnion(t)

	t.Run("encode circle", func(t *testing.T) {
		out, err := u.EncodeValue(oneof.Value{Case: "Circle", Payload: CircleData{Radius: 2}})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		want := map[string]any{"type": "Circle", "radius": 2.0}
		if !reflect.DeepEqual(out, want) {
			t.Errorf("expected %v, got %v", want, out)
		}
	})

	t.Run("encode square", func(t *testing.T) {
		out, err := u.EncodeValue(oneof.Value{Case: "Square", Payload: SquareData{Side: 3}})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		want := map[string]any{"type": "sq", "side": 3.0}
		if !reflect.DeepEqual(out, want) {
			t.Errorf("expected %v, got %v", want, out)
		}
	})

	t.Run("decode square", func(t *testing.T) {
		v, err := u.DecodeValue(map[string]any{"type": "sq", "side": 3.0})
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if v.Case != "Square" {
			t.Errorf("expected Square, got %s", v.Case)
		}
		if payload, ok := v.Payload.(SquareData); !ok || payload.Side != 3 {
			t.Errorf("unexpected payload: %#v", v.Payload)
		}
	})

	t.Run("decode circle", func(t *testing.T) {
		v, err := u.DecodeValue(map[string]any{"type": "Circle", "radius": 2.0})
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if v.Case != "Circle" {
			t.Errorf("expected Circle, got %s", v.Case)
		}
		if payload, ok := v.Payload.(CircleData); !ok || payload.Radius != 2 {
			t.Errorf("unexpected payload: %#v", v.Payload)
		}
	})

	t.Run("decode unknown tag fails", func(t *testing.T) {
		if _, err := u.DecodeValue(map[string]any{"type": "triangle"}); err == nil {
			t.Fatal("expected decode error for unknown tag")
		}
	})

	t.Run("mapping has only the explicit entry", func(t *testing.T) {
		mapping := u.Schema().Discriminator.Mapping
		if len(mapping) != 1 {
			t.Fatalf("expected 1 mapping entry, got %d", len(mapping))
		}
		if mapping["sq"] != "#/components/schemas/Square" {
			t.Errorf("unexpected mapping: %v", mapping)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	u := shapeUnion(t)

	values := []oneof.Value{
		{Case: "Circle", Payload: CircleData{Radius: 2}},
		{Case: "Square", Payload: SquareData{Side: 3}},
	}

	for _, original := range values {
		encoded, err := u.EncodeValue(original)
		if err != nil {
			t.Fatalf("encode %s: %v", original.Case, err)
		}
		decoded, err := u.DecodeValue(encoded)
		if err != nil {
			t.Fatalf("decode %s: %v", original.Case, err)
		}
		if !reflect.DeepEqual(decoded, original) {
			t.Errorf("round trip mismatch: %#v != %#v", decoded, original)
		}
	}
}

func TestJSONHelpers(t *testing.T) {
	u := shapeUnion(t)

	data, err := u.EncodeJSON(oneof.Value{Case: "Square", Payload: SquareData{Side: 3}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	v, err := u.DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Case != "Square" {
		t.Errorf("expected Square, got %s", v.Case)
	}

	if _, err := u.DecodeJSON([]byte(`{invalid`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestTagAccessors(t *testing.T) {
	u := shapeUnion(t)

	if got := u.Tags(); !reflect.DeepEqual(got, []string{"Circle", "sq"}) {
		t.Errorf("unexpected tags: %v", got)
	}

	tag, ok := u.Tag("Square")
	if !ok || tag != "sq" {
		t.Errorf("expected sq, got %q (%v)", tag, ok)
	}
	if _, ok := u.Tag("Triangle"); ok {
		t.Error("expected no tag for undeclared case")
	}
}

func TestRegisterPayloads(t *testing.T) {
	u := shapeUnion(t)
	reg := openapi.NewRegistry()

	u.Register(reg)
	u.Register(reg) // idempotent

	if reg.Len() != 2 {
		t.Fatalf("expected 2 registered schemas, got %d", reg.Len())
	}
	for _, name := range []string{"Circle", "Square"} {
		if !reg.Has(name) {
			t.Errorf("expected %s to be registered", name)
		}
	}
}

func TestNestedUnionAsPayload(t *testing.T) {
	inner := shapeUnion(t)

	u, err := oneof.New(oneof.Declaration{
		Name:                  "Outer",
		DiscriminatorProperty: "kind",
		Cases: []oneof.Case{
			oneof.NewCase("Shape", inner),
			oneof.NewCase("Circle", circle).WithTag("c"),
		},
	})
	if err != nil {
		t.Fatalf("declare Outer: %v", err)
	}

	// Registering the outer union reaches the inner union's payloads.
	reg := openapi.NewRegistry()
	u.Register(reg)
	if !reg.Has("Circle") || !reg.Has("Square") {
		t.Error("expected nested payload schemas to be registered")
	}

	// The inner union contributes its inline schema to oneOf.
	if u.Schema().OneOf[0].OneOf == nil {
		t.Error("expected nested union schema inline in oneOf")
	}

	// A nested union cannot take an explicit tag: its schema is inline.
	_, err = oneof.New(oneof.Declaration{
		Name:                  "Broken",
		DiscriminatorProperty: "kind",
		Cases: []oneof.Case{
			oneof.NewCase("Shape", inner).WithTag("shape"),
		},
	})
	if err == nil {
		t.Fatal("expected schema error for explicitly tagged nested union")
	}
}

func TestConcurrentCodec(t *testing.T) {
	u := shapeUnion(t)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				out, err := u.EncodeValue(oneof.Value{Case: "Square", Payload: SquareData{Side: 3}})
				if err != nil {
					t.Errorf("encode: %v", err)
					return
				}
				if _, err := u.DecodeValue(out); err != nil {
					t.Errorf("decode: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
