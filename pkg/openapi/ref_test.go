package openapi

import (
	"errors"
	"testing"
)

func TestComponentRef(t *testing.T) {
	ref := ComponentRef("CircleData")

	if ref.IsInline() {
		t.Error("component ref must not be inline")
	}

	name, err := ref.Reference()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "CircleData" {
		t.Errorf("expected CircleData, got %s", name)
	}

	node := ref.Schema()
	if node.Ref != "#/components/schemas/CircleData" {
		t.Errorf("unexpected $ref: %s", node.Ref)
	}
}

func TestInlineRef(t *testing.T) {
	inline := &Schema{Type: "string"}
	ref := InlineRef(inline)

	if !ref.IsInline() {
		t.Error("inline ref must report inline")
	}

	if _, err := ref.Reference(); !errors.Is(err, ErrInlineSchema) {
		t.Errorf("expected ErrInlineSchema, got %v", err)
	}

	if ref.Schema() != inline {
		t.Error("inline ref must return the inline schema unchanged")
	}
}
