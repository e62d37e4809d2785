package oneof_test

import (
	"errors"
	"testing"

	"github.com/gork-labs/oneof/pkg/oneof"
	"github.com/gork-labs/oneof/pkg/openapi"
)

func TestDeclarationValidation(t *testing.T) {
	tests := []struct {
		name string
		decl oneof.Declaration
		want error
	}{
		{
			name: "missing discriminator property",
			decl: oneof.Declaration{
				Name:  "Shape",
				Cases: []oneof.Case{oneof.NewCase("Circle", circle)},
			},
			want: oneof.ErrMissingDiscriminator,
		},
		{
			name: "case with no payload",
			decl: oneof.Declaration{
				Name:                  "Shape",
				DiscriminatorProperty: "type",
				Cases:                 []oneof.Case{{Identifier: "Circle"}},
			},
			want: oneof.ErrInvalidCaseShape,
		},
		{
			name: "case with two payloads",
			decl: oneof.Declaration{
				Name:                  "Shape",
				DiscriminatorProperty: "type",
				Cases: []oneof.Case{
					{Identifier: "Circle", Payloads: []openapi.Type{circle, square}},
				},
			},
			want: oneof.ErrInvalidCaseShape,
		},
		{
			name: "nil payload descriptor",
			decl: oneof.Declaration{
				Name:                  "Shape",
				DiscriminatorProperty: "type",
				Cases:                 []oneof.Case{{Identifier: "Circle", Payloads: []openapi.Type{nil}}},
			},
			want: oneof.ErrNilPayload,
		},
		{
			name: "duplicate implicit and explicit tag",
			decl: oneof.Declaration{
				Name:                  "Shape",
				DiscriminatorProperty: "type",
				Cases: []oneof.Case{
					oneof.NewCase("Circle", circle),
					oneof.NewCase("AlsoCircle", square).WithTag("Circle"),
				},
			},
			want: oneof.ErrDuplicateTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := oneof.New(tt.decl)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}

			var declErr *oneof.DeclarationError
			if !errors.As(err, &declErr) {
				t.Errorf("expected DeclarationError, got %T", err)
			} else if declErr.Union != "Shape" {
				t.Errorf("expected union name in error, got %q", declErr.Union)
			}
		})
	}
}

func TestTagDerivation(t *testing.T) {
	u, err := oneof.New(oneof.Declaration{
		Name:                  "Shape",
		DiscriminatorProperty: "type",
		Cases: []oneof.Case{
			oneof.NewCase("Circle", circle),
			oneof.NewCase("Square", square).WithTag("t"),
		},
	})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	// Implicit tag equals the payload type name.
	if tag, _ := u.Tag("Circle"); tag != "Circle" {
		t.Errorf("expected implicit tag Circle, got %q", tag)
	}
	// Explicit tag wins regardless of the payload type name.
	if tag, _ := u.Tag("Square"); tag != "t" {
		t.Errorf("expected explicit tag t, got %q", tag)
	}
}

func TestAllowDuplicateTags(t *testing.T) {
	decl := oneof.Declaration{
		Name:                  "Ambiguous",
		DiscriminatorProperty: "type",
		Cases: []oneof.Case{
			oneof.NewCase("First", circle).WithTag("x"),
			oneof.NewCase("Second", square).WithTag("x"),
		},
	}

	if _, err := oneof.New(decl); !errors.Is(err, oneof.ErrDuplicateTag) {
		t.Fatalf("expected ErrDuplicateTag by default, got %v", err)
	}

	u, err := oneof.New(decl, oneof.AllowDuplicateTags())
	if err != nil {
		t.Fatalf("declare with duplicates allowed: %v", err)
	}

	// First declared case wins the tie-break.
	v, err := u.DecodeValue(map[string]any{"type": "x", "radius": 1.0})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Case != "First" {
		t.Errorf("expected first-declared case to win, got %s", v.Case)
	}

	// The enum preserves the duplicate verbatim, in declaration order.
	enum := u.Schema().Properties["type"].Enum
	if len(enum) != 2 || enum[0] != "x" || enum[1] != "x" {
		t.Errorf("unexpected enum: %v", enum)
	}
}

func TestMustNew(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid declaration")
		}
	}()
	oneof.MustNew(oneof.Declaration{Name: "Broken"})
}
