package icecream_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-rendercache/pkg/blocks/icecream"
	"github.com/goliatone/go-rendercache/pkg/render"
)

func TestBlock_BuildReturnsLiteral(t *testing.T) {
	spec := icecream.Block{}.Build()

	if !spec.CreatePlaceholder {
		t.Fatalf("expected CreatePlaceholder to be true")
	}
	wantMarkup := "This is being generated with a placeholder.\n  It is time for ice cream. Hurray for ice cream!"
	if spec.Markup != wantMarkup {
		t.Fatalf("markup mismatch\nwant: %q\n got: %q", wantMarkup, spec.Markup)
	}
	if spec.LazyBuilder.Callback != "icecream:lazyCallback" {
		t.Fatalf("callback mismatch: %q", spec.LazyBuilder.Callback)
	}
	if diff := cmp.Diff([]any{}, spec.LazyBuilder.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
	if err := spec.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestBlock_BuildIsIdempotentWithoutSharedState(t *testing.T) {
	block := icecream.Block{}
	first := block.Build()
	second := block.Build()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("builds differ (-first +second):\n%s", diff)
	}

	first.Markup = "changed"
	first.LazyBuilder.Args = append(first.LazyBuilder.Args, "extra")
	first.CreatePlaceholder = false

	third := block.Build()
	if diff := cmp.Diff(second, third); diff != "" {
		t.Fatalf("mutation leaked into later build (-want +got):\n%s", diff)
	}
}

func TestBlock_RoundTrip(t *testing.T) {
	spec := icecream.Block{}.Build()

	for _, format := range []render.Format{render.FormatJSON, render.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := render.Encode(spec, format)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			decoded, err := render.Decode(data, format)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(spec, decoded); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	reg := render.NewRegistry()
	if err := icecream.Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := icecream.Register(reg); err == nil {
		t.Fatalf("expected duplicate registration error")
	}

	spec, err := reg.Build(icecream.Name)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !spec.Equal(icecream.Block{}.Build()) {
		t.Fatalf("registry build differs from block build: %+v", spec)
	}
}
