package rendercache_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	rendercache "github.com/goliatone/go-rendercache"
	"github.com/goliatone/go-rendercache/pkg/blocks/icecream"
	"github.com/goliatone/go-rendercache/pkg/render"
)

func TestBuild_Icecream(t *testing.T) {
	spec, err := rendercache.Build(icecream.Name)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff(icecream.Block{}.Build(), spec); diff != "" {
		t.Fatalf("spec mismatch (-want +got):\n%s", diff)
	}

	if _, err := rendercache.Build("missing"); !errors.Is(err, render.ErrBuilderNotFound) {
		t.Fatalf("expected ErrBuilderNotFound, got %v", err)
	}
}

func TestNewRegistry_WithDeclaredBlocks(t *testing.T) {
	reg, err := rendercache.NewRegistry(fstest.MapFS{
		"blocks.yaml": {Data: []byte("blocks:\n  banner:\n    \"#markup\": Welcome\n")},
	})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if diff := cmp.Diff([]string{"banner", "icecream"}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	_, err = rendercache.NewRegistry(fstest.MapFS{
		"blocks.yaml": {Data: []byte("blocks:\n  icecream:\n    \"#markup\": clash\n")},
	})
	if err == nil {
		t.Fatalf("expected clash with built-in block")
	}
}

func TestPreviewHTML(t *testing.T) {
	out, err := rendercache.PreviewHTML(context.Background(), icecream.Name)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(string(out), `data-lazy-builder="icecream:lazyCallback"`) {
		t.Fatalf("unexpected preview %s", out)
	}
}
