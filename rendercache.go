// Package rendercache is the top-level entry point: it re-exports the render
// specification types and wires a registry with the built-in blocks.
package rendercache

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-rendercache/pkg/blocks/fileblock"
	"github.com/goliatone/go-rendercache/pkg/blocks/icecream"
	"github.com/goliatone/go-rendercache/pkg/preview"
	"github.com/goliatone/go-rendercache/pkg/render"
)

// Spec aliases render.Spec.
type Spec = render.Spec

// LazyBuilder aliases render.LazyBuilder.
type LazyBuilder = render.LazyBuilder

// Builder aliases render.Builder.
type Builder = render.Builder

// NewRegistry returns a registry holding the built-in blocks and, when blocks
// is non-nil, every block declared in it.
func NewRegistry(blocks fs.FS) (*render.Registry, error) {
	reg := render.NewRegistry()
	if err := icecream.Register(reg); err != nil {
		return nil, err
	}
	if _, err := fileblock.RegisterFS(reg, blocks); err != nil {
		return nil, err
	}
	return reg, nil
}

// Build returns the specification of a built-in block.
func Build(name string) (Spec, error) {
	reg, err := NewRegistry(nil)
	if err != nil {
		return Spec{}, err
	}
	return reg.Build(name)
}

// PreviewHTML builds the named built-in block and renders its preview with
// the default renderer.
func PreviewHTML(ctx context.Context, name string, options ...preview.Option) ([]byte, error) {
	spec, err := Build(name)
	if err != nil {
		return nil, err
	}
	renderer, err := preview.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, spec, preview.Options{})
}
