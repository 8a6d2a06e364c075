// Package icecream provides the ice cream block: a render specification that
// shows a holding message while the icecream module's lazy callback produces
// the real content.
package icecream

import "github.com/goliatone/go-rendercache/pkg/render"

const (
	// Name is the registry name of the block.
	Name = "icecream"
	// Callback is the lazy builder the consumer resolves and invokes.
	Callback render.CallbackID = "icecream:lazyCallback"
	// Markup is the fallback text rendered until the callback output arrives.
	Markup = "This is being generated with a placeholder.\n  It is time for ice cream. Hurray for ice cream!"
)

// Block builds the ice cream placeholder specification.
type Block struct{}

var _ render.Builder = Block{}

// Name implements render.Builder.
func (Block) Name() string { return Name }

// Build returns a new specification on every call.
func (Block) Build() render.Spec {
	return render.Spec{
		LazyBuilder:       render.NewLazyBuilder(Callback),
		CreatePlaceholder: true,
		Markup:            Markup,
	}
}

// Register adds the block to reg.
func Register(reg *render.Registry) error {
	return reg.Register(Block{})
}
