package render

// Builder produces a render specification. Implementations take no input and
// must return a freshly allocated Spec on each call.
type Builder interface {
	Name() string
	Build() Spec
}

// BuilderFunc adapts a plain function into a named Builder.
type BuilderFunc struct {
	ID string
	Fn func() Spec
}

// Name returns the registered name.
func (b BuilderFunc) Name() string { return b.ID }

// Build invokes the wrapped function. A nil function yields an empty spec.
func (b BuilderFunc) Build() Spec {
	if b.Fn == nil {
		return Spec{LazyBuilder: LazyBuilder{Args: []any{}}}
	}
	return b.Fn()
}
