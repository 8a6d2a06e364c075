package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores builders by name, providing discovery and duplication
// safeguards. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]Builder),
	}
}

// Register adds a builder by its Name(). Duplicate names return an error.
func (r *Registry) Register(builder Builder) error {
	if builder == nil {
		return fmt.Errorf("render: builder is required")
	}
	name := builder.Name()
	if name == "" {
		return fmt.Errorf("render: builder name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[name]; exists {
		return fmt.Errorf("render: builder %q already registered", name)
	}

	r.builders[name] = builder
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(builder Builder) {
	if err := r.Register(builder); err != nil {
		panic(err)
	}
}

// Get retrieves a builder by name.
func (r *Registry) Get(name string) (Builder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBuilderNotFound, name)
	}
	return builder, nil
}

// Build looks up name and returns a private copy of the spec it produces.
func (r *Registry) Build(name string) (Spec, error) {
	builder, err := r.Get(name)
	if err != nil {
		return Spec{}, err
	}
	return builder.Build().Clone(), nil
}

// List returns a sorted list of builder names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a builder is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.builders[name]
	return ok
}
