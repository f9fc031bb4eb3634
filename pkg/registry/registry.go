package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the decay model names the parser accepts.
// Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	models map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[string]struct{}),
	}
}

// Default returns a registry preloaded with the EvtGen model names.
func Default() *Registry {
	r := NewRegistry()
	for _, m := range KnownModels {
		r.models[m] = struct{}{}
	}
	return r
}

// Register adds models to the registry. Registering an existing name is a no-op.
func (r *Registry) Register(names ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range names {
		if n == "" {
			return fmt.Errorf("model name must not be empty")
		}
		r.models[n] = struct{}{}
	}
	return nil
}

// Has reports whether name is a registered model.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.models[name]
	return ok
}

// Names returns the registered models, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.models))
	for n := range r.models {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
