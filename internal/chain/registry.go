package chain

import (
	"fmt"
	"sync"
)

// Registry manages LLM generator providers. Exactly one provider is
// active per process; it is selected by configuration before the first
// session starts.
type Registry struct {
	generators      map[string]Generator
	defaultProvider string
	mu              sync.RWMutex
}

// NewRegistry creates a new provider registry.
func NewRegistry(defaultProvider string) *Registry {
	return &Registry{
		generators:      make(map[string]Generator),
		defaultProvider: defaultProvider,
	}
}

// Register registers a generator provider.
func (r *Registry) Register(g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[g.Name()] = g
}

// Get returns a provider by name; an empty name selects the default.
func (r *Registry) Get(name string) (Generator, error) {
	if name == "" {
		name = r.defaultProvider
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("provider not found: %s", name)
	}

	if !g.IsConfigured() {
		return nil, fmt.Errorf("provider not configured: %s", name)
	}

	return g, nil
}

// DefaultProvider returns the default provider name.
func (r *Registry) DefaultProvider() string {
	return r.defaultProvider
}

// List returns the names of all configured providers.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name, g := range r.generators {
		if g.IsConfigured() {
			names = append(names, name)
		}
	}
	return names
}
