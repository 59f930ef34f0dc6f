package checks

import "sync"

// Registry holds the ordered collection of check factories known to the
// CLI. Registration order is the execution order.
type Registry struct {
	mu        sync.RWMutex
	factories []Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a check factory to the registry
func (r *Registry) Register(factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = append(r.factories, factory)
}

// Factories returns the registered factories in registration order
func (r *Registry) Factories() []Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factories := make([]Factory, len(r.factories))
	copy(factories, r.factories)
	return factories
}

// Instantiate constructs every registered check against the given project
// root, in registration order. Used for listing available checks.
func (r *Registry) Instantiate(projectRoot string) []Check {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instances := make([]Check, 0, len(r.factories))
	for _, factory := range r.factories {
		instances = append(instances, factory(projectRoot))
	}
	return instances
}
