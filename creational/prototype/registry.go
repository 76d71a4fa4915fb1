package prototype

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownPrototype is returned by Spawn for keys never added.
var ErrUnknownPrototype = errors.New("unknown prototype")

// Registry stores named prototypes. Spawn never hands out the stored
// prototype itself, only clones of it. Safe for concurrent use.
type Registry struct {
	prototypes map[string]Shape
	mu         sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{prototypes: make(map[string]Shape)}
}

// Add stores a clone of shape under key, replacing any previous prototype.
// Later changes to shape do not affect the registered prototype.
func (r *Registry) Add(key string, shape Shape) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prototypes[key] = shape.Clone()
}

// Spawn returns a fresh clone of the prototype registered under key.
func (r *Registry) Spawn(key string) (Shape, error) {
	r.mu.RLock()
	proto, exists := r.prototypes[key]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrototype, key)
	}
	return proto.Clone(), nil
}

// Keys lists registered prototype keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.prototypes))
	for k := range r.prototypes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
