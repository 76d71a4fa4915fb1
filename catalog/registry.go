package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds demos by name. Safe for concurrent use.
type Registry struct {
	entries map[string]Demo
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Demo)}
}

// Register adds d. Returns ErrAlreadyExists if the name is taken.
func (r *Registry) Register(d Demo) error {
	if d.Name == "" {
		return ErrEmptyName
	}
	if _, ok := categoryRank[d.Category]; !ok {
		return fmt.Errorf("%w: %q for %s", ErrUnknownCategory, d.Category, d.Name)
	}
	if d.Run == nil {
		return fmt.Errorf("%w: %s", ErrNoRun, d.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[d.Name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, d.Name)
	}
	r.entries[d.Name] = d
	return nil
}

// Get retrieves a demo by name.
func (r *Registry) Get(name string) (Demo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.entries[name]
	return d, ok
}

// List returns every demo sorted by category (creational, behavioral,
// structural) and then by name.
func (r *Registry) List() []Demo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	demos := make([]Demo, 0, len(r.entries))
	for _, d := range r.entries {
		demos = append(demos, d)
	}
	sort.Slice(demos, func(i, j int) bool {
		ri, rj := categoryRank[demos[i].Category], categoryRank[demos[j].Category]
		if ri != rj {
			return ri < rj
		}
		return demos[i].Name < demos[j].Name
	})
	return demos
}

// ByCategory returns the demos in c, sorted by name.
func (r *Registry) ByCategory(c Category) []Demo {
	var out []Demo
	for _, d := range r.List() {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// Select resolves names in the order given. With no names it returns the
// whole list, narrowed to category when one is set. Unknown names fail
// the whole selection.
func (r *Registry) Select(names []string, category Category) ([]Demo, error) {
	if len(names) == 0 {
		if category == "" {
			return r.List(), nil
		}
		return r.ByCategory(category), nil
	}

	demos := make([]Demo, 0, len(names))
	for _, name := range names {
		d, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		if category != "" && d.Category != category {
			continue
		}
		demos = append(demos, d)
	}
	return demos, nil
}
