package factory

import (
	"fmt"
	"sort"
	"sync"
)

// Wrapper packages a candy. Wrappers only fit candies of their own family.
type Wrapper interface {
	Material() string
	Fits(c Candy) bool
}

type foilWrapper struct{}

func (foilWrapper) Material() string  { return "gold foil" }
func (foilWrapper) Fits(c Candy) bool { return !c.SugarFree() }

type paperWrapper struct{}

func (paperWrapper) Material() string  { return "recycled paper" }
func (paperWrapper) Fits(c Candy) bool { return c.SugarFree() }

// Factory is the abstract factory: it creates a family of related products.
type Factory interface {
	Chocolate() Candy
	Gummy() Candy
	Wrapper() Wrapper
}

// ClassicFactory makes regular sweets in foil.
type ClassicFactory struct{}

func (ClassicFactory) Chocolate() Candy { return chocolate{} }
func (ClassicFactory) Gummy() Candy     { return gummy{} }
func (ClassicFactory) Wrapper() Wrapper { return foilWrapper{} }

// SugarFreeFactory makes sugar-free sweets in paper.
type SugarFreeFactory struct{}

func (SugarFreeFactory) Chocolate() Candy { return chocolate{sugarFree: true} }
func (SugarFreeFactory) Gummy() Candy     { return gummy{sugarFree: true} }
func (SugarFreeFactory) Wrapper() Wrapper { return paperWrapper{} }

var (
	factories = map[string]Factory{
		"classic":    ClassicFactory{},
		"sugar-free": SugarFreeFactory{},
	}
	mutex sync.RWMutex
)

// Register adds or replaces a named factory.
func Register(name string, f Factory) error {
	if name == "" {
		return ErrEmptyName
	}

	mutex.Lock()
	defer mutex.Unlock()

	factories[name] = f
	return nil
}

// Lookup returns a registered factory by name.
// Pre-registered factories: "classic" and "sugar-free".
func Lookup(name string) (Factory, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	f, exists := factories[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFactory, name)
	}
	return f, nil
}

// Names lists registered factory names in sorted order.
func Names() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
