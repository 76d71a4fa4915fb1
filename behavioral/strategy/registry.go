package strategy

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Constructor builds a Strategy from the arguments following its name in a
// definition string.
type Constructor func(args []string) (Strategy, error)

var (
	constructors = map[string]Constructor{
		"none": func(args []string) (Strategy, error) {
			if len(args) != 0 {
				return nil, fmt.Errorf("none takes no arguments")
			}
			return NoDiscount{}, nil
		},
		"percent": func(args []string) (Strategy, error) {
			n, err := intArgs(args, 1)
			if err != nil {
				return nil, err
			}
			return NewPercentage(n[0])
		},
		"fixed": func(args []string) (Strategy, error) {
			n, err := intArgs(args, 1)
			if err != nil {
				return nil, err
			}
			return NewFixed(Money(n[0]))
		},
		"bundle": func(args []string) (Strategy, error) {
			n, err := intArgs(args, 2)
			if err != nil {
				return nil, err
			}
			return NewBuyXGetY(n[0], n[1])
		},
	}
	mutex sync.RWMutex
)

// Register adds or replaces a named strategy constructor.
func Register(name string, c Constructor) {
	mutex.Lock()
	defer mutex.Unlock()
	constructors[name] = c
}

// Names lists registered strategy names in sorted order.
func Names() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse builds a strategy from a colon separated definition such as "none",
// "percent:15", "fixed:500" (cents) or "bundle:2:1".
func Parse(def string) (Strategy, error) {
	parts := strings.Split(strings.TrimSpace(def), ":")

	mutex.RLock()
	c, exists := constructors[parts[0]]
	mutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, parts[0])
	}

	s, err := c(parts[1:])
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", def, err)
	}
	return s, nil
}

func intArgs(args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("expected %d arguments, got %d", want, len(args))
	}
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = n
	}
	return out, nil
}
