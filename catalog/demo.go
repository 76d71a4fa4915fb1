package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

// Category groups demos the way the pattern literature does.
type Category string

const (
	Creational Category = "creational"
	Behavioral Category = "behavioral"
	Structural Category = "structural"
)

var categoryRank = map[Category]int{
	Creational: 0,
	Behavioral: 1,
	Structural: 2,
}

// Categories lists every category in listing order.
func Categories() []Category {
	return []Category{Creational, Behavioral, Structural}
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryRank[c]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, s)
	}
	return c, nil
}

// Demo is one entry in the catalogue.
type Demo struct {
	Name     string
	Category Category
	Summary  string
	Run      func(ctx context.Context, env *Env) error
}

// Env is what a running demo may use.
type Env struct {
	Out      io.Writer
	Observer observability.Observer
	Config   *Config
}

// Printf writes formatted output to the demo's writer.
func (e *Env) Printf(format string, args ...any) {
	fmt.Fprintf(e.Out, format, args...)
}
