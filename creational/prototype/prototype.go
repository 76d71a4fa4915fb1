// Package prototype creates objects by copying a configured instance
// instead of constructing from scratch. Each Shape deep-copies its mutable
// parts in Clone, so a clone can be changed without touching the prototype.
// A Registry holds named prototypes and spawns fresh copies on request.
package prototype

import (
	"fmt"
	"maps"
	"math"

	"github.com/google/uuid"
)

// Prototype is implemented by anything that can produce an independent copy
// of itself.
type Prototype[T any] interface {
	Clone() T
}

// Style is shared presentation data. It is held by pointer, which is what
// makes a shallow copy unsafe.
type Style struct {
	Fill   string
	Stroke string
	Width  float64
}

// Shape is the prototype interface used by the registry.
type Shape interface {
	Prototype[Shape]
	ID() string
	Area() float64
	Describe() string
}

// Base carries the fields common to every shape.
type Base struct {
	id    string
	X, Y  float64
	Style *Style
	Tags  map[string]string
}

func newBase(x, y float64, style *Style, tags map[string]string) Base {
	return Base{id: newID(), X: x, Y: y, Style: style, Tags: tags}
}

func (b Base) ID() string { return b.id }

// cloneBase deep-copies Style and Tags and assigns a fresh identity.
func (b Base) cloneBase() Base {
	c := b
	c.id = newID()
	if b.Style != nil {
		style := *b.Style
		c.Style = &style
	}
	c.Tags = maps.Clone(b.Tags)
	return c
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Circle is a shape defined by its radius.
type Circle struct {
	Base
	Radius float64
}

// NewCircle creates a circle at (x, y).
func NewCircle(x, y, radius float64, style *Style, tags map[string]string) *Circle {
	return &Circle{Base: newBase(x, y, style, tags), Radius: radius}
}

func (c *Circle) Clone() Shape {
	return &Circle{Base: c.cloneBase(), Radius: c.Radius}
}

func (c *Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

func (c *Circle) Describe() string {
	return fmt.Sprintf("circle r=%.1f at (%.0f,%.0f) %s", c.Radius, c.X, c.Y, describeStyle(c.Style))
}

// Rectangle is a shape defined by width and height.
type Rectangle struct {
	Base
	Width, Height float64
}

// NewRectangle creates a rectangle with its corner at (x, y).
func NewRectangle(x, y, width, height float64, style *Style, tags map[string]string) *Rectangle {
	return &Rectangle{Base: newBase(x, y, style, tags), Width: width, Height: height}
}

func (r *Rectangle) Clone() Shape {
	return &Rectangle{Base: r.cloneBase(), Width: r.Width, Height: r.Height}
}

func (r *Rectangle) Area() float64 { return r.Width * r.Height }

func (r *Rectangle) Describe() string {
	return fmt.Sprintf("rectangle %.0fx%.0f at (%.0f,%.0f) %s", r.Width, r.Height, r.X, r.Y, describeStyle(r.Style))
}

func describeStyle(s *Style) string {
	if s == nil {
		return "unstyled"
	}
	return fmt.Sprintf("fill=%s stroke=%s", s.Fill, s.Stroke)
}
