package visitor

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is returned by constructors for impossible dimensions.
var ErrInvalidShape = errors.New("invalid shape")

// Shape is an element that can be visited.
type Shape interface {
	Accept(v Visitor)
}

// Visitor has one method per concrete shape.
type Visitor interface {
	VisitCircle(c *Circle)
	VisitRectangle(r *Rectangle)
	VisitTriangle(t *Triangle)
}

type Circle struct {
	Radius float64
}

// NewCircle requires a positive radius.
func NewCircle(radius float64) (*Circle, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: circle radius %g", ErrInvalidShape, radius)
	}
	return &Circle{Radius: radius}, nil
}

func (c *Circle) Accept(v Visitor) { v.VisitCircle(c) }

type Rectangle struct {
	Width  float64
	Height float64
}

// NewRectangle requires positive sides.
func NewRectangle(width, height float64) (*Rectangle, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: rectangle %gx%g", ErrInvalidShape, width, height)
	}
	return &Rectangle{Width: width, Height: height}, nil
}

func (r *Rectangle) Accept(v Visitor) { v.VisitRectangle(r) }

type Triangle struct {
	A, B, C float64
}

// NewTriangle requires positive sides that satisfy the strict triangle
// inequality.
func NewTriangle(a, b, c float64) (*Triangle, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, fmt.Errorf("%w: triangle sides %g, %g, %g", ErrInvalidShape, a, b, c)
	}
	if a+b <= c || a+c <= b || b+c <= a {
		return nil, fmt.Errorf("%w: sides %g, %g, %g violate the triangle inequality", ErrInvalidShape, a, b, c)
	}
	return &Triangle{A: a, B: b, C: c}, nil
}

func (t *Triangle) Accept(v Visitor) { v.VisitTriangle(t) }

// Drawing is a composite: accepting a visitor visits every shape in order.
type Drawing struct {
	Name   string
	Shapes []Shape
}

// Add appends shapes and returns the drawing for chaining.
func (d *Drawing) Add(shapes ...Shape) *Drawing {
	d.Shapes = append(d.Shapes, shapes...)
	return d
}

func (d *Drawing) Accept(v Visitor) {
	for _, s := range d.Shapes {
		s.Accept(v)
	}
}
