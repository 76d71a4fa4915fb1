package visitor

import (
	"fmt"
	"math"
)

// AreaVisitor sums the area of every shape it visits.
type AreaVisitor struct {
	Total float64
	Count int
}

func (v *AreaVisitor) VisitCircle(c *Circle) {
	v.add(math.Pi * c.Radius * c.Radius)
}

func (v *AreaVisitor) VisitRectangle(r *Rectangle) {
	v.add(r.Width * r.Height)
}

// VisitTriangle uses Heron's formula.
func (v *AreaVisitor) VisitTriangle(t *Triangle) {
	s := (t.A + t.B + t.C) / 2
	v.add(math.Sqrt(s * (s - t.A) * (s - t.B) * (s - t.C)))
}

func (v *AreaVisitor) add(area float64) {
	v.Total += area
	v.Count++
}

// PerimeterVisitor sums perimeters.
type PerimeterVisitor struct {
	Total float64
}

func (v *PerimeterVisitor) VisitCircle(c *Circle)       { v.Total += 2 * math.Pi * c.Radius }
func (v *PerimeterVisitor) VisitRectangle(r *Rectangle) { v.Total += 2 * (r.Width + r.Height) }
func (v *PerimeterVisitor) VisitTriangle(t *Triangle)   { v.Total += t.A + t.B + t.C }

// DescribeVisitor collects one line per visited shape.
type DescribeVisitor struct {
	Lines []string
}

func (v *DescribeVisitor) VisitCircle(c *Circle) {
	v.Lines = append(v.Lines, fmt.Sprintf("circle r=%g", c.Radius))
}

func (v *DescribeVisitor) VisitRectangle(r *Rectangle) {
	v.Lines = append(v.Lines, fmt.Sprintf("rectangle %gx%g", r.Width, r.Height))
}

func (v *DescribeVisitor) VisitTriangle(t *Triangle) {
	v.Lines = append(v.Lines, fmt.Sprintf("triangle %g/%g/%g", t.A, t.B, t.C))
}

// Area is a convenience for visiting a single shape.
func Area(s Shape) float64 {
	var v AreaVisitor
	s.Accept(&v)
	return v.Total
}

// Perimeter is a convenience for visiting a single shape.
func Perimeter(s Shape) float64 {
	var v PerimeterVisitor
	s.Accept(&v)
	return v.Total
}
