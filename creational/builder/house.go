package builder

import (
	"fmt"
	"strings"
)

// Foundation is the base a house is built on.
type Foundation string

const (
	FoundationSlab     Foundation = "slab"
	FoundationBasement Foundation = "basement"
	FoundationPiles    Foundation = "piles"
)

// Roof is the roof style.
type Roof string

const (
	RoofFlat  Roof = "flat"
	RoofGable Roof = "gable"
	RoofHip   Roof = "hip"
)

// House is the product assembled by a Builder. It is a plain value; the
// builder hands out copies so later builder calls never alter a built house.
type House struct {
	Foundation Foundation
	Walls      int
	Floors     int
	Doors      int
	Windows    int
	Roof       Roof
	Garage     bool
	Pool       bool
}

func (h House) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d-floor house on %s foundation: %d walls, %d doors, %d windows, %s roof",
		h.Floors, h.Foundation, h.Walls, h.Doors, h.Windows, h.Roof)

	var extras []string
	if h.Garage {
		extras = append(extras, "garage")
	}
	if h.Pool {
		extras = append(extras, "pool")
	}
	if len(extras) > 0 {
		b.WriteString(" with ")
		b.WriteString(strings.Join(extras, " and "))
	}
	return b.String()
}
