package builder

import (
	"errors"
	"fmt"
)

const minWalls = 4

// Builder assembles a House step by step. Steps may be called in any order
// and repeated; the last call wins. Floors defaults to 1 and Roof to flat.
type Builder struct {
	house House
}

// New creates a Builder with default floors and roof.
func New() *Builder {
	b := &Builder{}
	b.Reset()
	return b
}

// Reset discards all parts so the builder can start another house.
func (b *Builder) Reset() *Builder {
	b.house = House{Floors: 1, Roof: RoofFlat}
	return b
}

func (b *Builder) Foundation(f Foundation) *Builder {
	b.house.Foundation = f
	return b
}

func (b *Builder) Walls(n int) *Builder {
	b.house.Walls = n
	return b
}

func (b *Builder) Floors(n int) *Builder {
	b.house.Floors = n
	return b
}

func (b *Builder) Doors(n int) *Builder {
	b.house.Doors = n
	return b
}

func (b *Builder) Windows(n int) *Builder {
	b.house.Windows = n
	return b
}

func (b *Builder) Roof(r Roof) *Builder {
	b.house.Roof = r
	return b
}

func (b *Builder) WithGarage() *Builder {
	b.house.Garage = true
	return b
}

func (b *Builder) WithPool() *Builder {
	b.house.Pool = true
	return b
}

// Build validates the accumulated parts and returns the house. Every
// violated rule is reported; the joined error matches each sentinel with
// errors.Is.
func (b *Builder) Build() (House, error) {
	h := b.house

	var errs []error
	if h.Foundation == "" {
		errs = append(errs, ErrNoFoundation)
	}
	for _, part := range []struct {
		name  string
		count int
	}{
		{"walls", h.Walls},
		{"floors", h.Floors},
		{"doors", h.Doors},
		{"windows", h.Windows},
	} {
		if part.count < 0 {
			errs = append(errs, fmt.Errorf("%w: %s=%d", ErrNegativeCount, part.name, part.count))
		}
	}
	if h.Walls >= 0 && h.Walls < minWalls {
		errs = append(errs, ErrTooFewWalls)
	}
	if h.Floors == 0 {
		errs = append(errs, ErrNoFloors)
	}
	if h.Doors == 0 {
		errs = append(errs, ErrNoDoors)
	}

	if len(errs) > 0 {
		return House{}, fmt.Errorf("build house: %w", errors.Join(errs...))
	}
	return h, nil
}
