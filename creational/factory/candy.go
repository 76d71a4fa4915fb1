package factory

import "fmt"

// Kind names a candy product line.
type Kind string

const (
	KindChocolate Kind = "chocolate"
	KindGummy     Kind = "gummy"
	KindLollipop  Kind = "lollipop"
)

// Candy is the product interface every factory returns.
type Candy interface {
	Kind() Kind
	Name() string
	Calories() int
	SugarFree() bool
}

type chocolate struct{ sugarFree bool }

func (c chocolate) Kind() Kind      { return KindChocolate }
func (c chocolate) SugarFree() bool { return c.sugarFree }

func (c chocolate) Name() string {
	if c.sugarFree {
		return "sugar-free dark chocolate"
	}
	return "milk chocolate"
}

func (c chocolate) Calories() int {
	if c.sugarFree {
		return 150
	}
	return 230
}

type gummy struct{ sugarFree bool }

func (g gummy) Kind() Kind      { return KindGummy }
func (g gummy) SugarFree() bool { return g.sugarFree }

func (g gummy) Name() string {
	if g.sugarFree {
		return "sugar-free gummy bears"
	}
	return "gummy bears"
}

func (g gummy) Calories() int {
	if g.sugarFree {
		return 90
	}
	return 140
}

type lollipop struct{}

func (lollipop) Kind() Kind      { return KindLollipop }
func (lollipop) Name() string    { return "cherry lollipop" }
func (lollipop) Calories() int   { return 60 }
func (lollipop) SugarFree() bool { return false }

// NewCandy is the simple factory: it maps a Kind to its concrete Candy.
// Unknown kinds return ErrInvalidCandyType.
func NewCandy(kind Kind) (Candy, error) {
	switch kind {
	case KindChocolate:
		return chocolate{}, nil
	case KindGummy:
		return gummy{}, nil
	case KindLollipop:
		return lollipop{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCandyType, kind)
	}
}
