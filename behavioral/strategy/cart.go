package strategy

// Cart is the strategy context. The zero value is an empty cart with no
// discount.
type Cart struct {
	items    []Item
	strategy Strategy
}

// NewCart creates a cart using the given strategy; nil means NoDiscount.
func NewCart(s Strategy) *Cart {
	c := &Cart{}
	c.SetStrategy(s)
	return c
}

// SetStrategy swaps the pricing rule. Nil resets to NoDiscount.
func (c *Cart) SetStrategy(s Strategy) {
	if s == nil {
		s = NoDiscount{}
	}
	c.strategy = s
}

// Strategy returns the active pricing rule.
func (c *Cart) Strategy() Strategy {
	if c.strategy == nil {
		return NoDiscount{}
	}
	return c.strategy
}

// Add appends items to the cart. Items with a non-positive quantity are
// ignored.
func (c *Cart) Add(items ...Item) {
	for _, item := range items {
		if item.Quantity > 0 {
			c.items = append(c.items, item)
		}
	}
}

// Subtotal is the undiscounted total.
func (c *Cart) Subtotal() Money {
	return subtotal(c.items)
}

// Discount is what the active strategy takes off, clamped to
// [0, Subtotal].
func (c *Cart) Discount() Money {
	d := c.Strategy().Discount(c.items)
	return min(max(d, 0), c.Subtotal())
}

// Total is Subtotal minus Discount; never negative.
func (c *Cart) Total() Money {
	return c.Subtotal() - c.Discount()
}
