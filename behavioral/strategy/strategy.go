// Package strategy swaps the discount algorithm of a shopping Cart at
// runtime. The cart only knows the Strategy interface; each pricing rule
// lives in its own type and can be chosen by name with Parse.
package strategy

import (
	"errors"
	"fmt"
)

// Money is an amount in cents.
type Money int64

func (m Money) String() string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s$%d.%02d", sign, m/100, m%100)
}

// Item is a cart line.
type Item struct {
	SKU      string
	Price    Money
	Quantity int
}

// Subtotal is price times quantity.
func (i Item) Subtotal() Money {
	return i.Price * Money(i.Quantity)
}

// Sentinel errors for strategy construction and parsing.
var (
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")
	ErrInvalidAmount     = errors.New("amount must not be negative")
	ErrInvalidBundle     = errors.New("buy-x-get-y needs x >= 1 and y >= 1")
	ErrUnknownStrategy   = errors.New("unknown discount strategy")
)

// Strategy computes the discount for a set of items. The returned discount
// is never negative; the cart clamps it to the subtotal.
type Strategy interface {
	Name() string
	Discount(items []Item) Money
}

// NoDiscount charges full price.
type NoDiscount struct{}

func (NoDiscount) Name() string                { return "none" }
func (NoDiscount) Discount(items []Item) Money { return 0 }

// Percentage takes a percent off the whole subtotal, rounding down to the cent.
type Percentage struct {
	percent int
}

// NewPercentage validates p is in [0, 100].
func NewPercentage(p int) (Percentage, error) {
	if p < 0 || p > 100 {
		return Percentage{}, fmt.Errorf("%w: %d", ErrInvalidPercentage, p)
	}
	return Percentage{percent: p}, nil
}

func (p Percentage) Name() string { return fmt.Sprintf("%d%% off", p.percent) }

func (p Percentage) Discount(items []Item) Money {
	return subtotal(items) * Money(p.percent) / 100
}

// Fixed takes a flat amount off the order.
type Fixed struct {
	amount Money
}

// NewFixed validates the amount is not negative.
func NewFixed(amount Money) (Fixed, error) {
	if amount < 0 {
		return Fixed{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	return Fixed{amount: amount}, nil
}

func (f Fixed) Name() string { return fmt.Sprintf("%s off", f.amount) }

func (f Fixed) Discount(items []Item) Money {
	return f.amount
}

// BuyXGetY makes Y of every X+Y units of the same item free.
type BuyXGetY struct {
	buy, free int
}

// NewBuyXGetY validates both counts are positive.
func NewBuyXGetY(buy, free int) (BuyXGetY, error) {
	if buy < 1 || free < 1 {
		return BuyXGetY{}, fmt.Errorf("%w: buy %d get %d", ErrInvalidBundle, buy, free)
	}
	return BuyXGetY{buy: buy, free: free}, nil
}

func (b BuyXGetY) Name() string { return fmt.Sprintf("buy %d get %d free", b.buy, b.free) }

func (b BuyXGetY) Discount(items []Item) Money {
	var discount Money
	group := b.buy + b.free
	for _, item := range items {
		freeUnits := item.Quantity / group * b.free
		discount += item.Price * Money(freeUnits)
	}
	return discount
}

func subtotal(items []Item) Money {
	var total Money
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
