package strategy

import (
	"context"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

const EventStrategyApplied observability.EventType = "strategy.applied"

// Demo prices the same cart under several strategies chosen by name.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	cart := NewCart(nil)
	cart.Add(
		Item{SKU: "coffee", Price: 450, Quantity: 3},
		Item{SKU: "bagel", Price: 275, Quantity: 2},
	)
	fmt.Fprintf(w, "subtotal %s\n", cart.Subtotal())

	for _, spec := range []string{"none", "percent:15", "fixed:500", "bundle:2:1", "percent:150"} {
		s, err := Parse(spec)
		if err != nil {
			fmt.Fprintf(w, "%-12s rejected: %v\n", spec, err)
			continue
		}
		cart.SetStrategy(s)
		fmt.Fprintf(w, "%-12s %-18s total %s\n", spec, s.Name(), cart.Total())
		observability.Emit(ctx, obs, EventStrategyApplied, observability.LevelVerbose, "strategy.Cart",
			map[string]any{"strategy": s.Name(), "total": int64(cart.Total())})
	}
	return nil
}
