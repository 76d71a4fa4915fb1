package chain

import (
	"context"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

// Demo submits expenses of increasing size to the default chain.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	c := DefaultChain(obs)

	expenses := []Expense{
		{ID: "EXP-1", Amount: 250, Purpose: "team lunch"},
		{ID: "EXP-2", Amount: 3_200, Purpose: "conference tickets"},
		{ID: "EXP-3", Amount: 18_000, Purpose: "build servers"},
		{ID: "EXP-4", Amount: 75_000, Purpose: "new office"},
		{ID: "EXP-5", Amount: -10, Purpose: "refund"},
	}

	for _, e := range expenses {
		d, err := c.Handle(ctx, e)
		if err != nil {
			fmt.Fprintf(w, "%s %-20s %10.2f  rejected: %v\n", e.ID, e.Purpose, e.Amount, err)
			continue
		}
		fmt.Fprintf(w, "%s %-20s %10.2f  approved by %s after %d hop(s)\n", e.ID, e.Purpose, e.Amount, d.Approver, d.Hops)
	}
	return nil
}
