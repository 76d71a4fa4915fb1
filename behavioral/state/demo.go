package state

import (
	"context"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

// Demo drives one order to delivery, cancels a second after payment, and
// shows the errors for illegal actions.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	scripts := []struct {
		id      string
		actions []Action
	}{
		{"A-100", []Action{ActionPay, ActionShip, ActionDeliver, ActionCancel}},
		{"A-101", []Action{ActionShip, ActionPay, ActionCancel, ActionShip}},
	}

	for _, script := range scripts {
		order := NewOrder(ctx, script.id, WithObserver(obs))
		fmt.Fprintf(w, "order %s: %s\n", order.ID, order.State().Name())

		for _, a := range script.actions {
			if err := order.Apply(ctx, a); err != nil {
				fmt.Fprintf(w, "  %-8s rejected: %v\n", a, err)
				continue
			}
			fmt.Fprintf(w, "  %-8s -> %s\n", a, order.State().Name())
		}
		fmt.Fprintf(w, "  final %s after %d transitions\n", order.State().Name(), len(order.History()))
	}
	return nil
}
