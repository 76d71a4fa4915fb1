package state

import (
	"context"
	"time"

	"github.com/tailored-agentic-units/patterns/observability"
)

// Transition is one step of an order's history.
type Transition struct {
	From   string
	To     string
	Action Action
	At     time.Time
}

// Order is the context object: it holds the current State and delegates
// every action to it.
type Order struct {
	ID       string
	state    State
	history  []Transition
	observer observability.Observer
}

// Option configures an Order.
type Option func(*Order)

// WithObserver attaches an observer that receives transition events.
func WithObserver(o observability.Observer) Option {
	return func(ord *Order) { ord.observer = o }
}

// NewOrder creates a pending order.
func NewOrder(ctx context.Context, id string, opts ...Option) *Order {
	o := &Order{ID: id, state: Pending}
	for _, opt := range opts {
		opt(o)
	}

	observability.Emit(ctx, o.observer, EventOrderCreated, observability.LevelVerbose, "state.Order",
		map[string]any{"order": id, "state": o.state.Name()})
	return o
}

// State returns the current stage.
func (o *Order) State() State { return o.state }

// History returns the transitions applied so far, oldest first.
func (o *Order) History() []Transition {
	out := make([]Transition, len(o.history))
	copy(out, o.history)
	return out
}

func (o *Order) Pay(ctx context.Context) error     { return o.apply(ctx, ActionPay) }
func (o *Order) Ship(ctx context.Context) error    { return o.apply(ctx, ActionShip) }
func (o *Order) Deliver(ctx context.Context) error { return o.apply(ctx, ActionDeliver) }
func (o *Order) Cancel(ctx context.Context) error  { return o.apply(ctx, ActionCancel) }

// Apply performs an action by name.
func (o *Order) Apply(ctx context.Context, a Action) error {
	return o.apply(ctx, a)
}

func (o *Order) apply(ctx context.Context, a Action) error {
	from := o.state
	next, ok := from.Next(a)
	if !ok {
		observability.Emit(ctx, o.observer, EventOrderRejected, observability.LevelWarning, "state.Order",
			map[string]any{"order": o.ID, "state": from.Name(), "action": string(a)})
		return &TransitionError{OrderID: o.ID, From: from.Name(), Action: a}
	}

	o.state = next
	o.history = append(o.history, Transition{
		From:   from.Name(),
		To:     next.Name(),
		Action: a,
		At:     time.Now(),
	})

	observability.Emit(ctx, o.observer, EventOrderTransition, observability.LevelInfo, "state.Order",
		map[string]any{"order": o.ID, "from": from.Name(), "to": next.Name(), "action": string(a)})
	return nil
}
