package state_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tailored-agentic-units/patterns/behavioral/state"
	"github.com/tailored-agentic-units/patterns/observability"
)

func TestOrder_HappyPath(t *testing.T) {
	ctx := context.Background()
	order := state.NewOrder(ctx, "o-1")

	if order.State() != state.Pending {
		t.Fatalf("new order state = %s, want pending", order.State().Name())
	}

	steps := []func(context.Context) error{order.Pay, order.Ship, order.Deliver}
	for i, step := range steps {
		if err := step(ctx); err != nil {
			t.Fatalf("step %d error = %v", i, err)
		}
	}

	if order.State() != state.Delivered {
		t.Errorf("final state = %s, want delivered", order.State().Name())
	}
	if !order.State().Terminal() {
		t.Error("delivered should be terminal")
	}

	var path []string
	for _, tr := range order.History() {
		path = append(path, tr.From+"->"+tr.To)
	}
	want := []string{"pending->paid", "paid->shipped", "shipped->delivered"}
	if diff := cmp.Diff(want, path); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_Transitions(t *testing.T) {
	all := []state.Action{state.ActionPay, state.ActionShip, state.ActionDeliver, state.ActionCancel}

	tests := []struct {
		name    string
		setup   []state.Action
		allowed map[state.Action]state.State
	}{
		{
			name:    "pending",
			allowed: map[state.Action]state.State{state.ActionPay: state.Paid, state.ActionCancel: state.Cancelled},
		},
		{
			name:    "paid",
			setup:   []state.Action{state.ActionPay},
			allowed: map[state.Action]state.State{state.ActionShip: state.Shipped, state.ActionCancel: state.Cancelled},
		},
		{
			name:    "shipped",
			setup:   []state.Action{state.ActionPay, state.ActionShip},
			allowed: map[state.Action]state.State{state.ActionDeliver: state.Delivered},
		},
		{
			name:  "delivered",
			setup: []state.Action{state.ActionPay, state.ActionShip, state.ActionDeliver},
		},
		{
			name:  "cancelled",
			setup: []state.Action{state.ActionCancel},
		},
	}

	for _, tt := range tests {
		for _, action := range all {
			t.Run(tt.name+"/"+string(action), func(t *testing.T) {
				ctx := context.Background()
				order := state.NewOrder(ctx, "o")
				for _, a := range tt.setup {
					if err := order.Apply(ctx, a); err != nil {
						t.Fatalf("setup %s error = %v", a, err)
					}
				}
				before := order.State()
				historyLen := len(order.History())

				err := order.Apply(ctx, action)
				want, allowed := tt.allowed[action]

				if allowed {
					if err != nil {
						t.Fatalf("Apply(%s) error = %v", action, err)
					}
					if order.State() != want {
						t.Errorf("state = %s, want %s", order.State().Name(), want.Name())
					}
					return
				}

				if !errors.Is(err, state.ErrInvalidTransition) {
					t.Fatalf("Apply(%s) error = %v, want ErrInvalidTransition", action, err)
				}
				var te *state.TransitionError
				if !errors.As(err, &te) || te.From != before.Name() || te.Action != action {
					t.Errorf("TransitionError = %+v", te)
				}
				if order.State() != before || len(order.History()) != historyLen {
					t.Error("rejected action must leave the order unchanged")
				}
			})
		}
	}
}

func TestOrder_Events(t *testing.T) {
	rec := observability.NewRecorder()
	ctx := context.Background()
	order := state.NewOrder(ctx, "o-2", state.WithObserver(rec))

	_ = order.Pay(ctx)
	_ = order.Deliver(ctx)
	_ = order.Cancel(ctx)

	want := []observability.EventType{
		state.EventOrderCreated,
		state.EventOrderTransition,
		state.EventOrderRejected,
		state.EventOrderTransition,
	}
	if diff := cmp.Diff(want, rec.Types()); diff != "" {
		t.Errorf("event types mismatch (-want +got):\n%s", diff)
	}
}

func TestTransitionError_Message(t *testing.T) {
	err := &state.TransitionError{OrderID: "o-3", From: "shipped", Action: state.ActionCancel}
	want := "order o-3: cannot cancel while shipped"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDemo(t *testing.T) {
	rec := observability.NewRecorder()
	if err := state.Demo(context.Background(), io.Discard, rec); err != nil {
		t.Fatalf("Demo() error = %v", err)
	}
	if got := rec.Count(state.EventOrderTransition); got != 5 {
		t.Errorf("transitions = %d, want 5", got)
	}
	if got := rec.Count(state.EventOrderRejected); got != 3 {
		t.Errorf("rejections = %d, want 3", got)
	}
}
