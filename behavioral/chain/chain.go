package chain

import (
	"context"
	"fmt"

	"github.com/tailored-agentic-units/patterns/observability"
)

const (
	EventApproved  observability.EventType = "chain.approved"
	EventEscalated observability.EventType = "chain.escalated"
	EventRejected  observability.EventType = "chain.rejected"
)

type Expense struct {
	ID      string
	Amount  float64
	Purpose string
}

// Decision records which handler approved an expense and how many hops
// it took to get there.
type Decision struct {
	Expense  Expense
	Approver string
	Hops     int
}

// Handler is a link in the chain. SetNext returns its argument so links can
// be wired fluently: a.SetNext(b).SetNext(c).
type Handler interface {
	SetNext(next Handler) Handler
	Handle(ctx context.Context, e Expense) (Decision, error)
}

// Approver authorizes expenses up to Limit and escalates the rest.
type Approver struct {
	Title    string
	Limit    float64
	Observer observability.Observer
	next     Handler
}

func NewApprover(title string, limit float64, obs observability.Observer) *Approver {
	return &Approver{Title: title, Limit: limit, Observer: obs}
}

func (a *Approver) SetNext(next Handler) Handler {
	a.next = next
	return next
}

func (a *Approver) Handle(ctx context.Context, e Expense) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}

	if e.Amount <= a.Limit {
		observability.Emit(ctx, a.Observer, EventApproved, observability.LevelInfo, "chain.Approver",
			map[string]any{"expense": e.ID, "amount": e.Amount, "approver": a.Title})
		return Decision{Expense: e, Approver: a.Title, Hops: 1}, nil
	}

	if a.next == nil {
		observability.Emit(ctx, a.Observer, EventRejected, observability.LevelWarning, "chain.Approver",
			map[string]any{"expense": e.ID, "amount": e.Amount, "last": a.Title})
		return Decision{}, fmt.Errorf("%w: %s for %.2f exceeds %s limit %.2f", ErrUnhandled, e.ID, e.Amount, a.Title, a.Limit)
	}

	observability.Emit(ctx, a.Observer, EventEscalated, observability.LevelVerbose, "chain.Approver",
		map[string]any{"expense": e.ID, "amount": e.Amount, "from": a.Title})
	d, err := a.next.Handle(ctx, e)
	if err != nil {
		return Decision{}, err
	}
	d.Hops++
	return d, nil
}

// Chain is the entry point: it validates the request before handing it to
// the first link.
type Chain struct {
	head Handler
}

// NewChain links handlers in the given order.
func NewChain(handlers ...Handler) (*Chain, error) {
	if len(handlers) == 0 {
		return nil, ErrEmptyChain
	}
	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	return &Chain{head: handlers[0]}, nil
}

// Handle rejects non-positive amounts and otherwise delegates to the head.
func (c *Chain) Handle(ctx context.Context, e Expense) (Decision, error) {
	if e.Amount <= 0 {
		return Decision{}, fmt.Errorf("%w: %s has amount %.2f", ErrInvalidAmount, e.ID, e.Amount)
	}
	return c.head.Handle(ctx, e)
}

// DefaultChain builds the standard team lead, manager, director hierarchy.
func DefaultChain(obs observability.Observer) *Chain {
	c, _ := NewChain(
		NewApprover("team lead", 1_000, obs),
		NewApprover("manager", 5_000, obs),
		NewApprover("director", 20_000, obs),
	)
	return c
}
