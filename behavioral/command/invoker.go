package command

import (
	"context"
	"fmt"

	"github.com/tailored-agentic-units/patterns/observability"
)

const (
	EventExecute observability.EventType = "command.execute"
	EventUndo    observability.EventType = "command.undo"
	EventRedo    observability.EventType = "command.redo"
	EventFailed  observability.EventType = "command.failed"
)

// Invoker executes commands and tracks undo/redo history. Executing a new
// command clears the redo stack.
type Invoker struct {
	calc     *Calculator
	done     []Command
	undone   []Command
	observer observability.Observer
}

// NewInvoker creates an Invoker operating on calc. obs may be nil.
func NewInvoker(calc *Calculator, obs observability.Observer) *Invoker {
	return &Invoker{calc: calc, observer: obs}
}

// Value returns the calculator's current value.
func (inv *Invoker) Value() float64 {
	return inv.calc.Value
}

// Execute runs cmd. Failed commands are not recorded.
func (inv *Invoker) Execute(ctx context.Context, cmd Command) error {
	if err := cmd.Execute(inv.calc); err != nil {
		inv.emit(ctx, EventFailed, observability.LevelWarning, cmd, map[string]any{"error": err.Error()})
		return fmt.Errorf("execute %s: %w", cmd, err)
	}
	inv.done = append(inv.done, cmd)
	inv.undone = nil
	inv.emit(ctx, EventExecute, observability.LevelVerbose, cmd, nil)
	return nil
}

// Undo reverses the most recent command.
func (inv *Invoker) Undo(ctx context.Context) error {
	if len(inv.done) == 0 {
		return ErrNothingToUndo
	}
	cmd := inv.done[len(inv.done)-1]
	inv.done = inv.done[:len(inv.done)-1]

	cmd.Undo(inv.calc)
	inv.undone = append(inv.undone, cmd)
	inv.emit(ctx, EventUndo, observability.LevelVerbose, cmd, nil)
	return nil
}

// Redo re-executes the most recently undone command.
func (inv *Invoker) Redo(ctx context.Context) error {
	if len(inv.undone) == 0 {
		return ErrNothingToRedo
	}
	cmd := inv.undone[len(inv.undone)-1]

	if err := cmd.Execute(inv.calc); err != nil {
		return fmt.Errorf("redo %s: %w", cmd, err)
	}
	inv.undone = inv.undone[:len(inv.undone)-1]
	inv.done = append(inv.done, cmd)
	inv.emit(ctx, EventRedo, observability.LevelVerbose, cmd, nil)
	return nil
}

// History lists executed commands, oldest first.
func (inv *Invoker) History() []string {
	out := make([]string, len(inv.done))
	for i, cmd := range inv.done {
		out[i] = cmd.String()
	}
	return out
}

func (inv *Invoker) emit(ctx context.Context, t observability.EventType, level observability.Level, cmd Command, data map[string]any) {
	if data == nil {
		data = make(map[string]any, 2)
	}
	data["command"] = cmd.String()
	data["value"] = inv.calc.Value
	observability.Emit(ctx, inv.observer, t, level, "command.Invoker", data)
}
