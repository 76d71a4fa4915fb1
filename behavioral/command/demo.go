package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

// Demo runs a sequence of calculator commands with undo and redo, hits the
// divide-by-zero guard, and shows a macro rolling back.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	inv := NewInvoker(&Calculator{}, obs)

	steps := []struct {
		label string
		run   func() error
	}{
		{"add 10", func() error { return inv.Execute(ctx, Add(10)) }},
		{"multiply 3", func() error { return inv.Execute(ctx, Multiply(3)) }},
		{"subtract 4", func() error { return inv.Execute(ctx, Subtract(4)) }},
		{"undo", func() error { return inv.Undo(ctx) }},
		{"undo", func() error { return inv.Undo(ctx) }},
		{"redo", func() error { return inv.Redo(ctx) }},
		{"divide 0", func() error { return inv.Execute(ctx, Divide(0)) }},
		{"divide 6", func() error { return inv.Execute(ctx, Divide(6)) }},
		{"macro", func() error { return inv.Execute(ctx, NewMacro("scale", Multiply(100), Divide(0))) }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			if !errors.Is(err, ErrDivideByZero) {
				return err
			}
			fmt.Fprintf(w, "%-10s error: %v (value stays %g)\n", step.label, err, inv.Value())
			continue
		}
		fmt.Fprintf(w, "%-10s value = %g\n", step.label, inv.Value())
	}

	fmt.Fprintf(w, "history: %v\n", inv.History())
	return nil
}
