package interpreter

import (
	"context"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

const (
	EventEvaluated observability.EventType = "interpreter.evaluated"
	EventFailed    observability.EventType = "interpreter.failed"
)

// Demo parses and evaluates a handful of expressions, including the
// divide-by-zero guard and a syntax error.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	vars := Context{"x": 4, "y": 2, "rate": 0.5}
	inputs := []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"-x + y * 10",
		"rate * (x - -y)",
		"x / (y - 2)",
		"x + z",
		"2 * (3 + ",
	}

	for _, input := range inputs {
		expr, err := Parse(input)
		if err == nil {
			var v float64
			if v, err = expr.Interpret(vars); err == nil {
				fmt.Fprintf(w, "%-18s => %-22s = %g\n", input, expr, v)
				observability.Emit(ctx, obs, EventEvaluated, observability.LevelVerbose, "interpreter.Demo",
					map[string]any{"input": input, "value": v})
				continue
			}
		}
		fmt.Fprintf(w, "%-18s => error: %v\n", input, err)
		observability.Emit(ctx, obs, EventFailed, observability.LevelWarning, "interpreter.Demo",
			map[string]any{"input": input, "error": err.Error()})
	}
	return nil
}
