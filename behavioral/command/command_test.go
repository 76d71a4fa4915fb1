package command_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tailored-agentic-units/patterns/behavioral/command"
	"github.com/tailored-agentic-units/patterns/observability"
)

func TestInvoker_ExecuteUndoRedo(t *testing.T) {
	ctx := context.Background()
	inv := command.NewInvoker(&command.Calculator{}, nil)

	for _, cmd := range []command.Command{command.Add(10), command.Multiply(3), command.Subtract(4)} {
		if err := inv.Execute(ctx, cmd); err != nil {
			t.Fatalf("Execute(%s) error = %v", cmd, err)
		}
	}
	if inv.Value() != 26 {
		t.Fatalf("Value() = %g, want 26", inv.Value())
	}

	if err := inv.Undo(ctx); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if inv.Value() != 30 {
		t.Errorf("after undo Value() = %g, want 30", inv.Value())
	}

	if err := inv.Redo(ctx); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if inv.Value() != 26 {
		t.Errorf("after redo Value() = %g, want 26", inv.Value())
	}

	if diff := cmp.Diff([]string{"+ 10", "* 3", "- 4"}, inv.History()); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}
}

func TestInvoker_UndoMultiplyByZero(t *testing.T) {
	ctx := context.Background()
	inv := command.NewInvoker(&command.Calculator{Value: 7}, nil)

	if err := inv.Execute(ctx, command.Multiply(0)); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if err := inv.Undo(ctx); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if inv.Value() != 7 {
		t.Errorf("Value() = %g, want 7", inv.Value())
	}
}

func TestInvoker_DivideByZero(t *testing.T) {
	ctx := context.Background()
	rec := observability.NewRecorder()
	inv := command.NewInvoker(&command.Calculator{Value: 12}, rec)

	err := inv.Execute(ctx, command.Divide(0))
	if !errors.Is(err, command.ErrDivideByZero) {
		t.Fatalf("Execute(Divide(0)) error = %v, want ErrDivideByZero", err)
	}
	if inv.Value() != 12 {
		t.Errorf("Value() = %g, want 12 (guard must leave value untouched)", inv.Value())
	}
	if len(inv.History()) != 0 {
		t.Error("failed command must not be recorded")
	}
	if rec.Count(command.EventFailed) != 1 {
		t.Errorf("failed events = %d, want 1", rec.Count(command.EventFailed))
	}
}

func TestInvoker_NewCommandClearsRedo(t *testing.T) {
	ctx := context.Background()
	inv := command.NewInvoker(&command.Calculator{}, nil)

	_ = inv.Execute(ctx, command.Add(1))
	_ = inv.Undo(ctx)
	_ = inv.Execute(ctx, command.Add(5))

	if err := inv.Redo(ctx); !errors.Is(err, command.ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
}

func TestInvoker_SameCommandTwice(t *testing.T) {
	ctx := context.Background()
	inv := command.NewInvoker(&command.Calculator{}, nil)
	inc := command.Add(5)

	for range 2 {
		if err := inv.Execute(ctx, inc); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
	}
	if inv.Value() != 10 {
		t.Fatalf("Value() = %g, want 10", inv.Value())
	}

	want := []float64{5, 0}
	for i, w := range want {
		if err := inv.Undo(ctx); err != nil {
			t.Fatalf("Undo() #%d error = %v", i+1, err)
		}
		if inv.Value() != w {
			t.Errorf("after undo #%d Value() = %g, want %g", i+1, inv.Value(), w)
		}
	}

	if err := inv.Redo(ctx); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if err := inv.Undo(ctx); err != nil {
		t.Fatalf("Undo() after redo error = %v", err)
	}
	if inv.Value() != 0 {
		t.Errorf("Value() = %g, want 0", inv.Value())
	}
}

func TestMacro_RepeatedCommand(t *testing.T) {
	ctx := context.Background()
	inv := command.NewInvoker(&command.Calculator{}, nil)
	inc := command.Add(5)

	if err := inv.Execute(ctx, command.NewMacro("twice", inc, inc)); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if inv.Value() != 10 {
		t.Fatalf("Value() = %g, want 10", inv.Value())
	}
	if err := inv.Undo(ctx); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if inv.Value() != 0 {
		t.Errorf("after undo Value() = %g, want 0", inv.Value())
	}
}

func TestInvoker_EmptyStacks(t *testing.T) {
	ctx := context.Background()
	inv := command.NewInvoker(&command.Calculator{}, nil)

	if err := inv.Undo(ctx); !errors.Is(err, command.ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
	if err := inv.Redo(ctx); !errors.Is(err, command.ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
}

func TestMacro(t *testing.T) {
	tests := []struct {
		name    string
		macro   *command.Macro
		start   float64
		want    float64
		wantErr error
	}{
		{
			name:  "all steps succeed",
			macro: command.NewMacro("double-plus-one", command.Multiply(2), command.Add(1)),
			start: 5,
			want:  11,
		},
		{
			name:    "failure rolls back",
			macro:   command.NewMacro("broken", command.Add(3), command.Multiply(2), command.Divide(0)),
			start:   5,
			want:    5,
			wantErr: command.ErrDivideByZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			inv := command.NewInvoker(&command.Calculator{Value: tt.start}, nil)

			err := inv.Execute(ctx, tt.macro)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
			}
			if inv.Value() != tt.want {
				t.Errorf("Value() = %g, want %g", inv.Value(), tt.want)
			}
			if tt.wantErr != nil {
				return
			}

			if err := inv.Undo(ctx); err != nil {
				t.Fatalf("Undo() error = %v", err)
			}
			if inv.Value() != tt.start {
				t.Errorf("after undo Value() = %g, want %g", inv.Value(), tt.start)
			}
		})
	}
}

func TestMacro_String(t *testing.T) {
	m := command.NewMacro("scale", command.Multiply(100), command.Divide(4))
	if got, want := m.String(), "scale[* 100, / 4]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if m.ID == "" {
		t.Error("NewMacro should assign an ID")
	}
}

func TestDemo(t *testing.T) {
	rec := observability.NewRecorder()
	if err := command.Demo(context.Background(), io.Discard, rec); err != nil {
		t.Fatalf("Demo() error = %v", err)
	}
	if rec.Count(command.EventFailed) != 2 {
		t.Errorf("failed events = %d, want 2", rec.Count(command.EventFailed))
	}
	if rec.Count(command.EventUndo) != 2 || rec.Count(command.EventRedo) != 1 {
		t.Errorf("undo/redo events = %d/%d, want 2/1", rec.Count(command.EventUndo), rec.Count(command.EventRedo))
	}
}
