package command

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Calculator is the receiver. It only knows how to hold a value.
type Calculator struct {
	Value float64
}

// Command is an undoable operation on a Calculator. Execute must leave the
// calculator untouched when it returns an error.
type Command interface {
	Execute(c *Calculator) error
	Undo(c *Calculator)
	String() string
}

// arithmetic keeps a stack of the values it replaced, so Undo is exact even
// for multiplication by zero and when the same instance runs more than once.
type arithmetic struct {
	op      string
	operand float64
	apply   func(v, operand float64) (float64, error)
	prev    []float64
}

func (a *arithmetic) Execute(c *Calculator) error {
	v, err := a.apply(c.Value, a.operand)
	if err != nil {
		return err
	}
	a.prev = append(a.prev, c.Value)
	c.Value = v
	return nil
}

// Undo restores the value from before the most recent Execute. It does
// nothing when there is no execution left to reverse.
func (a *arithmetic) Undo(c *Calculator) {
	if len(a.prev) == 0 {
		return
	}
	c.Value = a.prev[len(a.prev)-1]
	a.prev = a.prev[:len(a.prev)-1]
}

func (a *arithmetic) String() string {
	return fmt.Sprintf("%s %g", a.op, a.operand)
}

// Add returns a command adding n.
func Add(n float64) Command {
	return &arithmetic{op: "+", operand: n, apply: func(v, o float64) (float64, error) { return v + o, nil }}
}

// Subtract returns a command subtracting n.
func Subtract(n float64) Command {
	return &arithmetic{op: "-", operand: n, apply: func(v, o float64) (float64, error) { return v - o, nil }}
}

// Multiply returns a command multiplying by n.
func Multiply(n float64) Command {
	return &arithmetic{op: "*", operand: n, apply: func(v, o float64) (float64, error) { return v * o, nil }}
}

// Divide returns a command dividing by n. Executing it with n == 0 fails
// with ErrDivideByZero.
func Divide(n float64) Command {
	return &arithmetic{op: "/", operand: n, apply: func(v, o float64) (float64, error) {
		if o == 0 {
			return v, fmt.Errorf("%w: %g / 0", ErrDivideByZero, v)
		}
		return v / o, nil
	}}
}

// Macro runs its commands as one unit. If any step fails the steps already
// applied are undone, so the macro is all-or-nothing.
type Macro struct {
	ID       string
	Name     string
	commands []Command
}

// NewMacro groups commands under a name.
func NewMacro(name string, commands ...Command) *Macro {
	return &Macro{
		ID:       uuid.Must(uuid.NewV7()).String(),
		Name:     name,
		commands: commands,
	}
}

func (m *Macro) Execute(c *Calculator) error {
	for i, cmd := range m.commands {
		if err := cmd.Execute(c); err != nil {
			for j := i - 1; j >= 0; j-- {
				m.commands[j].Undo(c)
			}
			return fmt.Errorf("macro %s step %d (%s): %w", m.Name, i+1, cmd, err)
		}
	}
	return nil
}

func (m *Macro) Undo(c *Calculator) {
	for i := len(m.commands) - 1; i >= 0; i-- {
		m.commands[i].Undo(c)
	}
}

func (m *Macro) String() string {
	parts := make([]string, len(m.commands))
	for i, cmd := range m.commands {
		parts[i] = cmd.String()
	}
	return fmt.Sprintf("%s[%s]", m.Name, strings.Join(parts, ", "))
}
