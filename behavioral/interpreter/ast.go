package interpreter

import (
	"fmt"
	"strconv"
)

// Context binds variable names to values.
type Context map[string]float64

// Expression is a node of the syntax tree.
type Expression interface {
	Interpret(ctx Context) (float64, error)
	String() string
}

type Number float64

func (n Number) Interpret(Context) (float64, error) { return float64(n), nil }
func (n Number) String() string                     { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

type Variable string

func (v Variable) Interpret(ctx Context) (float64, error) {
	value, ok := ctx[string(v)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownVariable, string(v))
	}
	return value, nil
}

func (v Variable) String() string { return string(v) }

// Op is a binary operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

type Binary struct {
	Op          Op
	Left, Right Expression
}

func (b Binary) Interpret(ctx Context) (float64, error) {
	left, err := b.Left.Interpret(ctx)
	if err != nil {
		return 0, err
	}
	right, err := b.Right.Interpret(ctx)
	if err != nil {
		return 0, err
	}

	switch b.Op {
	case OpAdd:
		return left + right, nil
	case OpSub:
		return left - right, nil
	case OpMul:
		return left * right, nil
	case OpDiv:
		if right == 0 {
			return 0, fmt.Errorf("%w: %s", ErrDivideByZero, b)
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", byte(b.Op))
	}
}

func (b Binary) String() string {
	return fmt.Sprintf("(%s %c %s)", b.Left, b.Op, b.Right)
}

type Negate struct {
	Operand Expression
}

func (n Negate) Interpret(ctx Context) (float64, error) {
	v, err := n.Operand.Interpret(ctx)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func (n Negate) String() string { return fmt.Sprintf("(-%s)", n.Operand) }

// Eval parses and interprets input in one step.
func Eval(input string, ctx Context) (float64, error) {
	expr, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return expr.Interpret(ctx)
}
