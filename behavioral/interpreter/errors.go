package interpreter

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax          = errors.New("syntax error")
	ErrDivideByZero    = errors.New("division by zero")
	ErrUnknownVariable = errors.New("unknown variable")
)

// ParseError reports where in the input parsing failed. Pos is a zero-based
// rune offset.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q at %d: %s", e.Input, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}
