package command

import "errors"

// Sentinel errors for calculator commands and the invoker.
var (
	ErrDivideByZero  = errors.New("divide by zero")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)
