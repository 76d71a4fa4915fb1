package state

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is wrapped by every TransitionError.
var ErrInvalidTransition = errors.New("invalid order transition")

// TransitionError reports an action the current state does not allow.
type TransitionError struct {
	OrderID string
	From    string
	Action  Action
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("order %s: cannot %s while %s", e.OrderID, e.Action, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
