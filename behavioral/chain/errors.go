package chain

import "errors"

var (
	ErrInvalidAmount = errors.New("expense amount must be positive")
	ErrUnhandled     = errors.New("no approver can authorize expense")
	ErrEmptyChain    = errors.New("chain has no handlers")
)
