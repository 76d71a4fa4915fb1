package factory

import "errors"

// Sentinel errors for candy creation and the factory registry.
var (
	ErrInvalidCandyType = errors.New("invalid candy type")
	ErrUnknownFactory   = errors.New("unknown candy factory")
	ErrEmptyName        = errors.New("factory name is empty")
)
