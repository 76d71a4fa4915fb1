package memento

import "errors"

// Sentinel errors for snapshots and histories.
var (
	ErrNoHistory        = errors.New("no snapshot to restore")
	ErrUnknownStore     = errors.New("unknown history store")
	ErrCorruptSnapshot  = errors.New("corrupt snapshot")
	ErrCursorOutOfRange = errors.New("cursor out of range")
)
