package catalog

import "errors"

// Sentinel errors for the demo registry.
var (
	ErrNotFound        = errors.New("demo not found")
	ErrAlreadyExists   = errors.New("demo already registered")
	ErrEmptyName       = errors.New("demo name is empty")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNoRun           = errors.New("demo has no run function")
)
