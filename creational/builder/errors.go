package builder

import "errors"

// Sentinel errors reported by Build.
var (
	ErrNoFoundation  = errors.New("house has no foundation")
	ErrTooFewWalls   = errors.New("house needs at least 4 walls")
	ErrNoFloors      = errors.New("house needs at least 1 floor")
	ErrNoDoors       = errors.New("house needs at least 1 door")
	ErrNegativeCount = errors.New("part count is negative")
)
