// Package singleton guarantees one instance of a value per process. In Go
// the pattern is a package-level variable guarded by sync.Once rather than
// a class with a private constructor; Lazy wraps that idiom generically.
package singleton

import (
	"sync"
	"sync/atomic"
)

// Lazy constructs its value on first use and returns the same value on
// every later call, from any goroutine.
type Lazy[T any] struct {
	once  sync.Once
	init  func() T
	value T
	calls atomic.Int32
}

// NewLazy creates a Lazy that will call init exactly once.
func NewLazy[T any](init func() T) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// Get returns the single value, constructing it on the first call.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.init()
		l.calls.Add(1)
	})
	return l.value
}

// Initialized reports how many times the constructor ran: 0 or 1. It never
// triggers construction itself.
func (l *Lazy[T]) Initialized() int {
	return int(l.calls.Load())
}
