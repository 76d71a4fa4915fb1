// Package observer lets a Subject notify any number of dependents when it
// changes, without knowing their concrete types. Subscribing returns an
// unsubscribe function rather than requiring observers to be comparable.
package observer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Observer receives updates of type T.
type Observer[T any] interface {
	Update(ctx context.Context, value T) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[T any] func(ctx context.Context, value T) error

func (f ObserverFunc[T]) Update(ctx context.Context, value T) error {
	return f(ctx, value)
}

type subscription[T any] struct {
	id       uint64
	observer Observer[T]
}

// Subject keeps an ordered list of observers. Safe for concurrent use;
// observers may unsubscribe from inside Update.
type Subject[T any] struct {
	subs   []subscription[T]
	nextID uint64
	mu     sync.RWMutex
}

// Subscribe registers an observer and returns the function that removes
// it. Calling the returned function more than once is harmless.
func (s *Subject[T]) Subscribe(o Observer[T]) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription[T]{id: id, observer: o})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Len reports the number of subscribed observers.
func (s *Subject[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

func (s *Subject[T]) snapshot() []subscription[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subs := make([]subscription[T], len(s.subs))
	copy(subs, s.subs)
	return subs
}

// Notify updates every observer in subscription order. A failing observer
// does not stop the others; all failures are joined into the result.
func (s *Subject[T]) Notify(ctx context.Context, value T) error {
	var errs []error
	for i, sub := range s.snapshot() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sub.observer.Update(ctx, value); err != nil {
			errs = append(errs, fmt.Errorf("observer %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// NotifyConcurrent updates observers in parallel with at most limit running
// at once (limit <= 0 means unbounded). The first failure cancels the
// context passed to the remaining observers and is returned.
func (s *Subject[T]) NotifyConcurrent(ctx context.Context, value T, limit int) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, sub := range s.snapshot() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return sub.observer.Update(gctx, value)
		})
	}
	return g.Wait()
}
