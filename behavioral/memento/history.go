package memento

import (
	"context"
	"sync"
)

// History is the caretaker's storage: a stack of snapshots. Implementations
// must be safe for concurrent use.
type History interface {
	// Push stores a snapshot on top of the stack.
	Push(ctx context.Context, s Snapshot) error

	// Pop removes and returns the newest snapshot.
	// Returns ErrNoHistory when empty.
	Pop(ctx context.Context) (Snapshot, error)

	// Len reports how many snapshots are stored.
	Len(ctx context.Context) (int, error)

	// Close releases any underlying resources.
	Close() error
}

// MemoryHistory keeps snapshots in a slice. Lost when the process exits.
type MemoryHistory struct {
	stack []Snapshot
	mu    sync.Mutex
}

// NewMemoryHistory creates an empty in-memory history.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (h *MemoryHistory) Push(_ context.Context, s Snapshot) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stack = append(h.stack, s)
	return nil
}

func (h *MemoryHistory) Pop(_ context.Context) (Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.stack) == 0 {
		return Snapshot{}, ErrNoHistory
	}
	s := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return s, nil
}

func (h *MemoryHistory) Len(_ context.Context) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.stack), nil
}

func (h *MemoryHistory) Close() error { return nil }
