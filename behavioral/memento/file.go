package memento

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const snapshotExt = ".snap"

// FileHistory keeps one file per snapshot under a directory. File names are
// zero-padded sequence numbers, so lexical order is push order. Writes go
// through a temp file and rename, so a crash never leaves a partial
// snapshot behind.
type FileHistory struct {
	root string
	next uint64
	mu   sync.Mutex
}

// OpenFileHistory uses (or creates) dir and resumes numbering after the
// newest snapshot already in it.
func OpenFileHistory(dir string) (*FileHistory, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open history %s: %w", dir, err)
	}

	h := &FileHistory{root: dir}
	names, err := h.list()
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		var last uint64
		if _, err := fmt.Sscanf(strings.TrimSuffix(names[len(names)-1], snapshotExt), "%d", &last); err != nil {
			return nil, fmt.Errorf("%w: unexpected file %s", ErrCorruptSnapshot, names[len(names)-1])
		}
		h.next = last + 1
	}
	return h, nil
}

// list returns snapshot file names in push order. Dotfiles are in-flight
// temp files and are skipped.
func (h *FileHistory) list() ([]string, error) {
	entries, err := os.ReadDir(h.root)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != snapshotExt {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (h *FileHistory) Push(ctx context.Context, s Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.Encode()
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	name := fmt.Sprintf("%020d%s", h.next, snapshotExt)
	if err := writeAtomic(h.root, name, data); err != nil {
		return fmt.Errorf("push snapshot: %w", err)
	}
	h.next++
	return nil
}

func writeAtomic(dir, name string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func (h *FileHistory) Pop(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	names, err := h.list()
	if err != nil {
		return Snapshot{}, err
	}
	if len(names) == 0 {
		return Snapshot{}, ErrNoHistory
	}

	path := filepath.Join(h.root, names[len(names)-1])
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("pop snapshot: %w", err)
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		return Snapshot{}, err
	}
	if err := os.Remove(path); err != nil {
		return Snapshot{}, fmt.Errorf("pop snapshot: %w", err)
	}
	return snap, nil
}

func (h *FileHistory) Len(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	names, err := h.list()
	return len(names), err
}

func (h *FileHistory) Close() error { return nil }
