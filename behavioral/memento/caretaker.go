package memento

import (
	"context"
	"fmt"

	"github.com/tailored-agentic-units/patterns/observability"
)

const (
	EventBackup  observability.EventType = "memento.backup"
	EventRestore observability.EventType = "memento.restore"
)

// Caretaker decides when to snapshot the editor and when to roll it back.
// It never inspects snapshot contents.
type Caretaker struct {
	editor   *Editor
	history  History
	observer observability.Observer
}

// NewCaretaker looks after editor using history. obs may be nil.
func NewCaretaker(editor *Editor, history History, obs observability.Observer) *Caretaker {
	return &Caretaker{editor: editor, history: history, observer: obs}
}

// Backup snapshots the editor's current state.
func (c *Caretaker) Backup(ctx context.Context) error {
	s := c.editor.Save()
	if err := c.history.Push(ctx, s); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	observability.Emit(ctx, c.observer, EventBackup, observability.LevelVerbose, "memento.Caretaker",
		map[string]any{"snapshot": s.ID()})
	return nil
}

// Undo restores the most recent snapshot. Returns ErrNoHistory when there
// is nothing to restore; the editor is left as is.
func (c *Caretaker) Undo(ctx context.Context) error {
	s, err := c.history.Pop(ctx)
	if err != nil {
		return fmt.Errorf("undo: %w", err)
	}
	c.editor.Restore(s)
	observability.Emit(ctx, c.observer, EventRestore, observability.LevelVerbose, "memento.Caretaker",
		map[string]any{"snapshot": s.ID()})
	return nil
}

// Depth reports how many snapshots are available for undo.
func (c *Caretaker) Depth(ctx context.Context) (int, error) {
	return c.history.Len(ctx)
}
