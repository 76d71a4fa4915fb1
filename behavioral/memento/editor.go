package memento

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Editor is the originator: a text buffer with a cursor.
type Editor struct {
	content []rune
	cursor  int
}

// Content returns the current text.
func (e *Editor) Content() string { return string(e.content) }

// Cursor returns the cursor position in runes.
func (e *Editor) Cursor() int { return e.cursor }

// Type inserts text at the cursor and moves the cursor past it.
func (e *Editor) Type(text string) {
	in := []rune(text)
	out := make([]rune, 0, len(e.content)+len(in))
	out = append(out, e.content[:e.cursor]...)
	out = append(out, in...)
	out = append(out, e.content[e.cursor:]...)
	e.content = out
	e.cursor += len(in)
}

// Delete removes up to n runes before the cursor (backspace).
func (e *Editor) Delete(n int) {
	n = min(max(n, 0), e.cursor)
	e.content = append(e.content[:e.cursor-n:e.cursor-n], e.content[e.cursor:]...)
	e.cursor -= n
}

// MoveCursor places the cursor at pos.
func (e *Editor) MoveCursor(pos int) error {
	if pos < 0 || pos > len(e.content) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrCursorOutOfRange, pos, len(e.content))
	}
	e.cursor = pos
	return nil
}

// Save captures the editor state.
func (e *Editor) Save() Snapshot {
	return Snapshot{
		id:      uuid.Must(uuid.NewV7()).String(),
		content: string(e.content),
		cursor:  e.cursor,
		takenAt: time.Now(),
	}
}

// Restore puts the editor back into the captured state.
func (e *Editor) Restore(s Snapshot) {
	e.content = []rune(s.content)
	e.cursor = min(max(s.cursor, 0), len(e.content))
}
