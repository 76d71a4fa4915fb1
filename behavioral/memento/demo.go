package memento

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

// Demo edits a document with backups between edits, then undoes back past
// the first snapshot.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer, cfg Config) error {
	history, err := NewHistory(&cfg)
	if err != nil {
		return err
	}
	defer history.Close()

	editor := &Editor{}
	caretaker := NewCaretaker(editor, history, obs)

	edits := []func(){
		func() { editor.Type("Hello") },
		func() { editor.Type(", world") },
		func() { editor.Delete(5); editor.Type("gopher") },
	}
	for _, edit := range edits {
		if err := caretaker.Backup(ctx); err != nil {
			return err
		}
		edit()
		fmt.Fprintf(w, "edit  %q\n", editor.Content())
	}

	for {
		err := caretaker.Undo(ctx)
		if errors.Is(err, ErrNoHistory) {
			fmt.Fprintln(w, "undo  nothing left")
			break
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "undo  %q\n", editor.Content())
	}
	return nil
}
