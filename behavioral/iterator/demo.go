package iterator

import (
	"context"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

const EventBookVisited observability.EventType = "iterator.book"

// Demo iterates a collection forwards, backwards and filtered, then walks a
// bookshelf tree in title order.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	numbers := NewCollection(1, 2, 3, 4, 5, 6)

	fmt.Fprint(w, "forward:")
	for it := numbers.Iterator(); it.Next(); {
		fmt.Fprintf(w, " %d", it.Value())
	}
	fmt.Fprint(w, "\nreverse:")
	for it := numbers.Reverse(); it.Next(); {
		fmt.Fprintf(w, " %d", it.Value())
	}
	fmt.Fprint(w, "\neven:")
	for n := range numbers.Filter(func(n int) bool { return n%2 == 0 }) {
		fmt.Fprintf(w, " %d", n)
	}
	fmt.Fprintln(w)

	var shelf BookShelf
	books := []Book{
		{Title: "The Go Programming Language", Author: "Donovan & Kernighan", Year: 2015},
		{Title: "Design Patterns", Author: "Gamma et al.", Year: 1994},
		{Title: "Refactoring", Author: "Fowler", Year: 1999},
		{Title: "Clean Architecture", Author: "Martin", Year: 2017},
	}
	for _, b := range books {
		if err := shelf.Insert(b); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "bookshelf (by title):")
	for b := range shelf.All() {
		fmt.Fprintf(w, "  %s\n", b)
		observability.Emit(ctx, obs, EventBookVisited, observability.LevelVerbose, "iterator.Demo",
			map[string]any{"title": b.Title})
	}

	fmt.Fprintln(w, "published before 2000:")
	old := Filter(shelf.Iterator(), func(b Book) bool { return b.Year < 2000 })
	for old.Next() {
		fmt.Fprintf(w, "  %s\n", old.Value())
	}
	return nil
}
