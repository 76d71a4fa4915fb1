package singleton

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/tailored-agentic-units/patterns/observability"
)

const EventInstanceShared observability.EventType = "singleton.instance.shared"

// Demo asks for the settings from several goroutines and shows they all
// received, and mutated, the same instance.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	const callers = 5

	instances := make([]*AppSettings, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := Settings()
			s.Increment("demo.visits")
			instances[i] = s
		}()
	}
	wg.Wait()

	for i, s := range instances {
		if s != instances[0] {
			return fmt.Errorf("caller %d received a different instance", i)
		}
	}

	s := Settings()
	fmt.Fprintf(w, "%d callers shared %s %s created at %s\n",
		callers, s.Name, s.Version, s.CreatedAt.Format("15:04:05.000"))
	fmt.Fprintf(w, "demo.visits = %d\n", s.Counters()["demo.visits"])

	observability.Emit(ctx, obs, EventInstanceShared, observability.LevelInfo, "singleton.Settings",
		map[string]any{"callers": callers, "constructed": settings.Initialized()})
	return nil
}
