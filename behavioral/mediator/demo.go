package mediator

import (
	"context"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

// Demo runs a short conversation in a room with direct, broadcast and
// topic messages, then prints each inbox.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	room := NewRoom("lobby", obs)

	people := make(map[string]*Participant)
	for _, name := range []string{"alice", "bob", "carol"} {
		p, err := room.Join(ctx, name)
		if err != nil {
			return err
		}
		people[name] = p
	}

	if err := people["bob"].Subscribe("go"); err != nil {
		return err
	}
	if err := people["carol"].Subscribe("go"); err != nil {
		return err
	}

	steps := []func() error{
		func() error { return people["alice"].Broadcast(ctx, "hello everyone") },
		func() error { return people["bob"].Send(ctx, "alice", "hi alice") },
		func() error { return people["carol"].Publish(ctx, "go", "generics are neat") },
		func() error { return people["alice"].Send(ctx, "dave", "are you there?") },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			fmt.Fprintf(w, "route failed: %v\n", err)
		}
	}

	for _, name := range room.Members() {
		fmt.Fprintf(w, "%s's inbox:\n", name)
		for _, m := range people[name].Inbox() {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}

	m := room.Metrics()
	fmt.Fprintf(w, "participants=%d routed=%d delivered=%d\n", m.Participants, m.Routed, m.Delivered)
	return nil
}
