package mediator_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tailored-agentic-units/patterns/behavioral/mediator"
	"github.com/tailored-agentic-units/patterns/observability"
)

func join(t *testing.T, room *mediator.ChatRoom, names ...string) map[string]*mediator.Participant {
	t.Helper()
	out := make(map[string]*mediator.Participant, len(names))
	for _, name := range names {
		p, err := room.Join(context.Background(), name)
		if err != nil {
			t.Fatalf("Join(%q) error = %v", name, err)
		}
		out[name] = p
	}
	return out
}

func texts(msgs []mediator.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.String()
	}
	return out
}

func TestJoin_Validation(t *testing.T) {
	ctx := context.Background()
	room := mediator.NewRoom("test", nil)
	join(t, room, "alice")

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"duplicate", "alice", mediator.ErrDuplicateName},
		{"empty", "", mediator.ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := room.Join(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Join(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSend_Direct(t *testing.T) {
	ctx := context.Background()
	room := mediator.NewRoom("test", nil)
	p := join(t, room, "alice", "bob", "carol")

	if err := p["alice"].Send(ctx, "bob", "hi"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if diff := cmp.Diff([]string{"alice -> bob: hi"}, texts(p["bob"].Inbox())); diff != "" {
		t.Errorf("bob inbox mismatch (-want +got):\n%s", diff)
	}
	if len(p["carol"].Inbox()) != 0 {
		t.Error("carol must not see a direct message to bob")
	}
	if len(p["alice"].Inbox()) != 0 {
		t.Error("sender must not receive its own direct message")
	}
}

func TestSend_Errors(t *testing.T) {
	ctx := context.Background()
	room := mediator.NewRoom("test", nil)
	p := join(t, room, "alice", "bob")

	if err := p["alice"].Send(ctx, "dave", "hello?"); !errors.Is(err, mediator.ErrUnknownParticipant) {
		t.Errorf("Send to unknown error = %v, want ErrUnknownParticipant", err)
	}
	if err := p["alice"].Send(ctx, "alice", "me"); !errors.Is(err, mediator.ErrSelfMessage) {
		t.Errorf("Send to self error = %v, want ErrSelfMessage", err)
	}

	if err := room.Leave(ctx, "bob"); err != nil {
		t.Fatalf("Leave() error = %v", err)
	}
	if err := p["bob"].Broadcast(ctx, "still here"); !errors.Is(err, mediator.ErrNotMember) {
		t.Errorf("Broadcast after leave error = %v, want ErrNotMember", err)
	}
	if err := room.Leave(ctx, "bob"); !errors.Is(err, mediator.ErrUnknownParticipant) {
		t.Errorf("second Leave() error = %v, want ErrUnknownParticipant", err)
	}
}

func TestParticipant_StaleHandleAfterRejoin(t *testing.T) {
	ctx := context.Background()
	room := mediator.NewRoom("test", nil)
	p := join(t, room, "alice", "bob")
	stale := p["alice"]

	if err := room.Leave(ctx, "alice"); err != nil {
		t.Fatalf("Leave() error = %v", err)
	}
	fresh := join(t, room, "alice")["alice"]

	if err := stale.Send(ctx, "bob", "impostor"); !errors.Is(err, mediator.ErrNotMember) {
		t.Errorf("Send from old handle error = %v, want ErrNotMember", err)
	}
	if err := stale.Broadcast(ctx, "impostor"); !errors.Is(err, mediator.ErrNotMember) {
		t.Errorf("Broadcast from old handle error = %v, want ErrNotMember", err)
	}
	if err := stale.Subscribe("go"); !errors.Is(err, mediator.ErrNotMember) {
		t.Errorf("Subscribe from old handle error = %v, want ErrNotMember", err)
	}
	if got := len(p["bob"].Inbox()); got != 0 {
		t.Errorf("bob inbox = %d, want 0", got)
	}

	if err := fresh.Send(ctx, "bob", "back"); err != nil {
		t.Fatalf("Send from new handle error = %v", err)
	}
	if diff := cmp.Diff([]string{"alice -> bob: back"}, texts(p["bob"].Inbox())); diff != "" {
		t.Errorf("bob inbox mismatch (-want +got):\n%s", diff)
	}
}

func TestBroadcast_ExcludesSender(t *testing.T) {
	ctx := context.Background()
	room := mediator.NewRoom("test", nil)
	p := join(t, room, "alice", "bob", "carol")

	if err := p["bob"].Broadcast(ctx, "lunch?"); err != nil {
		t.Fatalf("Broadcast() error = %v", err)
	}

	for _, name := range []string{"alice", "carol"} {
		if got := len(p[name].Inbox()); got != 1 {
			t.Errorf("%s inbox = %d, want 1", name, got)
		}
	}
	if got := len(p["bob"].Inbox()); got != 0 {
		t.Errorf("sender inbox = %d, want 0", got)
	}

	m := room.Metrics()
	if m.Routed != 1 || m.Delivered != 2 || m.Participants != 3 {
		t.Errorf("Metrics() = %+v, want routed=1 delivered=2 participants=3", m)
	}
}

func TestPublish_Topic(t *testing.T) {
	ctx := context.Background()
	room := mediator.NewRoom("test", nil)
	p := join(t, room, "alice", "bob", "carol")

	for _, name := range []string{"alice", "bob"} {
		if err := p[name].Subscribe("go"); err != nil {
			t.Fatalf("Subscribe() error = %v", err)
		}
	}

	if err := p["alice"].Publish(ctx, "go", "1.25 is out"); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if diff := cmp.Diff([]string{"alice -> #go: 1.25 is out"}, texts(p["bob"].Inbox())); diff != "" {
		t.Errorf("bob inbox mismatch (-want +got):\n%s", diff)
	}
	if len(p["carol"].Inbox()) != 0 {
		t.Error("non-subscriber received topic message")
	}

	if err := room.Leave(ctx, "bob"); err != nil {
		t.Fatalf("Leave() error = %v", err)
	}
	if err := p["alice"].Publish(ctx, "go", "anyone?"); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if got := len(p["bob"].Inbox()); got != 1 {
		t.Errorf("departed subscriber inbox = %d, want 1", got)
	}
}

func TestMessageBuilder(t *testing.T) {
	direct := mediator.NewMessage("a", "x").To("b").Build()
	if direct.Kind != mediator.KindDirect || direct.To != "b" {
		t.Errorf("direct = %+v", direct)
	}

	topic := mediator.NewMessage("a", "x").To("b").Topic("t").Build()
	if topic.Kind != mediator.KindTopic || topic.To != "" || topic.Topic != "t" {
		t.Errorf("topic = %+v", topic)
	}

	other := mediator.NewMessage("a", "x").Build()
	if other.ID == direct.ID || other.ID == "" {
		t.Error("messages must get distinct non-empty ids")
	}
	if other.Kind != mediator.KindBroadcast {
		t.Errorf("default kind = %s, want broadcast", other.Kind)
	}
}

func TestRoute_Concurrent(t *testing.T) {
	ctx := context.Background()
	room := mediator.NewRoom("test", nil)
	p := join(t, room, "hub", "a", "b", "c")

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b", "c"} {
		wg.Add(1)
		go func(sender *mediator.Participant) {
			defer wg.Done()
			for range 50 {
				_ = sender.Send(ctx, "hub", "ping")
			}
		}(p[name])
	}
	wg.Wait()

	if got := len(p["hub"].Inbox()); got != 150 {
		t.Errorf("hub inbox = %d, want 150", got)
	}
}

func TestRoute_Events(t *testing.T) {
	ctx := context.Background()
	rec := observability.NewRecorder()
	room := mediator.NewRoom("test", rec)
	p := join(t, room, "alice", "bob")

	_ = p["alice"].Send(ctx, "bob", "hi")
	_ = p["alice"].Send(ctx, "nobody", "hi")

	if rec.Count(mediator.EventJoin) != 2 {
		t.Errorf("join events = %d, want 2", rec.Count(mediator.EventJoin))
	}
	if rec.Count(mediator.EventRoute) != 1 {
		t.Errorf("route events = %d, want 1", rec.Count(mediator.EventRoute))
	}
	if rec.Count(mediator.EventNoRoute) != 1 {
		t.Errorf("noroute events = %d, want 1", rec.Count(mediator.EventNoRoute))
	}
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := mediator.Demo(context.Background(), &buf, nil); err != nil {
		t.Fatalf("Demo() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"carol -> #go: generics are neat", "route failed", "participants=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
