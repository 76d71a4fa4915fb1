package mediator

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tailored-agentic-units/patterns/observability"
)

// Participant is a colleague in the mediator pattern. Its only link to the
// rest of the room is the room itself.
type Participant struct {
	name  string
	room  *ChatRoom
	inbox []Message
	mu    sync.Mutex
}

// Name returns the participant's unique name in the room.
func (p *Participant) Name() string { return p.name }

// Send delivers a direct message through the room.
func (p *Participant) Send(ctx context.Context, to, text string) error {
	return p.room.route(ctx, p, NewMessage(p.name, text).To(to).Build())
}

// Broadcast delivers text to everyone else in the room.
func (p *Participant) Broadcast(ctx context.Context, text string) error {
	return p.room.route(ctx, p, NewMessage(p.name, text).Build())
}

// Publish delivers text to the other subscribers of topic.
func (p *Participant) Publish(ctx context.Context, topic, text string) error {
	return p.room.route(ctx, p, NewMessage(p.name, text).Topic(topic).Build())
}

// Subscribe asks the room to forward messages published to topic.
func (p *Participant) Subscribe(topic string) error {
	return p.room.subscribe(p, topic)
}

// Inbox returns a copy of received messages, oldest first.
func (p *Participant) Inbox() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Message, len(p.inbox))
	copy(out, p.inbox)
	return out
}

func (p *Participant) receive(m Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inbox = append(p.inbox, m)
}

// ChatRoom is the mediator. Safe for concurrent use.
type ChatRoom struct {
	name          string
	participants  map[string]*Participant
	subscriptions map[string]map[string]*Participant
	metrics       Metrics
	observer      observability.Observer
	mu            sync.RWMutex
}

// NewRoom creates an empty room. obs may be nil.
func NewRoom(name string, obs observability.Observer) *ChatRoom {
	return &ChatRoom{
		name:          name,
		participants:  make(map[string]*Participant),
		subscriptions: make(map[string]map[string]*Participant),
		observer:      obs,
	}
}

// Join adds a participant under a unique name.
func (r *ChatRoom) Join(ctx context.Context, name string) (*Participant, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	r.mu.Lock()
	if _, exists := r.participants[name]; exists {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	p := &Participant{name: name, room: r}
	r.participants[name] = p
	r.mu.Unlock()

	r.metrics.recordParticipant(1)
	observability.Emit(ctx, r.observer, EventJoin, observability.LevelVerbose, "mediator.ChatRoom",
		map[string]any{"room": r.name, "participant": name})
	return p, nil
}

// Leave removes a participant and all of its subscriptions.
func (r *ChatRoom) Leave(ctx context.Context, name string) error {
	r.mu.Lock()
	if _, exists := r.participants[name]; !exists {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownParticipant, name)
	}
	delete(r.participants, name)
	for topic, subs := range r.subscriptions {
		delete(subs, name)
		if len(subs) == 0 {
			delete(r.subscriptions, topic)
		}
	}
	r.mu.Unlock()

	r.metrics.recordParticipant(-1)
	observability.Emit(ctx, r.observer, EventLeave, observability.LevelVerbose, "mediator.ChatRoom",
		map[string]any{"room": r.name, "participant": name})
	return nil
}

// Members lists participant names in sorted order.
func (r *ChatRoom) Members() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.participants))
	for name := range r.participants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Metrics returns a snapshot of the room counters.
func (r *ChatRoom) Metrics() MetricsSnapshot {
	return r.metrics.Snapshot()
}

// Route delivers m according to its Kind. The sender must be a member;
// direct messages need a member recipient other than the sender. Broadcast
// and topic messages never echo back to the sender.
func (r *ChatRoom) Route(ctx context.Context, m Message) error {
	return r.route(ctx, nil, m)
}

// route is Route with an optional sender handle. A non-nil sender must be
// the participant currently registered under m.From, so a handle kept past
// Leave cannot speak for someone who later rejoins under the same name.
func (r *ChatRoom) route(ctx context.Context, sender *Participant, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	recipients, err := r.recipients(sender, m)
	if err != nil {
		observability.Emit(ctx, r.observer, EventNoRoute, observability.LevelWarning, "mediator.ChatRoom",
			map[string]any{"room": r.name, "from": m.From, "kind": string(m.Kind), "error": err.Error()})
		return err
	}

	for _, p := range recipients {
		p.receive(m)
	}

	r.metrics.recordRouted()
	r.metrics.recordDelivered(len(recipients))
	observability.Emit(ctx, r.observer, EventRoute, observability.LevelVerbose, "mediator.ChatRoom",
		map[string]any{"room": r.name, "from": m.From, "kind": string(m.Kind), "recipients": len(recipients)})
	return nil
}

func (r *ChatRoom) recipients(sender *Participant, m Message) ([]*Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, member := r.participants[m.From]; !member || (sender != nil && p != sender) {
		return nil, fmt.Errorf("%w: %s", ErrNotMember, m.From)
	}

	switch m.Kind {
	case KindDirect:
		if m.To == m.From {
			return nil, ErrSelfMessage
		}
		p, exists := r.participants[m.To]
		if !exists {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParticipant, m.To)
		}
		return []*Participant{p}, nil

	case KindTopic:
		return others(r.subscriptions[m.Topic], m.From), nil

	default:
		return others(r.participants, m.From), nil
	}
}

func (r *ChatRoom) subscribe(p *Participant, topic string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.participants[p.name] != p {
		return fmt.Errorf("%w: %s", ErrNotMember, p.name)
	}
	if r.subscriptions[topic] == nil {
		r.subscriptions[topic] = make(map[string]*Participant)
	}
	r.subscriptions[topic][p.name] = p
	return nil
}

// others returns members except the sender, sorted by name so delivery
// order is deterministic.
func others(members map[string]*Participant, sender string) []*Participant {
	out := make([]*Participant, 0, len(members))
	for name, p := range members {
		if name != sender {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
