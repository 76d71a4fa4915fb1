package mediator

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies how a message is routed.
type Kind string

const (
	KindDirect    Kind = "direct"
	KindBroadcast Kind = "broadcast"
	KindTopic     Kind = "topic"
)

// Message is what participants exchange. IDs are UUIDv7 and therefore sort
// by creation time.
type Message struct {
	ID        string
	Kind      Kind
	From      string
	To        string
	Topic     string
	Text      string
	Timestamp time.Time
}

func (m Message) String() string {
	switch m.Kind {
	case KindBroadcast:
		return fmt.Sprintf("%s -> *: %s", m.From, m.Text)
	case KindTopic:
		return fmt.Sprintf("%s -> #%s: %s", m.From, m.Topic, m.Text)
	default:
		return fmt.Sprintf("%s -> %s: %s", m.From, m.To, m.Text)
	}
}

// MessageBuilder assembles a Message fluently.
type MessageBuilder struct {
	message Message
}

// NewMessage starts a broadcast message; To or Topic narrow the routing.
func NewMessage(from, text string) *MessageBuilder {
	return &MessageBuilder{
		message: Message{
			ID:        uuid.Must(uuid.NewV7()).String(),
			Kind:      KindBroadcast,
			From:      from,
			Text:      text,
			Timestamp: time.Now(),
		},
	}
}

// To addresses the message to a single participant.
func (mb *MessageBuilder) To(name string) *MessageBuilder {
	mb.message.Kind = KindDirect
	mb.message.To = name
	mb.message.Topic = ""
	return mb
}

// Topic publishes the message to a topic's subscribers.
func (mb *MessageBuilder) Topic(topic string) *MessageBuilder {
	mb.message.Kind = KindTopic
	mb.message.Topic = topic
	mb.message.To = ""
	return mb
}

// Build returns the message.
func (mb *MessageBuilder) Build() Message {
	return mb.message
}
