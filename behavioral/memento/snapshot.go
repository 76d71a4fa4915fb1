package memento

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Snapshot is the memento. Its fields are unexported so only the Editor
// can read what it captured; everyone else sees identity and time.
type Snapshot struct {
	id      string
	content string
	cursor  int
	takenAt time.Time
}

// ID uniquely identifies the snapshot.
func (s Snapshot) ID() string { return s.id }

// TakenAt is when the snapshot was captured.
func (s Snapshot) TakenAt() time.Time { return s.takenAt }

// Encode serializes the snapshot as a protobuf Struct.
func (s Snapshot) Encode() ([]byte, error) {
	msg, err := structpb.NewStruct(map[string]any{
		"id":       s.id,
		"content":  s.content,
		"cursor":   s.cursor,
		"taken_at": s.takenAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return proto.Marshal(msg)
}

// DecodeSnapshot is the inverse of Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var msg structpb.Struct
	if err := proto.Unmarshal(data, &msg); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	fields := msg.GetFields()
	id := fields["id"].GetStringValue()
	if id == "" {
		return Snapshot{}, fmt.Errorf("%w: missing id", ErrCorruptSnapshot)
	}

	takenAt, err := time.Parse(time.RFC3339Nano, fields["taken_at"].GetStringValue())
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: taken_at: %v", ErrCorruptSnapshot, err)
	}

	return Snapshot{
		id:      id,
		content: fields["content"].GetStringValue(),
		cursor:  int(fields["cursor"].GetNumberValue()),
		takenAt: takenAt,
	}, nil
}
