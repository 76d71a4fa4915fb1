package mediator

import "sync/atomic"

// MetricsSnapshot is a point-in-time copy of room counters.
type MetricsSnapshot struct {
	Participants int64
	Routed       int64
	Delivered    int64
}

// Metrics tracks room activity with atomic counters.
type Metrics struct {
	participants atomic.Int64
	routed       atomic.Int64
	delivered    atomic.Int64
}

func (m *Metrics) recordParticipant(delta int) {
	m.participants.Add(int64(delta))
}

func (m *Metrics) recordRouted() {
	m.routed.Add(1)
}

func (m *Metrics) recordDelivered(n int) {
	m.delivered.Add(int64(n))
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Participants: m.participants.Load(),
		Routed:       m.routed.Load(),
		Delivered:    m.delivered.Load(),
	}
}
