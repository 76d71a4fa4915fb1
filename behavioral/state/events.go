package state

import "github.com/tailored-agentic-units/patterns/observability"

const (
	EventOrderCreated    observability.EventType = "order.created"
	EventOrderTransition observability.EventType = "order.transition"
	EventOrderRejected   observability.EventType = "order.rejected"
)
