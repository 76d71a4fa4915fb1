package mediator

import "github.com/tailored-agentic-units/patterns/observability"

const (
	EventJoin    observability.EventType = "mediator.join"
	EventLeave   observability.EventType = "mediator.leave"
	EventRoute   observability.EventType = "mediator.route"
	EventNoRoute observability.EventType = "mediator.noroute"
)
