package prototype

import (
	"context"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

const EventShapeSpawned observability.EventType = "prototype.shape.spawned"

// Demo registers two styled prototypes, spawns copies, mutates one copy and
// shows the prototype is unaffected.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	reg := NewRegistry()
	reg.Add("button", NewRectangle(0, 0, 120, 40, &Style{Fill: "blue", Stroke: "navy", Width: 1}, map[string]string{"role": "button"}))
	reg.Add("badge", NewCircle(0, 0, 12, &Style{Fill: "red", Stroke: "white", Width: 2}, map[string]string{"role": "badge"}))

	for _, key := range reg.Keys() {
		shape, err := reg.Spawn(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-6s %s area=%.1f id=%s\n", key, shape.Describe(), shape.Area(), shape.ID())
		observability.Emit(ctx, obs, EventShapeSpawned, observability.LevelVerbose, "prototype.Registry",
			map[string]any{"key": key, "id": shape.ID()})
	}

	shape, err := reg.Spawn("button")
	if err != nil {
		return err
	}
	button := shape.(*Rectangle)
	button.Style.Fill = "green"
	button.Tags["state"] = "hover"

	fresh, err := reg.Spawn("button")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "mutated clone: %s tags=%v\n", button.Describe(), button.Tags)
	fmt.Fprintf(w, "fresh clone:   %s tags=%v\n", fresh.Describe(), fresh.(*Rectangle).Tags)

	if _, err := reg.Spawn("tooltip"); err != nil {
		fmt.Fprintf(w, "spawn tooltip: %v\n", err)
	}
	return nil
}
