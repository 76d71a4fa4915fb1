package builder

import (
	"context"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

// EventHouseBuilt is emitted by Demo for every house it builds.
const EventHouseBuilt observability.EventType = "builder.house.built"

// Demo builds a custom house, then two houses from Director recipes, and
// shows that an incomplete builder is rejected.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	var director Director
	b := New()

	custom := New().
		Foundation(FoundationSlab).
		Walls(6).
		Doors(2).
		Windows(8).
		Roof(RoofGable).
		WithGarage()

	recipes := []struct {
		name    string
		builder *Builder
	}{
		{"custom", custom},
		{"cabin", director.Cabin(b)},
	}

	for _, r := range recipes {
		house, err := r.builder.Build()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-6s %s\n", r.name, house)
		observability.Emit(ctx, obs, EventHouseBuilt, observability.LevelInfo, "builder.Builder",
			map[string]any{"recipe": r.name, "floors": house.Floors})
	}

	villa, err := director.Villa(b).Build()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-6s %s\n", "villa", villa)
	observability.Emit(ctx, obs, EventHouseBuilt, observability.LevelInfo, "builder.Builder",
		map[string]any{"recipe": "villa", "floors": villa.Floors})

	if _, err := New().Walls(2).Build(); err != nil {
		fmt.Fprintf(w, "rejected: %v\n", err)
	}
	return nil
}
