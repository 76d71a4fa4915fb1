package factory

import (
	"context"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

const (
	EventCandyMade     observability.EventType = "factory.candy.made"
	EventCandyRejected observability.EventType = "factory.candy.rejected"
)

// Demo walks through the simple factory (including an invalid kind), the
// factory method, and every registered abstract factory.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	fmt.Fprintln(w, "simple factory:")
	for _, kind := range []Kind{KindChocolate, KindGummy, KindLollipop, "licorice"} {
		candy, err := NewCandy(kind)
		if err != nil {
			fmt.Fprintf(w, "  %-10s error: %v\n", kind, err)
			observability.Emit(ctx, obs, EventCandyRejected, observability.LevelWarning, "factory.NewCandy",
				map[string]any{"kind": string(kind)})
			continue
		}
		fmt.Fprintf(w, "  %-10s %s (%d kcal)\n", kind, candy.Name(), candy.Calories())
		observability.Emit(ctx, obs, EventCandyMade, observability.LevelVerbose, "factory.NewCandy",
			map[string]any{"kind": string(kind)})
	}

	fmt.Fprintln(w, "factory method:")
	for _, shop := range []Confectioner{ChocolatierShop{}, GummyShop{SugarFree: true}} {
		box := Sell(shop, 3)
		fmt.Fprintf(w, "  %T sold %d x %s, %d kcal total\n", shop, len(box.Candies), box.Candies[0].Name(), box.Calories)
	}

	fmt.Fprintln(w, "abstract factory:")
	for _, name := range Names() {
		f, err := Lookup(name)
		if err != nil {
			return err
		}
		wrapper := f.Wrapper()
		for _, candy := range []Candy{f.Chocolate(), f.Gummy()} {
			if !wrapper.Fits(candy) {
				return fmt.Errorf("factory %s produced a mismatched family: %s in %s", name, candy.Name(), wrapper.Material())
			}
			fmt.Fprintf(w, "  %-10s %s wrapped in %s\n", name, candy.Name(), wrapper.Material())
		}
	}
	return nil
}
