package template

import (
	"context"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

const (
	demoCSV = `name,amount
coffee,3.50
laptop,1299.99
desk,349
`
	demoJSON = `[{"name":"coffee","amount":3.5},{"name":"monitor","amount":219.9},{"name":"chair","amount":189}]`
	demoYAML = `
- name: coffee
  amount: 3.5
- name: keyboard
  amount: 89
- name: headset
  amount: 129.5
`
)

// Demo runs the same mining algorithm over CSV, JSON and YAML documents,
// once with the filter hook, and once on a malformed document.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	miners := []Miner{
		NewCSVMiner(FromString(demoCSV)),
		NewJSONMiner(FromString(demoJSON)),
		NewYAMLMiner(FromString(demoYAML)),
		WithFilter(NewCSVMiner(FromString(demoCSV)), func(r Record) bool { return r.Amount >= 100 }),
		NewJSONMiner(FromString(`{"name": "not an array"}`)),
	}

	for _, m := range miners {
		report, err := Mine(ctx, m, obs)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(w, report)
	}
	return nil
}
