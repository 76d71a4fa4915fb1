package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tailored-agentic-units/patterns/observability"
)

const (
	EventDemoStart    observability.EventType = "catalog.demo.start"
	EventDemoComplete observability.EventType = "catalog.demo.complete"
	EventDemoError    observability.EventType = "catalog.demo.error"
)

// Runner executes demos from a Registry against an Env.
type Runner struct {
	registry *Registry
	env      *Env
}

// NewRunner fills in a default Config when env has none.
func NewRunner(registry *Registry, env *Env) *Runner {
	if env.Config == nil {
		cfg := DefaultConfig()
		env.Config = &cfg
	}
	return &Runner{registry: registry, env: env}
}

// Run executes the named demos in order. With no names it falls back to
// Config.Demos, then to every demo in Config.Category (or all demos).
// Unknown names are reported before anything runs. A failing demo does not
// stop the others; all failures are joined in the returned error.
func (r *Runner) Run(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		names = r.env.Config.Demos
	}

	var category Category
	if r.env.Config.Category != "" {
		c, err := ParseCategory(r.env.Config.Category)
		if err != nil {
			return err
		}
		category = c
	}

	demos, err := r.registry.Select(names, category)
	if err != nil {
		return err
	}

	var errs []error
	for _, d := range demos {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := r.runOne(ctx, d); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Runner) runOne(ctx context.Context, d Demo) error {
	r.env.Printf("== %s (%s) ==\n%s\n\n", d.Name, d.Category, d.Summary)

	observability.Emit(ctx, r.env.Observer, EventDemoStart, observability.LevelInfo, "catalog.Runner",
		map[string]any{"demo": d.Name, "category": string(d.Category)})

	start := time.Now()
	err := d.Run(ctx, r.env)
	elapsed := time.Since(start)

	if err != nil {
		observability.Emit(ctx, r.env.Observer, EventDemoError, observability.LevelError, "catalog.Runner",
			map[string]any{"demo": d.Name, "error": err.Error(), "duration": elapsed.String()})
		r.env.Printf("\n%s failed: %v\n\n", d.Name, err)
		return err
	}

	observability.Emit(ctx, r.env.Observer, EventDemoComplete, observability.LevelInfo, "catalog.Runner",
		map[string]any{"demo": d.Name, "duration": elapsed.String()})
	r.env.Printf("\n")
	return nil
}
