package catalog

import (
	"context"
	"io"

	"github.com/tailored-agentic-units/patterns/behavioral/chain"
	"github.com/tailored-agentic-units/patterns/behavioral/command"
	"github.com/tailored-agentic-units/patterns/behavioral/interpreter"
	"github.com/tailored-agentic-units/patterns/behavioral/iterator"
	"github.com/tailored-agentic-units/patterns/behavioral/mediator"
	"github.com/tailored-agentic-units/patterns/behavioral/memento"
	"github.com/tailored-agentic-units/patterns/behavioral/observer"
	"github.com/tailored-agentic-units/patterns/behavioral/state"
	"github.com/tailored-agentic-units/patterns/behavioral/strategy"
	"github.com/tailored-agentic-units/patterns/behavioral/template"
	"github.com/tailored-agentic-units/patterns/behavioral/visitor"
	"github.com/tailored-agentic-units/patterns/creational/builder"
	"github.com/tailored-agentic-units/patterns/creational/factory"
	"github.com/tailored-agentic-units/patterns/creational/prototype"
	"github.com/tailored-agentic-units/patterns/creational/singleton"
	"github.com/tailored-agentic-units/patterns/observability"
	"github.com/tailored-agentic-units/patterns/structural/proxy"
)

// simple adapts the common Demo(ctx, w, obs) signature.
func simple(run func(context.Context, io.Writer, observability.Observer) error) func(context.Context, *Env) error {
	return func(ctx context.Context, env *Env) error {
		return run(ctx, env.Out, env.Observer)
	}
}

var builtins = []Demo{
	{
		Name:     "builder",
		Category: Creational,
		Summary:  "Assemble houses step by step; a director encodes standard recipes.",
		Run:      simple(builder.Demo),
	},
	{
		Name:     "factory",
		Category: Creational,
		Summary:  "Simple factory, factory method and abstract factory for candy.",
		Run:      simple(factory.Demo),
	},
	{
		Name:     "singleton",
		Category: Creational,
		Summary:  "One lazily created settings instance shared by many goroutines.",
		Run:      simple(singleton.Demo),
	},
	{
		Name:     "prototype",
		Category: Creational,
		Summary:  "Clone registered shape prototypes instead of constructing them.",
		Run:      simple(prototype.Demo),
	},
	{
		Name:     "observer",
		Category: Behavioral,
		Summary:  "A weather station notifies subscribed displays of new readings.",
		Run: func(ctx context.Context, env *Env) error {
			return observer.Demo(ctx, env.Out, env.Observer, env.Config.Concurrency)
		},
	},
	{
		Name:     "strategy",
		Category: Behavioral,
		Summary:  "Swap discount algorithms on a shopping cart at runtime.",
		Run:      simple(strategy.Demo),
	},
	{
		Name:     "state",
		Category: Behavioral,
		Summary:  "An order moves through pending, paid, shipped and delivered.",
		Run:      simple(state.Demo),
	},
	{
		Name:     "command",
		Category: Behavioral,
		Summary:  "Calculator operations as objects with undo, redo and macros.",
		Run:      simple(command.Demo),
	},
	{
		Name:     "memento",
		Category: Behavioral,
		Summary:  "Snapshot and restore a text editor through a caretaker.",
		Run: func(ctx context.Context, env *Env) error {
			return memento.Demo(ctx, env.Out, env.Observer, env.Config.History)
		},
	},
	{
		Name:     "mediator",
		Category: Behavioral,
		Summary:  "Chat participants talk only through the room that routes messages.",
		Run:      simple(mediator.Demo),
	},
	{
		Name:     "visitor",
		Category: Behavioral,
		Summary:  "Area, perimeter and description as visitors over shapes.",
		Run:      simple(visitor.Demo),
	},
	{
		Name:     "iterator",
		Category: Behavioral,
		Summary:  "Pull iterators and range-over-func over a list and a book tree.",
		Run:      simple(iterator.Demo),
	},
	{
		Name:     "interpreter",
		Category: Behavioral,
		Summary:  "Parse and evaluate arithmetic expressions with variables.",
		Run:      simple(interpreter.Demo),
	},
	{
		Name:     "chain",
		Category: Behavioral,
		Summary:  "Expenses escalate through team lead, manager and director.",
		Run:      simple(chain.Demo),
	},
	{
		Name:     "template",
		Category: Behavioral,
		Summary:  "One mining algorithm over CSV, JSON and YAML documents.",
		Run:      simple(template.Demo),
	},
	{
		Name:     "proxy",
		Category: Structural,
		Summary:  "A caching CDN edge in front of an origin served over connect RPC.",
		Run: func(ctx context.Context, env *Env) error {
			return proxy.Demo(ctx, env.Out, env.Observer, &env.Config.Proxy)
		},
	},
}

// Builtin returns a new Registry holding every demo in the repository.
func Builtin() *Registry {
	r := NewRegistry()
	for _, d := range builtins {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}
