// Package catalog is the common entry list for the pattern demos.
//
// Every pattern package is self-contained and knows nothing about the
// others; catalog gives each one a name, a category and a one-line summary,
// and runs any selection of them against a shared Env (output writer,
// observer, configuration).
//
// Builtin returns a Registry holding every demo in the repository:
//
//	reg := catalog.Builtin()
//	env := &catalog.Env{Out: os.Stdout, Observer: observability.NoOpObserver{}}
//	err := catalog.NewRunner(reg, env).Run(ctx, "builder", "proxy")
//
// # Configuration
//
// Config is loaded from JSON or YAML (chosen by file extension), merged
// over DefaultConfig. Zero values never override defaults.
//
// # Failures
//
// A failing demo does not stop the run. Runner.Run reports every failure
// joined with errors.Join, each wrapped with its demo name.
package catalog
