package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/patterns/catalog"
	"github.com/tailored-agentic-units/patterns/observability"
)

var runCmd = &cobra.Command{
	Use:   "run [name...]",
	Short: "Run demos by name (all when none are given)",
	Long: `Runs the named demos in the order given. Without names, runs the demos
listed in the config file, or every demo (optionally narrowed by the
config's category). A failing demo does not stop the others.`,
	RunE: runDemos,
}

func runDemos(cmd *cobra.Command, args []string) error {
	obs, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return err
	}

	var recorder *observability.Recorder
	if trace {
		recorder = observability.NewRecorder()
		obs = observability.NewMultiObserver(obs, recorder)
	}

	env := &catalog.Env{
		Out:      cmd.OutOrStdout(),
		Observer: obs,
		Config:   cfg,
	}

	logger.Info("running demos", "requested", len(args), "observer", cfg.Observer)
	runErr := catalog.NewRunner(catalog.Builtin(), env).Run(cmd.Context(), args...)

	if recorder != nil {
		printTrace(cmd, recorder)
	}
	return runErr
}

func printTrace(cmd *cobra.Command, rec *observability.Recorder) {
	counts := make(map[observability.EventType]int)
	for _, t := range rec.Types() {
		counts[t]++
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)

	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "trace: %d events\n", len(rec.Events()))
	for _, t := range types {
		fmt.Fprintf(out, "  %-28s %d\n", t, counts[observability.EventType(t)])
	}
}
