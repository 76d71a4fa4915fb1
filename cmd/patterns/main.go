package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/patterns/catalog"
	"github.com/tailored-agentic-units/patterns/observability"
)

var (
	configFile string
	verbose    bool
	trace      bool

	cfg    *catalog.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Runnable catalogue of classic design patterns",
	Long: `patterns runs small, self-contained demonstrations of classic design
patterns: creational (builder, factory, singleton, prototype), behavioral
(observer, strategy, state, command, memento, mediator, visitor, iterator,
interpreter, chain, template) and structural (proxy).

Examples:
  patterns list --category behavioral
  patterns run builder proxy
  patterns run --config patterns.yaml --trace`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

		if configFile == "" {
			defaults := catalog.DefaultConfig()
			cfg = &defaults
			return nil
		}

		loaded, err := catalog.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("config loaded", "file", configFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "Print a summary of emitted events after running")

	rootCmd.AddCommand(listCmd, runCmd, originCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
