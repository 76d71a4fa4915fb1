package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/patterns/structural/proxy"
)

var originAddr string

var originCmd = &cobra.Command{
	Use:   "origin",
	Short: "Serve the proxy demo's origin over connect RPC",
	Long: `Serves the proxy demo's documents at ` + proxy.FetchProcedure + `
until interrupted. Point a proxy.RemoteOrigin at http://<addr> to fetch them.`,
	Args: cobra.NoArgs,
	RunE: serveOrigin,
}

func init() {
	originCmd.Flags().StringVar(&originAddr, "addr", ":8080", "Listen address")
}

func serveOrigin(cmd *cobra.Command, args []string) error {
	mux := http.NewServeMux()
	mux.Handle(proxy.NewOriginHandler(proxy.DemoOrigin()))

	server := &http.Server{
		Addr:              originAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("origin listening", "addr", originAddr, "procedure", proxy.FetchProcedure)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	logger.Info("origin shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
