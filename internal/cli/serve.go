package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/LGimbel/boggle-solver/internal/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string // listen address (config default if empty)
	dictionary string // word list path (config default if empty)
	noCache    bool   // disable the solve-result cache
}

// serveCommand creates the serve command, which runs the HTTP solve API.
// The word list is loaded once at startup and held in memory for the life
// of the process.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP solve API",
		Long: `Run an HTTP server exposing the solver.

Endpoints:
  GET  /healthz        liveness and dictionary size
  POST /api/v1/solve   solve a board ({"rows": ["srps", ...]})`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().StringVarP(&opts.dictionary, "dictionary", "d", "", "word list path (one word per line)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the solve-result cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	addr := opts.addr
	if addr == "" {
		addr = c.Config.Server.Addr
	}
	dictPath := opts.dictionary
	if dictPath == "" {
		dictPath = c.Config.Dictionary
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	dict, err := runner.LoadDictionary(ctx, dictPath)
	if err != nil {
		return err
	}

	srv := server.New(runner, dict, c.Logger)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}
