package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/coopcast/flocktree/internal/api"
	"github.com/coopcast/flocktree/internal/source"
	flockerrors "github.com/coopcast/flocktree/pkg/errors"
)

// shutdownTimeout bounds how long in-flight requests may take after a
// shutdown signal.
const shutdownTimeout = 5 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	watch   bool
	noCache bool
}

// serveCommand creates the serve command. The GEDCOM file comes from the
// argument or from server.source in the configuration file.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [file.ged]",
		Short: "Serve charts of a GEDCOM file over HTTP",
		Long: `Serve loads a GEDCOM file and answers chart requests for any viewport.
With --watch (the default) the file is reloaded whenever it changes; a
reload that fails keeps serving the last good dataset.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("addr") {
				opts.addr = c.cfg.Server.Addr
			}
			if !flags.Changed("watch") {
				opts.watch = c.cfg.Server.Watch
			}

			path := c.cfg.Server.Source
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return flockerrors.New(flockerrors.ErrCodeInvalidInput, "no GEDCOM file given (pass one or set server.source)")
			}
			return c.runServe(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, localhost:8080)")
	cmd.Flags().BoolVar(&opts.watch, "watch", true, "reload the file when it changes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path string, opts serveOpts) error {
	runner, err := c.newServerRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	store := source.New(path, c.Logger)
	if err := store.Load(ctx); err != nil {
		if !opts.watch {
			return err
		}
		c.Logger.Warn("initial load failed, waiting for a valid file", "path", path, "error", err)
	}

	httpServer := &http.Server{
		Addr:              opts.addr,
		Handler:           api.NewServer(store, runner, c.Logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	if opts.watch {
		g.Go(func() error {
			return store.Watch(gCtx)
		})
	}

	g.Go(func() error {
		printSuccess("Serving %s", store.Path())
		printKeyValue("Address", "http://"+opts.addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
