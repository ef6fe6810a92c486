package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/ro-transfer-hub/internal/app"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only HTTP API over the base table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				if addr != "" {
					a.Config.HTTPAddr = addr
				}
				srv, err := a.NewHTTPServer()
				if err != nil {
					return err
				}
				return serveUntilDone(ctx, a, srv)
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "override HTTP_ADDR")
	return cmd
}

func serveUntilDone(ctx context.Context, a *app.App, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("http server starting", "addr", srv.Addr, "store", a.Config.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	a.Logger.Info("http server stopped")
	return nil
}

func migrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <" + strings.Join(app.MigrationCommands, "|") + "> [arg]",
		Short:     "Run postgres schema migrations",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: app.MigrationCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRuntime(opts, "migration")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			status, err := app.RunMigration(cfg, logger, args[0], args[1:])
			if err != nil {
				return err
			}
			if status.None {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "version: none")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "version: %d\ndirty: %t\n", status.Version, status.Dirty)
			return err
		},
	}
}
