// Command transferhub runs the Romanian transfer pipeline.
//
// Usage:
//
//	transferhub history
//	transferhub build
//	transferhub rescue
//	transferhub enrich
//	transferhub review export
//	transferhub review apply
//	transferhub audit
//	transferhub consistency
//	transferhub aliases export
//	transferhub summary
//	transferhub serve
//	transferhub migrate up
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/ro-transfer-hub/internal/app"
	"github.com/riskibarqy/ro-transfer-hub/internal/config"
	"github.com/riskibarqy/ro-transfer-hub/internal/observability"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

type rootOptions struct {
	envFile  string
	logLevel string
	output   string
}

func main() {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "transferhub",
		Short:         "Romanian football transfer reconciliation pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.envFile == "" {
				return nil
			}
			if err := godotenv.Load(opts.envFile); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("load %s: %w", opts.envFile, err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable, "result format: table or json")

	root.AddCommand(
		historyCmd(opts),
		buildCmd(opts),
		rescueCmd(opts),
		enrichCmd(opts),
		reviewCmd(opts),
		auditCmd(opts),
		consistencyCmd(opts),
		aliasesCmd(opts),
		summaryCmd(opts),
		serveCmd(opts),
		migrateCmd(opts),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadRuntime reads config and builds the logger used by every command.
func loadRuntime(opts *rootOptions, component string) (config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = logging.ParseLevel(opts.logLevel)
	}
	logger := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		Format:    logging.FormatForEnv(cfg.AppEnv),
		Output:    os.Stderr,
		Component: component,
	})
	logging.SetDefault(logger)
	return cfg, logger, nil
}

// withApp wires the application for one command and tears it down after fn.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, a *app.App) error) error {
	cfg, logger, err := loadRuntime(opts, cmd.Name())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	stopTelemetry, err := observability.Start(cfg, logger)
	if err != nil {
		return err
	}
	defer stopTelemetry(context.Background())

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close app failed", "error", err)
		}
	}()

	return fn(ctx, a)
}
