package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/ro-transfer-hub/internal/app"
)

func historyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Harvest club league history from the configured competitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				summary, err := a.History.Harvest(ctx)
				if err != nil {
					return err
				}
				return renderRunSummary(cmd.OutOrStdout(), opts.output, summary)
			})
		},
	}
}

func buildCmd(opts *rootOptions) *cobra.Command {
	var resolveOnly bool
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Scrape every listed club and write the base transfer table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				run := a.Build.Build
				if resolveOnly {
					run = a.Build.Resolve
				}
				summary, err := run(ctx)
				if err != nil {
					return err
				}
				return renderRunSummary(cmd.OutOrStdout(), opts.output, summary)
			})
		},
	}
	cmd.Flags().BoolVar(&resolveOnly, "resolve-only", false, "re-run the league lookup over the stored table without scraping")
	return cmd
}

func rescueCmd(opts *rootOptions) *cobra.Command {
	var showTasks bool
	cmd := &cobra.Command{
		Use:   "rescue",
		Short: "Back-fill missing leagues and countries from club season pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				summary, tasks, err := a.Rescue.Run(ctx)
				if err != nil {
					return err
				}
				if showTasks {
					if err := renderRescueTasks(cmd.OutOrStdout(), opts.output, tasks); err != nil {
						return err
					}
				}
				return renderRunSummary(cmd.OutOrStdout(), opts.output, summary)
			})
		},
	}
	cmd.Flags().BoolVar(&showTasks, "tasks", false, "print every club season task and its final state")
	return cmd
}

func enrichCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "enrich",
		Short: "Fill birth dates, citizenship and market values from player pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				summary, err := a.Enrichment.Run(ctx)
				if err != nil {
					return err
				}
				return renderRunSummary(cmd.OutOrStdout(), opts.output, summary)
			})
		},
	}
}

func summaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Report how much of the base table is resolved and enriched",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				coverage, err := a.Analytics.Coverage(ctx)
				if err != nil {
					return err
				}
				return renderCoverage(cmd.OutOrStdout(), opts.output, coverage)
			})
		},
	}
}
