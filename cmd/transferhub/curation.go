package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/ro-transfer-hub/internal/app"
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ro-transfer-hub/internal/usecase"
)

func reviewCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Manual curation of club seasons no source could resolve",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "export",
			Short: "Write the manual review report",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
					items, err := a.Review.ExportReport(ctx)
					if err != nil {
						return err
					}
					return renderReviewItems(cmd.OutOrStdout(), opts.output, items)
				})
			},
		},
		&cobra.Command{
			Use:   "apply",
			Short: "Apply the filled-in review report to the base table",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
					summary, err := a.Review.ApplyReview(ctx)
					if err != nil {
						return err
					}
					return renderRunSummary(cmd.OutOrStdout(), opts.output, summary)
				})
			},
		},
	)
	return cmd
}

func auditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "List canonical club names and near-duplicate pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				audit, err := a.Audit.Audit(ctx)
				if err != nil {
					return err
				}
				return renderAudit(cmd.OutOrStdout(), opts.output, audit)
			})
		},
	}
}

func consistencyCmd(opts *rootOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check that every club plays in one league per season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				conflicts, err := a.Review.Consistency(ctx)
				if err != nil {
					return err
				}
				if err := renderConflicts(cmd.OutOrStdout(), opts.output, conflicts); err != nil {
					return err
				}
				if strict && len(conflicts) > 0 {
					return fmt.Errorf("%w: %d club seasons have more than one league", usecase.ErrConflict, len(conflicts))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when conflicts exist")
	return cmd
}

func aliasesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Club name alias table",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Write the built-in alias table to the alias store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				n, err := a.Aliases.Export(ctx, memory.SeedAliases())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d aliases written\n", n)
				return err
			})
		},
	})
	return cmd
}
