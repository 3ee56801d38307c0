package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/briefly/internal/bootstrap"
	"github.com/at-ishikawa/briefly/internal/cli"
)

func newStreakCommand() *cobra.Command {
	streakCommand := &cobra.Command{
		Use:   "streak",
		Short: "Show or change the study streak",
	}

	streakCommand.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the study streak",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
					current, found := services.Streak.Get(ctx)
					cli.NewPrinter(cmd.OutOrStdout()).Streak(current, found)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "record",
			Short: "Count today as a study day",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
					current, err := services.Streak.RecordActivityNow(ctx)
					if err != nil {
						return err
					}
					cli.NewPrinter(cmd.OutOrStdout()).Streak(current, true)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Forget the study streak",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
					if err := services.Streak.Reset(ctx); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Study streak reset")
					return nil
				})
			},
		},
	)
	return streakCommand
}

func newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, recent activity and study sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				cli.NewPrinter(cmd.OutOrStdout()).Dashboard(services.Dashboard.Get(ctx))
				return nil
			})
		},
	}
}
