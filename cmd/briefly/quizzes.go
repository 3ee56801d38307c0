package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/bootstrap"
	"github.com/at-ishikawa/briefly/internal/cli"
)

func newQuizzesCommand() *cobra.Command {
	quizzesCommand := &cobra.Command{
		Use:   "quizzes",
		Short: "Manage saved quiz sets",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved quiz sets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				cli.NewPrinter(cmd.OutOrStdout()).QuizSets(services.Quizzes.List(ctx))
				return nil
			})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the questions and answers of a quiz set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				set, err := findQuizSet(ctx, services, args[0])
				if err != nil {
					return err
				}
				cli.NewPrinter(cmd.OutOrStdout()).QuizSet(set)
				return nil
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a quiz set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				if err := services.Quizzes.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted quiz set %s\n", args[0])
				return nil
			})
		},
	}

	var generatePDF bool
	exportCmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write a quiz set as a markdown study sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				set, err := findQuizSet(ctx, services, args[0])
				if err != nil {
					return err
				}
				if _, err := services.Exporter.ExportQuizSet(set, generatePDF); err != nil {
					return fmt.Errorf("ExportQuizSet() > %w", err)
				}
				return nil
			})
		},
	}
	exportCmd.Flags().BoolVar(&generatePDF, "pdf", false, "Also convert the study sheet to PDF")

	studyCmd := &cobra.Command{
		Use:   "study <id>",
		Short: "Answer a quiz set and count it towards the study streak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				set, err := findQuizSet(ctx, services, args[0])
				if err != nil {
					return err
				}
				studyCLI := cli.NewQuizStudyCLI(set, services.Streak, cmd.InOrStdin(), cmd.OutOrStdout())
				return studyCLI.Run(ctx, studyCLI)
			})
		},
	}

	quizzesCommand.AddCommand(listCmd, showCmd, deleteCmd, exportCmd, studyCmd)
	return quizzesCommand
}

func findQuizSet(ctx context.Context, services *bootstrap.Services, id string) (artifact.QuizSet, error) {
	set, ok := services.Quizzes.FindByID(ctx, id)
	if !ok {
		return artifact.QuizSet{}, fmt.Errorf("quiz set %s: %w", id, artifact.ErrNotFound)
	}
	return set, nil
}
