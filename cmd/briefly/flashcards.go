package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/bootstrap"
	"github.com/at-ishikawa/briefly/internal/cli"
)

func newFlashcardsCommand() *cobra.Command {
	flashcardsCommand := &cobra.Command{
		Use:   "flashcards",
		Short: "Manage saved flashcard sets",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved flashcard sets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				cli.NewPrinter(cmd.OutOrStdout()).FlashcardSets(services.Flashcards.List(ctx))
				return nil
			})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the cards of a flashcard set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				set, err := findFlashcardSet(ctx, services, args[0])
				if err != nil {
					return err
				}
				cli.NewPrinter(cmd.OutOrStdout()).FlashcardSet(set)
				return nil
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a flashcard set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				if err := services.Flashcards.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted flashcard set %s\n", args[0])
				return nil
			})
		},
	}

	var generatePDF bool
	exportCmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write a flashcard set as a markdown study sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				set, err := findFlashcardSet(ctx, services, args[0])
				if err != nil {
					return err
				}
				if _, err := services.Exporter.ExportFlashcardSet(set, generatePDF); err != nil {
					return fmt.Errorf("ExportFlashcardSet() > %w", err)
				}
				return nil
			})
		},
	}
	exportCmd.Flags().BoolVar(&generatePDF, "pdf", false, "Also convert the study sheet to PDF")

	var shuffle bool
	studyCmd := &cobra.Command{
		Use:   "study <id>",
		Short: "Flip through a flashcard set and count it towards the study streak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				set, err := findFlashcardSet(ctx, services, args[0])
				if err != nil {
					return err
				}
				studyCLI := cli.NewFlashcardStudyCLI(set, services.Streak, cmd.InOrStdin(), cmd.OutOrStdout())
				if shuffle {
					studyCLI.ShuffleCards()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Starting a session with %d cards\n\n", studyCLI.GetCardCount())
				return studyCLI.Run(ctx, studyCLI)
			})
		},
	}
	studyCmd.Flags().BoolVar(&shuffle, "shuffle", false, "Shuffle the cards")

	flashcardsCommand.AddCommand(listCmd, showCmd, deleteCmd, exportCmd, studyCmd)
	return flashcardsCommand
}

func findFlashcardSet(ctx context.Context, services *bootstrap.Services, id string) (artifact.FlashcardSet, error) {
	set, ok := services.Flashcards.FindByID(ctx, id)
	if !ok {
		return artifact.FlashcardSet{}, fmt.Errorf("flashcard set %s: %w", id, artifact.ErrNotFound)
	}
	return set, nil
}
