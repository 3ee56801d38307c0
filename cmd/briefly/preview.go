package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/bootstrap"
	"github.com/at-ishikawa/briefly/internal/cli"
	"github.com/at-ishikawa/briefly/internal/handoff"
)

var errNothingStaged = errors.New("nothing to preview")

func newPreviewCommand() *cobra.Command {
	previewCommand := &cobra.Command{
		Use:   "preview",
		Short: "Stage, inspect and discard material that has not been saved yet",
	}
	previewCommand.AddCommand(
		newPreviewStageCommand(),
		newPreviewShowCommand(),
		newPreviewLinkCommand(),
		newPreviewClearCommand(),
	)
	return previewCommand
}

func newPreviewStageCommand() *cobra.Command {
	stageCommand := &cobra.Command{
		Use:   "stage",
		Short: "Stage flashcards or a quiz from a JSON file",
	}

	var topic string
	flashcardsCmd := &cobra.Command{
		Use:   "flashcards <file>",
		Short: "Stage a JSON array of {question, answer} objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var flashcards []artifact.Flashcard
			if err := readJSONFile(args[0], &flashcards); err != nil {
				return err
			}
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				if err := services.Handoff.Stage(ctx, topic, flashcards); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Staged %d flashcards\n", len(flashcards))
				return nil
			})
		},
	}
	flashcardsCmd.Flags().StringVar(&topic, "topic", "", "Topic of the flashcards")

	quizCmd := &cobra.Command{
		Use:   "quiz <file>",
		Short: "Stage a JSON array of {question, options, correctAnswer} objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var quiz []artifact.QuizQuestion
			if err := readJSONFile(args[0], &quiz); err != nil {
				return err
			}
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				if err := services.Handoff.StageQuiz(ctx, topic, quiz); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Staged %d questions\n", len(quiz))
				return nil
			})
		},
	}
	quizCmd.Flags().StringVar(&topic, "topic", "", "Topic of the quiz")

	stageCommand.AddCommand(flashcardsCmd, quizCmd)
	return stageCommand
}

func newPreviewShowCommand() *cobra.Command {
	var query string
	command := &cobra.Command{
		Use:   "show",
		Short: "Show the staged flashcards and quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := url.ParseQuery(query)
			if err != nil {
				return fmt.Errorf("url.ParseQuery() > %w", err)
			}
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				preview, found := services.Handoff.Resolve(ctx, values)
				quiz, quizFound := services.Handoff.ResolveQuiz(ctx)
				if !found && !quizFound {
					return errNothingStaged
				}

				printer := cli.NewPrinter(cmd.OutOrStdout())
				if found {
					printer.Preview(preview.Topic, preview.Flashcards, nil)
				}
				if quizFound {
					printer.Preview(quiz.Topic, nil, quiz.Quiz)
				}
				return nil
			})
		},
	}
	command.Flags().StringVar(&query, "query", "", "Query string carrying flashcards and topic, as printed by preview link")
	return command
}

func newPreviewLinkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "link",
		Short: "Print the staged flashcards as a query string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				preview, found := services.Handoff.Resolve(ctx, nil)
				if !found {
					return errNothingStaged
				}
				values, err := handoff.QueryValues(preview.Topic, preview.Flashcards)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), values.Encode())
				return nil
			})
		},
	}
}

func newPreviewClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the staged flashcards and quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				if err := errors.Join(services.Handoff.Clear(ctx), services.Handoff.ClearQuiz(ctx)); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared the preview")
				return nil
			})
		},
	}
}

func readJSONFile(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("json.Unmarshal(%s) > %w", path, err)
	}
	return nil
}
