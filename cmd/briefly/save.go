package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/bootstrap"
	"github.com/at-ishikawa/briefly/internal/cli"
	"github.com/at-ishikawa/briefly/internal/handoff"
	"github.com/at-ishikawa/briefly/internal/workflow"
)

// savingWorkflow is the part of workflow.Workflow the save commands drive.
type savingWorkflow interface {
	OnTransition(f func(from, to workflow.State))
	SavedID() string
	Close()
}

func newSaveCommand() *cobra.Command {
	saveCommand := &cobra.Command{
		Use:   "save",
		Short: "Save the staged flashcards or quiz",
	}

	var query string
	flashcardsCmd := &cobra.Command{
		Use:   "flashcards",
		Short: "Save the staged flashcards as a new flashcard set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := url.ParseQuery(query)
			if err != nil {
				return fmt.Errorf("url.ParseQuery() > %w", err)
			}
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				preview, found := services.Handoff.Resolve(ctx, values)
				if !found {
					return fmt.Errorf("%w: stage or generate flashcards first", errNothingStaged)
				}

				w := workflow.New[artifact.FlashcardSet](
					services.Flashcards,
					artifact.FlashcardSet{Topic: preview.Topic, Flashcards: preview.Flashcards},
					services.Clock,
					services.Config.Workflow,
					workflow.WithStaging[artifact.FlashcardSet](services.Handoff),
				)
				return runSave(ctx, cmd, w, w.Save)
			})
		},
	}
	flashcardsCmd.Flags().StringVar(&query, "query", "", "Query string carrying flashcards and topic, as printed by preview link")

	var difficulty string
	quizCmd := &cobra.Command{
		Use:   "quiz",
		Short: "Save the staged quiz as a new quiz set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				preview, found := services.Handoff.ResolveQuiz(ctx)
				if !found {
					return fmt.Errorf("%w: stage or generate a quiz first", errNothingStaged)
				}

				w := workflow.New[artifact.QuizSet](
					services.Quizzes,
					artifact.QuizSet{
						Topic:             preview.Topic,
						Quiz:              preview.Quiz,
						NumberOfQuestions: len(preview.Quiz),
						Difficulty:        difficulty,
					},
					services.Clock,
					services.Config.Workflow,
					workflow.WithStaging[artifact.QuizSet](handoff.QuizStaging{Handoff: services.Handoff}),
				)
				return runSave(ctx, cmd, w, w.Save)
			})
		},
	}
	quizCmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty recorded with the quiz")

	saveCommand.AddCommand(flashcardsCmd, quizCmd)
	return saveCommand
}

// runSave prints every transition of w and waits for it to settle in Saved.
func runSave[T any](ctx context.Context, cmd *cobra.Command, w savingWorkflow, save func(context.Context) (T, error)) error {
	defer w.Close()

	printer := cli.NewPrinter(cmd.OutOrStdout())
	settled := make(chan struct{})
	var once sync.Once
	w.OnTransition(func(from, to workflow.State) {
		printer.Transition(from, to)
		if to == workflow.Saved {
			once.Do(func() { close(settled) })
		}
	})

	if _, err := save(ctx); err != nil {
		if errors.Is(err, workflow.ErrAlreadySaved) || errors.Is(err, workflow.ErrSaveInProgress) {
			return err
		}
		return fmt.Errorf("failed to save: %w", err)
	}

	select {
	case <-settled:
	case <-ctx.Done():
		return ctx.Err()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved as %s\n", w.SavedID())
	return nil
}
