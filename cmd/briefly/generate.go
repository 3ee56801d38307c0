package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/bootstrap"
	"github.com/at-ishikawa/briefly/internal/cli"
	"github.com/at-ishikawa/briefly/internal/generation"
	"github.com/at-ishikawa/briefly/internal/handoff"
)

func newGenerateCommand() *cobra.Command {
	generateCommand := &cobra.Command{
		Use:   "generate",
		Short: "Generate study material for a topic and stage it for preview",
	}

	var count int
	flashcardsCmd := &cobra.Command{
		Use:   "flashcards <topic>",
		Short: "Generate flashcards for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := args[0]
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				flashcards, err := generateFlashcards(ctx, services.Generator, services.Handoff, generation.FlashcardsRequest{
					Topic: topic,
					Count: count,
				})
				if err != nil {
					return err
				}

				cli.NewPrinter(cmd.OutOrStdout()).Preview(topic, flashcards, nil)
				fmt.Fprintln(cmd.OutOrStdout(), "\nRun `briefly save flashcards` to keep them.")
				return nil
			})
		},
	}
	flashcardsCmd.Flags().IntVar(&count, "count", generation.DefaultFlashcardCount, "Number of flashcards")

	var (
		numberOfQuestions int
		difficulty        string
	)
	quizCmd := &cobra.Command{
		Use:   "quiz <topic>",
		Short: "Generate a multiple choice quiz for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := args[0]
			return withServices(cmd, func(ctx context.Context, services *bootstrap.Services) error {
				quiz, err := generateQuiz(ctx, services.Generator, services.Handoff, generation.QuizRequest{
					Topic:             topic,
					NumberOfQuestions: numberOfQuestions,
					Difficulty:        difficulty,
				})
				if err != nil {
					return err
				}

				cli.NewPrinter(cmd.OutOrStdout()).Preview(topic, nil, quiz)
				fmt.Fprintln(cmd.OutOrStdout(), "\nRun `briefly save quiz` to keep it.")
				return nil
			})
		},
	}
	quizCmd.Flags().IntVar(&numberOfQuestions, "questions", generation.DefaultQuestionCount, "Number of questions")
	quizCmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty, e.g. easy, medium or hard")

	generateCommand.AddCommand(flashcardsCmd, quizCmd)
	return generateCommand
}

// generateFlashcards stages what the generator returns. Nothing is staged when generation fails.
func generateFlashcards(ctx context.Context, generator generation.Client, staging *handoff.Handoff, request generation.FlashcardsRequest) ([]artifact.Flashcard, error) {
	response, err := generator.GenerateFlashcards(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("GenerateFlashcards() > %w", err)
	}
	if err := staging.Stage(ctx, request.Topic, response.Flashcards); err != nil {
		return nil, err
	}
	return response.Flashcards, nil
}

func generateQuiz(ctx context.Context, generator generation.Client, staging *handoff.Handoff, request generation.QuizRequest) ([]artifact.QuizQuestion, error) {
	response, err := generator.GenerateQuiz(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("GenerateQuiz() > %w", err)
	}
	if err := staging.StageQuiz(ctx, request.Topic, response.Quiz); err != nil {
		return nil, err
	}
	return response.Quiz, nil
}
