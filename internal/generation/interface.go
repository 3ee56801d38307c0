// Package generation defines how flashcards and quizzes are generated for a topic.
package generation

import (
	"context"

	"github.com/at-ishikawa/briefly/internal/artifact"
)

//go:generate mockgen -source=interface.go -destination=../mocks/generation/mock_client.go -package=mock_generation

// Client generates study material. Generated material is not saved.
type Client interface {
	GenerateFlashcards(ctx context.Context, params FlashcardsRequest) (FlashcardsResponse, error)
	GenerateQuiz(ctx context.Context, params QuizRequest) (QuizResponse, error)
}

type FlashcardsRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

type FlashcardsResponse struct {
	Flashcards []artifact.Flashcard `json:"flashcards"`
}

type QuizRequest struct {
	Topic             string `json:"topic"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
	Difficulty        string `json:"difficulty,omitempty"`
}

type QuizResponse struct {
	Quiz []artifact.QuizQuestion `json:"quiz"`
}

const (
	DefaultFlashcardCount = 10
	DefaultQuestionCount  = 5
	DefaultMaxRetries     = 3
)
