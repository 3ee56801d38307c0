// Package studyv1 defines the briefly.v1.StudyService messages and the
// Connect handler and client for them. Messages travel as JSON.
package studyv1

import (
	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/dashboard"
	"github.com/at-ishikawa/briefly/internal/streak"
)

type ListFlashcardSetsRequest struct{}

type ListFlashcardSetsResponse struct {
	FlashcardSets []artifact.FlashcardSet `json:"flashcardSets"`
}

type GetFlashcardSetRequest struct {
	ID string `json:"id"`
}

type GetFlashcardSetResponse struct {
	FlashcardSet artifact.FlashcardSet `json:"flashcardSet"`
}

type CreateFlashcardSetRequest struct {
	Topic      string               `json:"topic"`
	Flashcards []artifact.Flashcard `json:"flashcards"`
}

type CreateFlashcardSetResponse struct {
	FlashcardSet artifact.FlashcardSet `json:"flashcardSet"`
}

type DeleteFlashcardSetRequest struct {
	ID string `json:"id"`
}

type DeleteFlashcardSetResponse struct{}

type ListQuizSetsRequest struct{}

type ListQuizSetsResponse struct {
	QuizSets []artifact.QuizSet `json:"quizSets"`
}

type GetQuizSetRequest struct {
	ID string `json:"id"`
}

type GetQuizSetResponse struct {
	QuizSet artifact.QuizSet `json:"quizSet"`
}

type CreateQuizSetRequest struct {
	Topic             string                  `json:"topic"`
	Quiz              []artifact.QuizQuestion `json:"quiz"`
	NumberOfQuestions int                     `json:"numberOfQuestions,omitempty"`
	Difficulty        string                  `json:"difficulty,omitempty"`
}

type CreateQuizSetResponse struct {
	QuizSet artifact.QuizSet `json:"quizSet"`
}

type DeleteQuizSetRequest struct {
	ID string `json:"id"`
}

type DeleteQuizSetResponse struct{}

type RecordActivityRequest struct{}

type RecordActivityResponse struct {
	Streak streak.StudyStreak `json:"streak"`
}

type GetStreakRequest struct{}

type GetStreakResponse struct {
	Current int `json:"current"`
}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Dashboard dashboard.Dashboard `json:"dashboard"`
}
