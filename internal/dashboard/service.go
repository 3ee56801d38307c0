package dashboard

import (
	"context"
	"log/slog"
	"sort"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/clock"
)

type FlashcardSetLister interface {
	List(ctx context.Context) []artifact.FlashcardSet
}

type QuizSetLister interface {
	List(ctx context.Context) []artifact.QuizSet
}

type StreakReader interface {
	GetStreak(ctx context.Context) int
}

// Service reads the stores and builds the dashboard as of the clock's now.
type Service struct {
	flashcards FlashcardSetLister
	quizzes    QuizSetLister
	streak     StreakReader
	clock      clock.Clock
}

func NewService(flashcards FlashcardSetLister, quizzes QuizSetLister, streak StreakReader, clk clock.Clock) *Service {
	return &Service{
		flashcards: flashcards,
		quizzes:    quizzes,
		streak:     streak,
		clock:      clk,
	}
}

func (s *Service) Get(ctx context.Context) Dashboard {
	flashcardSets := s.flashcards.List(ctx)
	sort.SliceStable(flashcardSets, func(i, j int) bool {
		return flashcardSets[i].CreatedAt.After(flashcardSets[j].CreatedAt.Time)
	})
	quizSets := s.quizzes.List(ctx)
	sort.SliceStable(quizSets, func(i, j int) bool {
		return quizSets[i].CreatedAt.After(quizSets[j].CreatedAt.Time)
	})

	d := Aggregate(flashcardSets, quizSets, s.streak.GetStreak(ctx), s.clock.Now())
	slog.Default().Debug("dashboard aggregated",
		slog.Int("flashcardSets", len(flashcardSets)),
		slog.Int("quizSets", len(quizSets)),
		slog.Int("recentActivity", len(d.RecentActivity)),
	)
	return d
}
