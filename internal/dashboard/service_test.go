package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/clock"
	"github.com/at-ishikawa/briefly/internal/kvstore"
	"github.com/at-ishikawa/briefly/internal/streak"
)

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(now.Add(-2 * time.Hour))
	store := kvstore.New(kvstore.NewMemoryMedium(), kvstore.WithReporter(&kvstore.RecordingReporter{}))
	flashcards := artifact.NewFlashcardSetRepository(store, clk)
	quizzes := artifact.NewQuizSetRepository(store, clk)
	tracker := streak.NewTracker(store, clk)

	_, err := flashcards.Create(ctx, artifact.FlashcardSet{Topic: "Older", Flashcards: cards(5)})
	require.NoError(t, err)
	clk.Advance(time.Hour)
	_, err = flashcards.Create(ctx, artifact.FlashcardSet{Topic: "Newer", Flashcards: cards(3)})
	require.NoError(t, err)
	_, err = quizzes.Create(ctx, artifact.QuizSet{Topic: "Quiz", Quiz: questions(4)})
	require.NoError(t, err)
	_, err = tracker.RecordActivityNow(ctx)
	require.NoError(t, err)
	clk.Advance(time.Hour)

	got := NewService(flashcards, quizzes, tracker, clk).Get(ctx)

	assert.Equal(t, Totals{TotalFlashcards: 8, TotalQuizzes: 1, TotalQuestions: 4, StudyStreak: 1}, got.Totals)
	require.Len(t, got.StudySets, 2)
	assert.Equal(t, "Newer", got.StudySets[0].Topic)
	require.Len(t, got.RecentActivity, 3)
	assert.Equal(t, "1h ago", got.RecentActivity[0].RelativeTime)
	assert.Equal(t, "2h ago", got.RecentActivity[2].RelativeTime)
	assert.Equal(t, "Older", got.RecentActivity[2].Title)
}

type staticFlashcards []artifact.FlashcardSet

func (s staticFlashcards) List(context.Context) []artifact.FlashcardSet {
	return append([]artifact.FlashcardSet(nil), s...)
}

type staticQuizzes []artifact.QuizSet

func (s staticQuizzes) List(context.Context) []artifact.QuizSet {
	return append([]artifact.QuizSet(nil), s...)
}

type staticStreak int

func (s staticStreak) GetStreak(context.Context) int {
	return int(s)
}

func TestService_GetSortsNewestFirst(t *testing.T) {
	svc := NewService(
		staticFlashcards{
			flashcardSet("old", "Old", 1, 48*time.Hour),
			flashcardSet("new", "New", 1, time.Hour),
		},
		staticQuizzes{
			quizSet("q-old", "Old quiz", 1, 72*time.Hour),
			quizSet("q-new", "New quiz", 1, 2*time.Hour),
		},
		staticStreak(4),
		clock.NewFake(now),
	)

	got := svc.Get(context.Background())

	var ids []string
	for _, item := range got.RecentActivity {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"new", "q-new", "old", "q-old"}, ids)
	assert.Equal(t, "new", got.StudySets[0].ID)
	assert.Equal(t, 4, got.Totals.StudyStreak)
}
