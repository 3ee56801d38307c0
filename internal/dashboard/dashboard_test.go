package dashboard

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/briefly/internal/artifact"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func cards(n int) []artifact.Flashcard {
	result := make([]artifact.Flashcard, n)
	for i := range result {
		result[i] = artifact.Flashcard{Question: "q" + strconv.Itoa(i), Answer: "a"}
	}
	return result
}

func questions(n int) []artifact.QuizQuestion {
	result := make([]artifact.QuizQuestion, n)
	for i := range result {
		result[i] = artifact.QuizQuestion{Question: "q" + strconv.Itoa(i), Options: []string{"a", "b"}}
	}
	return result
}

func flashcardSet(id, topic string, n int, age time.Duration) artifact.FlashcardSet {
	return artifact.FlashcardSet{ID: id, Topic: topic, Flashcards: cards(n), CreatedAt: artifact.NewTimestamp(now.Add(-age))}
}

func quizSet(id, topic string, n int, age time.Duration) artifact.QuizSet {
	return artifact.QuizSet{ID: id, Topic: topic, Quiz: questions(n), NumberOfQuestions: n, CreatedAt: artifact.NewTimestamp(now.Add(-age))}
}

func TestAggregate_Totals(t *testing.T) {
	got := Aggregate(
		[]artifact.FlashcardSet{
			flashcardSet("f1", "Biology", 5, time.Minute),
			flashcardSet("f2", "History", 3, time.Hour),
		},
		[]artifact.QuizSet{quizSet("q1", "Physics", 4, 2*time.Hour)},
		2,
		now,
	)

	assert.Equal(t, Totals{
		TotalFlashcards: 8,
		TotalQuizzes:    1,
		TotalQuestions:  4,
		StudyStreak:     2,
	}, got.Totals)
}

func TestAggregate_EmptyStore(t *testing.T) {
	got := Aggregate([]artifact.FlashcardSet{}, []artifact.QuizSet{}, 0, now)

	assert.Equal(t, Totals{}, got.Totals)
	assert.Empty(t, got.RecentActivity)
	assert.Empty(t, got.StudySets)
}

func TestAggregate_RecentActivity(t *testing.T) {
	flashcardSets := []artifact.FlashcardSet{
		flashcardSet("f1", "Biology", 1, 30*time.Second),
		flashcardSet("f2", "", 2, 3*time.Hour),
		flashcardSet("f3", "Chemistry", 3, 5*24*time.Hour),
		flashcardSet("f4", "Geology", 4, 6*24*time.Hour),
	}
	quizSets := []artifact.QuizSet{
		quizSet("q1", "Physics", 1, 5*time.Minute),
		quizSet("q2", "", 10, 2*24*time.Hour),
		quizSet("q3", "Rome", 3, 30*24*time.Hour),
		quizSet("q4", "Greece", 3, 40*24*time.Hour),
	}

	got := Aggregate(flashcardSets, quizSets, 0, now)

	want := []ActivityItem{
		{Kind: artifact.KindFlashcardSet, ID: "f1", Title: "Biology", Description: "1 card", ColorTag: "blue", RelativeTime: "Just now"},
		{Kind: artifact.KindQuizSet, ID: "q1", Title: "Physics", Description: "1 question", ColorTag: "blue", RelativeTime: "5m ago"},
		{Kind: artifact.KindFlashcardSet, ID: "f2", Title: "Untitled flashcards", Description: "2 cards", ColorTag: "green", RelativeTime: "3h ago"},
		{Kind: artifact.KindQuizSet, ID: "q2", Title: "Untitled quiz", Description: "10 questions", ColorTag: "green", RelativeTime: "2d ago"},
		{Kind: artifact.KindFlashcardSet, ID: "f3", Title: "Chemistry", Description: "3 cards", ColorTag: "purple", RelativeTime: "5d ago"},
		{Kind: artifact.KindQuizSet, ID: "q3", Title: "Rome", Description: "3 questions", ColorTag: "purple", RelativeTime: "May 16"},
	}
	require.Len(t, got.RecentActivity, len(want))
	for i := range want {
		item := got.RecentActivity[i]
		item.CreatedAt = artifact.Timestamp{}
		assert.Equal(t, want[i], item, "item %d", i)
	}
}

func TestAggregate_ColorTagsCycle(t *testing.T) {
	original := Palette
	Palette = []string{"red", "black"}
	t.Cleanup(func() { Palette = original })

	got := Aggregate([]artifact.FlashcardSet{
		flashcardSet("f1", "a", 1, time.Minute),
		flashcardSet("f2", "b", 1, 2*time.Minute),
		flashcardSet("f3", "c", 1, 3*time.Minute),
	}, nil, 0, now)

	var tags []string
	for _, item := range got.RecentActivity {
		tags = append(tags, item.ColorTag)
	}
	assert.Equal(t, []string{"red", "black", "red"}, tags)
}

func TestAggregate_StudySetsKeepCallerOrder(t *testing.T) {
	var sets []artifact.FlashcardSet
	for i := range 8 {
		sets = append(sets, flashcardSet(strconv.Itoa(i), "topic", 1, time.Duration(8-i)*time.Hour))
	}

	got := Aggregate(sets, nil, 0, now)

	require.Len(t, got.StudySets, 6)
	assert.Equal(t, sets[:6], got.StudySets)
}

func TestFormatRelative(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "now", t: now, want: "Just now"},
		{name: "59 seconds", t: now.Add(-59 * time.Second), want: "Just now"},
		{name: "future", t: now.Add(time.Hour), want: "Just now"},
		{name: "1 minute", t: now.Add(-time.Minute), want: "1m ago"},
		{name: "5 minutes", t: now.Add(-5*time.Minute - 59*time.Second), want: "5m ago"},
		{name: "59 minutes", t: now.Add(-59 * time.Minute), want: "59m ago"},
		{name: "1 hour", t: now.Add(-time.Hour), want: "1h ago"},
		{name: "23 hours", t: now.Add(-23*time.Hour - 59*time.Minute), want: "23h ago"},
		{name: "1 day", t: now.Add(-24 * time.Hour), want: "1d ago"},
		{name: "3 days", t: now.Add(-3 * 24 * time.Hour), want: "3d ago"},
		{name: "6 days", t: now.Add(-7*24*time.Hour + time.Second), want: "6d ago"},
		{name: "a week in the same year", t: now.Add(-7 * 24 * time.Hour), want: "Jun 8"},
		{name: "previous year", t: time.Date(2024, 12, 25, 10, 0, 0, 0, time.UTC), want: "Dec 25, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelative(now, tt.t))
		})
	}
}
