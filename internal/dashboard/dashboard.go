// Package dashboard derives the home screen summary from the stored artifacts.
package dashboard

import (
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"

	"github.com/at-ishikawa/briefly/internal/artifact"
)

const (
	recentPerSource = 3
	maxRecent       = 6
	maxStudySets    = 6

	UntitledFlashcards = "Untitled flashcards"
	UntitledQuiz       = "Untitled quiz"
)

// Palette is the fixed set of color tags assigned to recent activity.
var Palette = []string{"blue", "green", "purple", "orange"}

var monthNames locales.Translator = en.New()

type Totals struct {
	TotalFlashcards int `json:"totalFlashcards"`
	TotalQuizzes    int `json:"totalQuizzes"`
	TotalQuestions  int `json:"totalQuestions"`
	StudyStreak     int `json:"studyStreak"`
}

// ActivityItem is one recently created artifact.
type ActivityItem struct {
	Kind         artifact.Kind      `json:"kind"`
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	CreatedAt    artifact.Timestamp `json:"createdAt"`
	ColorTag     string             `json:"colorTag"`
	RelativeTime string             `json:"relativeTime"`
}

type Dashboard struct {
	Totals         Totals                  `json:"totals"`
	RecentActivity []ActivityItem          `json:"recentActivity"`
	StudySets      []artifact.FlashcardSet `json:"studySets"`
}

// Aggregate builds the dashboard. Both slices are expected newest first.
func Aggregate(flashcardSets []artifact.FlashcardSet, quizSets []artifact.QuizSet, streak int, now time.Time) Dashboard {
	totals := Totals{
		TotalQuizzes: len(quizSets),
		StudyStreak:  streak,
	}
	for _, set := range flashcardSets {
		totals.TotalFlashcards += len(set.Flashcards)
	}
	for _, set := range quizSets {
		totals.TotalQuestions += len(set.Quiz)
	}

	recent := make([]ActivityItem, 0, 2*recentPerSource)
	for i, set := range flashcardSets[:min(recentPerSource, len(flashcardSets))] {
		recent = append(recent, ActivityItem{
			Kind:        artifact.KindFlashcardSet,
			ID:          set.ID,
			Title:       titleOr(set.Topic, UntitledFlashcards),
			Description: countSummary(len(set.Flashcards), "card", "cards"),
			CreatedAt:   set.CreatedAt,
			ColorTag:    Palette[i%len(Palette)],
		})
	}
	for i, set := range quizSets[:min(recentPerSource, len(quizSets))] {
		recent = append(recent, ActivityItem{
			Kind:        artifact.KindQuizSet,
			ID:          set.ID,
			Title:       titleOr(set.Topic, UntitledQuiz),
			Description: countSummary(len(set.Quiz), "question", "questions"),
			CreatedAt:   set.CreatedAt,
			ColorTag:    Palette[i%len(Palette)],
		})
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt.Time)
	})
	if len(recent) > maxRecent {
		recent = recent[:maxRecent]
	}
	for i := range recent {
		recent[i].RelativeTime = FormatRelative(now, recent[i].CreatedAt.Time)
	}

	studySets := make([]artifact.FlashcardSet, min(maxStudySets, len(flashcardSets)))
	copy(studySets, flashcardSets)

	return Dashboard{
		Totals:         totals,
		RecentActivity: recent,
		StudySets:      studySets,
	}
}

// FormatRelative describes how long ago t was. Times in the future read as "Just now".
// Anything a week or older is shown as a month and day, with the year when it
// differs from now's.
func FormatRelative(now, t time.Time) string {
	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return strconv.FormatInt(int64(elapsed/time.Minute), 10) + "m ago"
	case elapsed < 24*time.Hour:
		return strconv.FormatInt(int64(elapsed/time.Hour), 10) + "h ago"
	case elapsed < 7*24*time.Hour:
		return strconv.FormatInt(int64(elapsed/(24*time.Hour)), 10) + "d ago"
	}

	local := t.In(now.Location())
	date := monthNames.MonthAbbreviated(local.Month()) + " " + strconv.Itoa(local.Day())
	if local.Year() != now.Year() {
		date += ", " + strconv.Itoa(local.Year())
	}
	return date
}

func titleOr(topic, fallback string) string {
	if topic == "" {
		return fallback
	}
	return topic
}

func countSummary(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
