package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/dashboard"
	"github.com/at-ishikawa/briefly/internal/streak"
	"github.com/at-ishikawa/briefly/internal/workflow"
)

var tagColors = map[string]color.Attribute{
	"blue":   color.FgBlue,
	"green":  color.FgGreen,
	"purple": color.FgMagenta,
	"orange": color.FgYellow,
}

// Printer writes human readable output.
type Printer struct {
	out   io.Writer
	bold  *color.Color
	faint *color.Color
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:   out,
		bold:  color.New(color.Bold),
		faint: color.New(color.Faint),
	}
}

func (p *Printer) tag(name string) *color.Color {
	if attr, ok := tagColors[name]; ok {
		return color.New(attr)
	}
	return color.New(color.Reset)
}

func (p *Printer) FlashcardSets(sets []artifact.FlashcardSet) {
	if len(sets) == 0 {
		fmt.Fprintln(p.out, "No flashcard sets yet.")
		return
	}
	for _, set := range sets {
		fmt.Fprintf(p.out, "%s  %s  %s  %s\n",
			set.ID,
			p.bold.Sprint(titleOr(set.Topic, dashboard.UntitledFlashcards)),
			countOf(len(set.Flashcards), "card", "cards"),
			p.faint.Sprint(set.CreatedAt.String()),
		)
	}
}

func (p *Printer) QuizSets(sets []artifact.QuizSet) {
	if len(sets) == 0 {
		fmt.Fprintln(p.out, "No quiz sets yet.")
		return
	}
	for _, set := range sets {
		difficulty := ""
		if set.Difficulty != "" {
			difficulty = " (" + set.Difficulty + ")"
		}
		fmt.Fprintf(p.out, "%s  %s%s  %s  %s\n",
			set.ID,
			p.bold.Sprint(titleOr(set.Topic, dashboard.UntitledQuiz)),
			difficulty,
			countOf(len(set.Quiz), "question", "questions"),
			p.faint.Sprint(set.CreatedAt.String()),
		)
	}
}

func (p *Printer) FlashcardSet(set artifact.FlashcardSet) {
	_, _ = p.bold.Fprintln(p.out, titleOr(set.Topic, dashboard.UntitledFlashcards))
	fmt.Fprintf(p.out, "id: %s, created: %s\n\n", set.ID, set.CreatedAt.String())
	p.flashcards(set.Flashcards)
}

func (p *Printer) QuizSet(set artifact.QuizSet) {
	_, _ = p.bold.Fprintln(p.out, titleOr(set.Topic, dashboard.UntitledQuiz))
	fmt.Fprintf(p.out, "id: %s, created: %s, questions: %d", set.ID, set.CreatedAt.String(), set.NumberOfQuestions)
	if set.Difficulty != "" {
		fmt.Fprintf(p.out, ", difficulty: %s", set.Difficulty)
	}
	fmt.Fprint(p.out, "\n\n")
	p.quiz(set.Quiz)
}

// Preview prints staged material that has not been saved.
func (p *Printer) Preview(topic string, flashcards []artifact.Flashcard, quiz []artifact.QuizQuestion) {
	_, _ = p.bold.Fprintf(p.out, "Preview: %s\n\n", titleOr(topic, "(no topic)"))
	p.flashcards(flashcards)
	p.quiz(quiz)
}

func (p *Printer) flashcards(cards []artifact.Flashcard) {
	for i, card := range cards {
		fmt.Fprintf(p.out, "%d. %s\n   %s\n", i+1, card.Question, p.faint.Sprint(card.Answer))
	}
}

func (p *Printer) quiz(questions []artifact.QuizQuestion) {
	for i, q := range questions {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, q.Question)
		for j, option := range q.Options {
			marker := " "
			if j == q.CorrectAnswer {
				marker = "*"
			}
			fmt.Fprintf(p.out, "  %s %s. %s\n", marker, optionLetter(j), option)
		}
	}
}

func (p *Printer) Streak(s streak.StudyStreak, found bool) {
	if !found || s.Current == 0 {
		fmt.Fprintln(p.out, "No study streak yet. Study a set to start one!")
		return
	}
	fmt.Fprintf(p.out, "Study streak: %s (last studied %s)\n", p.bold.Sprint(dayCount(s.Current)), s.LastDate)
}

func (p *Printer) Dashboard(d dashboard.Dashboard) {
	_, _ = p.bold.Fprintln(p.out, "Dashboard")
	fmt.Fprintf(p.out, "  Flashcards: %d\n  Quizzes:    %d\n  Questions:  %d\n  Streak:     %s\n",
		d.Totals.TotalFlashcards,
		d.Totals.TotalQuizzes,
		d.Totals.TotalQuestions,
		dayCount(d.Totals.StudyStreak),
	)

	fmt.Fprintln(p.out)
	_, _ = p.bold.Fprintln(p.out, "Recent activity")
	if len(d.RecentActivity) == 0 {
		fmt.Fprintln(p.out, "  Nothing yet. Generate flashcards or a quiz to get started.")
	}
	for _, item := range d.RecentActivity {
		fmt.Fprintf(p.out, "  %s %s  %s  %s\n",
			p.tag(item.ColorTag).Sprint("●"),
			item.Title,
			item.Description,
			p.faint.Sprint(item.RelativeTime),
		)
	}

	if len(d.StudySets) > 0 {
		fmt.Fprintln(p.out)
		_, _ = p.bold.Fprintln(p.out, "Study sets")
		for _, set := range d.StudySets {
			fmt.Fprintf(p.out, "  %s  %s\n", set.ID, titleOr(set.Topic, dashboard.UntitledFlashcards))
		}
	}
}

// Transition prints a save workflow state change.
func (p *Printer) Transition(_, to workflow.State) {
	switch to {
	case workflow.Saving:
		fmt.Fprintln(p.out, "Saving...")
	case workflow.Success:
		_, _ = color.New(color.FgGreen).Fprintln(p.out, "✅ Saved!")
	case workflow.Saved:
		fmt.Fprintln(p.out, "Ready to study.")
	}
}

func titleOr(topic, fallback string) string {
	if strings.TrimSpace(topic) == "" {
		return fallback
	}
	return topic
}

func countOf(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
