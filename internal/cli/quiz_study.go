package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/briefly/internal/artifact"
)

// QuizStudyCLI asks the questions of one quiz set in order.
type QuizStudyCLI struct {
	*InteractiveStudyCLI
	set       artifact.QuizSet
	questions []artifact.QuizQuestion
	score     int
	skipped   int
}

func NewQuizStudyCLI(set artifact.QuizSet, recorder ActivityRecorder, stdin io.Reader, stdout io.Writer) *QuizStudyCLI {
	return &QuizStudyCLI{
		InteractiveStudyCLI: newInteractiveStudyCLI(recorder, stdin, stdout),
		set:                 set,
		questions:           set.Quiz,
	}
}

func (r *QuizStudyCLI) Score() int {
	return r.score
}

func (r *QuizStudyCLI) Session(ctx context.Context) error {
	if len(r.questions) == 0 {
		fmt.Fprintf(r.stdoutWriter, "Score: %d/%d\n", r.score, len(r.set.Quiz)-r.skipped)
		return errEnd
	}
	q := r.questions[0]
	number := len(r.set.Quiz) - len(r.questions) + 1

	// Stored quizzes are not validated on read.
	if !answerable(q) {
		slog.Default().Warn("skip quiz question without a valid answer",
			slog.String("quizSetID", r.set.ID),
			slog.Int("question", number),
			slog.Int("options", len(q.Options)),
			slog.Int("correctAnswer", q.CorrectAnswer),
		)
		fmt.Fprintf(r.stdoutWriter, "Question %d/%d skipped: it has no valid answer\n\n", number, len(r.set.Quiz))
		r.skipped++
		r.questions = r.questions[1:]
		return nil
	}

	fmt.Fprintf(r.stdoutWriter, "Question %d/%d: ", number, len(r.set.Quiz))
	_, _ = r.bold.Fprintln(r.stdoutWriter, q.Question)
	for i, option := range q.Options {
		fmt.Fprintf(r.stdoutWriter, "  %s. %s\n", optionLetter(i), option)
	}
	fmt.Fprint(r.stdoutWriter, "Your answer: ")

	input, err := r.readLine()
	if err != nil {
		return err
	}
	choice, ok := parseOptionLetter(input, len(q.Options))
	if !ok {
		fmt.Fprintf(r.stdoutWriter, "Please answer with a letter between A and %s\n\n", optionLetter(len(q.Options)-1))
		return nil
	}

	if choice == q.CorrectAnswer {
		r.score++
		_, _ = r.correct.Fprintln(r.stdoutWriter, "✅ Correct!")
	} else {
		_, _ = r.wrong.Fprintf(r.stdoutWriter, "❌ Wrong. The answer is %s. %s\n",
			optionLetter(q.CorrectAnswer),
			r.italic.Sprint(q.Options[q.CorrectAnswer]),
		)
	}
	fmt.Fprintln(r.stdoutWriter)

	r.questions = r.questions[1:]
	return nil
}

func answerable(q artifact.QuizQuestion) bool {
	return q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options)
}

func optionLetter(i int) string {
	return string(rune('A' + i))
}

// parseOptionLetter maps "a", "B", ... to an option index below count.
func parseOptionLetter(input string, count int) (int, bool) {
	input = strings.ToUpper(strings.TrimSpace(input))
	if len(input) != 1 {
		return 0, false
	}
	index := int(input[0]) - 'A'
	if index < 0 || index >= count {
		return 0, false
	}
	return index, true
}
