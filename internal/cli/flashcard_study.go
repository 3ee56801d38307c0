package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/at-ishikawa/briefly/internal/artifact"
)

// FlashcardStudyCLI flips through the cards of one flashcard set.
type FlashcardStudyCLI struct {
	*InteractiveStudyCLI
	set   artifact.FlashcardSet
	cards []artifact.Flashcard
	total int
	known int
}

func NewFlashcardStudyCLI(set artifact.FlashcardSet, recorder ActivityRecorder, stdin io.Reader, stdout io.Writer) *FlashcardStudyCLI {
	cards := make([]artifact.Flashcard, len(set.Flashcards))
	copy(cards, set.Flashcards)
	return &FlashcardStudyCLI{
		InteractiveStudyCLI: newInteractiveStudyCLI(recorder, stdin, stdout),
		set:                 set,
		cards:               cards,
		total:               len(cards),
	}
}

// ShuffleCards shuffles the remaining cards
func (r *FlashcardStudyCLI) ShuffleCards() {
	rand.Shuffle(len(r.cards), func(i, j int) {
		r.cards[i], r.cards[j] = r.cards[j], r.cards[i]
	})
}

// GetCardCount returns the number of remaining cards
func (r *FlashcardStudyCLI) GetCardCount() int {
	return len(r.cards)
}

func (r *FlashcardStudyCLI) Known() int {
	return r.known
}

func (r *FlashcardStudyCLI) Session(ctx context.Context) error {
	if len(r.cards) == 0 {
		fmt.Fprintf(r.stdoutWriter, "No more cards to practice! You knew %d of %d cards.\n", r.known, r.total)
		return errEnd
	}
	card := r.cards[0]

	fmt.Fprintf(r.stdoutWriter, "Card %d/%d\n", r.total-len(r.cards)+1, r.total)
	_, _ = r.bold.Fprintf(r.stdoutWriter, "Q: %s\n", card.Question)
	fmt.Fprint(r.stdoutWriter, "(press Enter to reveal the answer)")
	if _, err := r.readLine(); err != nil {
		return err
	}
	fmt.Fprintf(r.stdoutWriter, "A: %s\n", r.italic.Sprint(card.Answer))

	fmt.Fprint(r.stdoutWriter, "Did you know it? [y/N]: ")
	answer, err := r.readLine()
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		r.known++
		_, _ = r.correct.Fprintln(r.stdoutWriter, "✅ Nice!")
	} else {
		_, _ = r.wrong.Fprintln(r.stdoutWriter, "❌ Keep practicing.")
	}
	fmt.Fprintln(r.stdoutWriter)

	r.cards = r.cards[1:]
	return nil
}
