// Package handoff passes generated but unsaved artifacts from generation to
// preview, through query parameters or session-scoped storage.
package handoff

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/kvstore"
)

const (
	QueryFlashcards = "flashcards"
	QueryTopic      = "topic"
)

// Source tells where a preview was found.
type Source string

const (
	SourceQuery   Source = "query"
	SourceSession Source = "session"
)

// Preview is a staged flashcard set.
type Preview struct {
	Topic      string
	Flashcards []artifact.Flashcard
	Source     Source
}

// QuizPreview is a staged quiz.
type QuizPreview struct {
	Topic string
	Quiz  []artifact.QuizQuestion
}

// Handoff reads and writes the staging keys of a session-scoped store.
type Handoff struct {
	store      *kvstore.Store
	flashcards *kvstore.Collection[artifact.Flashcard]
	quiz       *kvstore.Collection[artifact.QuizQuestion]
}

func New(session *kvstore.Store) *Handoff {
	return &Handoff{
		store:      session,
		flashcards: kvstore.NewCollection[artifact.Flashcard](session, kvstore.KeyPreviewFlashcards),
		quiz:       kvstore.NewCollection[artifact.QuizQuestion](session, kvstore.KeyPreviewQuiz),
	}
}

// Stage keeps generated flashcards until they are saved or discarded.
func (h *Handoff) Stage(ctx context.Context, topic string, flashcards []artifact.Flashcard) error {
	if err := h.flashcards.Save(ctx, flashcards); err != nil {
		return fmt.Errorf("stage flashcards: %w", err)
	}
	if err := h.store.SetString(ctx, kvstore.KeyPreviewTopic, topic); err != nil {
		return fmt.Errorf("stage flashcards topic: %w", err)
	}
	return nil
}

// StageQuiz keeps a generated quiz until it is saved or discarded.
func (h *Handoff) StageQuiz(ctx context.Context, topic string, quiz []artifact.QuizQuestion) error {
	if err := h.quiz.Save(ctx, quiz); err != nil {
		return fmt.Errorf("stage quiz: %w", err)
	}
	if err := h.store.SetString(ctx, kvstore.KeyPreviewQuizTopic, topic); err != nil {
		return fmt.Errorf("stage quiz topic: %w", err)
	}
	return nil
}

// Resolve finds the flashcards to preview. The query parameters win over the
// session channel; a malformed query falls back to the session. ok is false
// when neither holds any flashcards.
func (h *Handoff) Resolve(ctx context.Context, query url.Values) (Preview, bool) {
	if raw := query.Get(QueryFlashcards); raw != "" {
		var flashcards []artifact.Flashcard
		if err := json.Unmarshal([]byte(raw), &flashcards); err != nil {
			slog.Default().Debug("ignore malformed flashcards query parameter",
				slog.Any("error", err),
			)
		} else if len(flashcards) > 0 {
			return Preview{
				Topic:      query.Get(QueryTopic),
				Flashcards: flashcards,
				Source:     SourceQuery,
			}, true
		}
	}

	flashcards := h.flashcards.Load(ctx)
	if len(flashcards) == 0 {
		return Preview{}, false
	}
	topic, _ := h.store.GetString(ctx, kvstore.KeyPreviewTopic)
	return Preview{
		Topic:      topic,
		Flashcards: flashcards,
		Source:     SourceSession,
	}, true
}

// ResolveQuiz returns the staged quiz. ok is false when nothing is staged.
func (h *Handoff) ResolveQuiz(ctx context.Context) (QuizPreview, bool) {
	quiz := h.quiz.Load(ctx)
	if len(quiz) == 0 {
		return QuizPreview{}, false
	}
	topic, _ := h.store.GetString(ctx, kvstore.KeyPreviewQuizTopic)
	return QuizPreview{Topic: topic, Quiz: quiz}, true
}

// Clear removes the staged flashcards and their topic.
func (h *Handoff) Clear(ctx context.Context) error {
	return errors.Join(
		h.store.Remove(ctx, kvstore.KeyPreviewFlashcards),
		h.store.Remove(ctx, kvstore.KeyPreviewTopic),
	)
}

// ClearQuiz removes the staged quiz and its topic.
func (h *Handoff) ClearQuiz(ctx context.Context) error {
	return errors.Join(
		h.store.Remove(ctx, kvstore.KeyPreviewQuiz),
		h.store.Remove(ctx, kvstore.KeyPreviewQuizTopic),
	)
}

// QueryValues encodes a preview as query parameters understood by Resolve.
func QueryValues(topic string, flashcards []artifact.Flashcard) (url.Values, error) {
	raw, err := json.Marshal(flashcards)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(flashcards) > %w", err)
	}
	return url.Values{
		QueryFlashcards: []string{string(raw)},
		QueryTopic:      []string{topic},
	}, nil
}

// QuizStaging exposes the quiz channel through a Clear method, so a quiz save
// workflow clears only the staged quiz.
type QuizStaging struct {
	Handoff *Handoff
}

func (s QuizStaging) Clear(ctx context.Context) error {
	return s.Handoff.ClearQuiz(ctx)
}
