// Package artifact persists flashcard sets and quiz sets.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/at-ishikawa/briefly/internal/clock"
	"github.com/at-ishikawa/briefly/internal/kvstore"
)

// ErrNotFound is returned when no artifact has the requested id.
var ErrNotFound = errors.New("artifact not found")

// entity is implemented by pointers to the stored artifact types.
type entity[T any] interface {
	*T
	GetID() string
	GetCreatedAt() Timestamp
	assign(id string, createdAt Timestamp)
	normalize()
}

// Repository stores one artifact collection under a single key. Every change
// rewrites the whole collection.
type Repository[T any, PT entity[T]] struct {
	kind       Kind
	collection *kvstore.Collection[T]
	clock      clock.Clock
}

type (
	FlashcardSetRepository = Repository[FlashcardSet, *FlashcardSet]
	QuizSetRepository      = Repository[QuizSet, *QuizSet]
)

// NewFlashcardSetRepository creates the repository of flashcard sets.
func NewFlashcardSetRepository(store *kvstore.Store, clk clock.Clock) *FlashcardSetRepository {
	return &FlashcardSetRepository{
		kind:       KindFlashcardSet,
		collection: kvstore.NewCollection[FlashcardSet](store, kvstore.KeyFlashcardSets),
		clock:      clk,
	}
}

// NewQuizSetRepository creates the repository of quiz sets.
func NewQuizSetRepository(store *kvstore.Store, clk clock.Clock) *QuizSetRepository {
	return &QuizSetRepository{
		kind:       KindQuizSet,
		collection: kvstore.NewCollection[QuizSet](store, kvstore.KeyQuizSets),
		clock:      clk,
	}
}

func (r *Repository[T, PT]) Kind() Kind {
	return r.kind
}

// List returns the stored collection in storage order.
func (r *Repository[T, PT]) List(ctx context.Context) []T {
	return r.collection.Load(ctx)
}

// FindByID returns the artifact with id.
func (r *Repository[T, PT]) FindByID(ctx context.Context, id string) (T, bool) {
	for _, item := range r.collection.Load(ctx) {
		if PT(&item).GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Create assigns an id and creation time to payload, stores it first in the
// collection and returns it. Any id or creation time in payload is replaced.
// When the medium rejects the write the created artifact is returned with the
// error and stays visible for the rest of the session.
func (r *Repository[T, PT]) Create(ctx context.Context, payload T) (T, error) {
	created := payload
	PT(&created).normalize()
	PT(&created).assign("", Timestamp{})
	if err := validatePayload(r.kind, created); err != nil {
		var zero T
		return zero, err
	}

	items := r.collection.Load(ctx)
	now := r.clock.Now()
	PT(&created).assign(nextID[T, PT](items, now.UnixMilli()), NewTimestamp(now))

	items = append([]T{created}, items...)
	if err := r.collection.Save(ctx, items); err != nil {
		return created, fmt.Errorf("save %s %s: %w", r.kind, PT(&created).GetID(), err)
	}
	return created, nil
}

// Validate reports whether Create would accept payload, without storing it.
func (r *Repository[T, PT]) Validate(payload T) error {
	checked := payload
	PT(&checked).normalize()
	return validatePayload(r.kind, checked)
}

// Update replaces the artifact that has the same id, keeping its creation time.
func (r *Repository[T, PT]) Update(ctx context.Context, updated T) (T, error) {
	id := PT(&updated).GetID()
	PT(&updated).normalize()
	if err := validatePayload(r.kind, updated); err != nil {
		var zero T
		return zero, err
	}

	items := r.collection.Load(ctx)
	index := indexOf[T, PT](items, id)
	if index < 0 {
		var zero T
		return zero, fmt.Errorf("update %s %s: %w", r.kind, id, ErrNotFound)
	}
	PT(&updated).assign(id, PT(&items[index]).GetCreatedAt())
	items[index] = updated

	if err := r.collection.Save(ctx, items); err != nil {
		return updated, fmt.Errorf("save %s %s: %w", r.kind, id, err)
	}
	return updated, nil
}

// Delete removes the artifact with id.
func (r *Repository[T, PT]) Delete(ctx context.Context, id string) error {
	items := r.collection.Load(ctx)
	index := indexOf[T, PT](items, id)
	if index < 0 {
		return fmt.Errorf("delete %s %s: %w", r.kind, id, ErrNotFound)
	}
	items = append(items[:index], items[index+1:]...)

	if err := r.collection.Save(ctx, items); err != nil {
		return fmt.Errorf("save %s collection: %w", r.kind, err)
	}
	return nil
}

func indexOf[T any, PT entity[T]](items []T, id string) int {
	for i := range items {
		if PT(&items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

// nextID returns the millisecond timestamp as a string, moving forward past ids already taken.
func nextID[T any, PT entity[T]](items []T, millis int64) string {
	taken := make(map[string]struct{}, len(items))
	for i := range items {
		taken[PT(&items[i]).GetID()] = struct{}{}
	}
	for {
		id := strconv.FormatInt(millis, 10)
		if _, ok := taken[id]; !ok {
			return id
		}
		millis++
	}
}
