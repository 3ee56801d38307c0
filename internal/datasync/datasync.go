// Package datasync copies saved artifacts and the study streak from one store into another.
package datasync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/kvstore"
	"github.com/at-ishikawa/briefly/internal/streak"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	FlashcardSetsNew     int
	FlashcardSetsSkipped int
	FlashcardSetsUpdated int
	QuizSetsNew          int
	QuizSetsSkipped      int
	QuizSetsUpdated      int
	StreakImported       bool
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer reads the persistent keys of a source store and merges them into a target store.
type Importer struct {
	source *kvstore.Store
	target *kvstore.Store
	writer io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(source, target *kvstore.Store, writer io.Writer) *Importer {
	return &Importer{
		source: source,
		target: target,
		writer: writer,
	}
}

// Import merges both artifact collections by id and copies the streak when the target has none.
func (imp *Importer) Import(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	flashcards, err := importCollection[artifact.FlashcardSet](ctx, imp, kvstore.KeyFlashcardSets, opts)
	if err != nil {
		return nil, fmt.Errorf("importCollection(%s) > %w", kvstore.KeyFlashcardSets, err)
	}
	result.FlashcardSetsNew, result.FlashcardSetsSkipped, result.FlashcardSetsUpdated = flashcards.new, flashcards.skipped, flashcards.updated

	quizzes, err := importCollection[artifact.QuizSet](ctx, imp, kvstore.KeyQuizSets, opts)
	if err != nil {
		return nil, fmt.Errorf("importCollection(%s) > %w", kvstore.KeyQuizSets, err)
	}
	result.QuizSetsNew, result.QuizSetsSkipped, result.QuizSetsUpdated = quizzes.new, quizzes.skipped, quizzes.updated

	imported, err := imp.importStreak(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("importStreak() > %w", err)
	}
	result.StreakImported = imported

	return &result, nil
}

type counts struct {
	new, skipped, updated int
}

type storedArtifact[T any] interface {
	*T
	GetID() string
	GetCreatedAt() artifact.Timestamp
}

func importCollection[T any, PT storedArtifact[T]](ctx context.Context, imp *Importer, key kvstore.Key, opts ImportOptions) (counts, error) {
	var c counts
	sourceItems := kvstore.NewCollection[T](imp.source, key).Load(ctx)
	targetCollection := kvstore.NewCollection[T](imp.target, key)
	merged := targetCollection.Load(ctx)

	positions := make(map[string]int, len(merged))
	for i := range merged {
		positions[PT(&merged[i]).GetID()] = i
	}

	changed := false
	for _, item := range sourceItems {
		id := PT(&item).GetID()
		i, exists := positions[id]
		if !exists {
			fmt.Fprintf(imp.writer, "  [NEW]  %s %s\n", key, id)
			positions[id] = len(merged)
			merged = append(merged, item)
			c.new++
			changed = true
			continue
		}

		same, err := equalJSON(merged[i], item)
		if err != nil {
			return c, err
		}
		if same || !opts.UpdateExisting {
			fmt.Fprintf(imp.writer, "  [SKIP]  %s %s\n", key, id)
			c.skipped++
			continue
		}
		fmt.Fprintf(imp.writer, "  [UPDATE]  %s %s\n", key, id)
		merged[i] = item
		c.updated++
		changed = true
	}

	if !changed || opts.DryRun {
		return c, nil
	}

	// Collections are kept newest first.
	sort.SliceStable(merged, func(i, j int) bool {
		return PT(&merged[i]).GetCreatedAt().After(PT(&merged[j]).GetCreatedAt().Time)
	})
	if err := targetCollection.Save(ctx, merged); err != nil {
		return c, fmt.Errorf("save %s: %w", key, err)
	}
	return c, nil
}

func (imp *Importer) importStreak(ctx context.Context, opts ImportOptions) (bool, error) {
	source, found, err := kvstore.NewObject[streak.StudyStreak](imp.source, kvstore.KeyStudyStreak).Load(ctx)
	if err != nil || !found {
		return false, nil
	}

	target := kvstore.NewObject[streak.StudyStreak](imp.target, kvstore.KeyStudyStreak)
	existing, exists, err := target.Load(ctx)
	if err == nil && exists && (!opts.UpdateExisting || existing == source) {
		fmt.Fprintf(imp.writer, "  [SKIP]  %s\n", kvstore.KeyStudyStreak)
		return false, nil
	}

	label := "NEW"
	if exists {
		label = "UPDATE"
	}
	fmt.Fprintf(imp.writer, "  [%s]  %s %d days\n", label, kvstore.KeyStudyStreak, source.Current)
	if opts.DryRun {
		return true, nil
	}
	if err := target.Save(ctx, source); err != nil {
		return false, fmt.Errorf("save %s: %w", kvstore.KeyStudyStreak, err)
	}
	return true, nil
}

func equalJSON(a, b any) (bool, error) {
	encodedA, err := json.Marshal(a)
	if err != nil {
		return false, fmt.Errorf("json.Marshal() > %w", err)
	}
	encodedB, err := json.Marshal(b)
	if err != nil {
		return false, fmt.Errorf("json.Marshal() > %w", err)
	}
	return string(encodedA) == string(encodedB), nil
}
