package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLFileMedium(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "store.yml")
	medium := NewYAMLFileMedium(path)

	_, found, err := medium.Get(ctx, KeyFlashcardSets)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, medium.Set(ctx, KeyFlashcardSets, `[{"id":"1"}]`))
	require.NoError(t, medium.Set(ctx, KeyStudyStreak, `{"current":2,"lastDate":"2025-01-02"}`))

	got, found, err := medium.Get(ctx, KeyFlashcardSets)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, got)

	reopened := NewYAMLFileMedium(path)
	got, found, err = reopened.Get(ctx, KeyStudyStreak)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"current":2,"lastDate":"2025-01-02"}`, got)

	require.NoError(t, medium.Remove(ctx, KeyFlashcardSets))
	require.NoError(t, medium.Remove(ctx, KeyFlashcardSets))
	_, found, err = medium.Get(ctx, KeyFlashcardSets)
	require.NoError(t, err)
	assert.False(t, found)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestYAMLFileMedium_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.yml")
	require.NoError(t, os.WriteFile(path, []byte("entries: [[[\n"), 0644))
	medium := NewYAMLFileMedium(path)

	_, _, err := medium.Get(ctx, KeyQuizSets)
	assert.Error(t, err)
	assert.Error(t, medium.Set(ctx, KeyQuizSets, "[]"))

	reporter := &RecordingReporter{}
	store := New(medium, WithReporter(reporter))
	assert.Empty(t, NewCollection[map[string]any](store, KeyQuizSets).Load(ctx))
	require.Len(t, reporter.Errors(), 1)
	var readErr *ReadError
	assert.ErrorAs(t, reporter.Errors()[0], &readErr)
}
