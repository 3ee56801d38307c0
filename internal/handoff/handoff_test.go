package handoff

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/kvstore"
)

var (
	sessionCards = []artifact.Flashcard{{Question: "Capital of France?", Answer: "Paris"}}
	queryCards   = []artifact.Flashcard{{Question: "2+2?", Answer: "4"}, {Question: "3*3?", Answer: "9"}}
)

func newHandoff(t *testing.T) (*Handoff, *kvstore.MemoryMedium, *kvstore.RecordingReporter) {
	t.Helper()
	medium := kvstore.NewMemoryMedium()
	reporter := &kvstore.RecordingReporter{}
	return New(kvstore.New(medium, kvstore.WithReporter(reporter))), medium, reporter
}

func TestHandoff_Resolve(t *testing.T) {
	validQuery, err := QueryValues("Arithmetic", queryCards)
	require.NoError(t, err)

	tests := []struct {
		name   string
		staged bool
		query  url.Values
		want   Preview
		wantOK bool
	}{
		{
			name:   "query wins over session",
			staged: true,
			query:  validQuery,
			want:   Preview{Topic: "Arithmetic", Flashcards: queryCards, Source: SourceQuery},
			wantOK: true,
		},
		{
			name:   "malformed query falls back to session",
			staged: true,
			query:  url.Values{QueryFlashcards: []string{"[{"}, QueryTopic: []string{"Broken"}},
			want:   Preview{Topic: "Geography", Flashcards: sessionCards, Source: SourceSession},
			wantOK: true,
		},
		{
			name:   "empty query array falls back to session",
			staged: true,
			query:  url.Values{QueryFlashcards: []string{"[]"}},
			want:   Preview{Topic: "Geography", Flashcards: sessionCards, Source: SourceSession},
			wantOK: true,
		},
		{
			name:   "session only",
			staged: true,
			query:  url.Values{},
			want:   Preview{Topic: "Geography", Flashcards: sessionCards, Source: SourceSession},
			wantOK: true,
		},
		{
			name:   "query only",
			query:  validQuery,
			want:   Preview{Topic: "Arithmetic", Flashcards: queryCards, Source: SourceQuery},
			wantOK: true,
		},
		{
			name:   "nothing to preview",
			query:  url.Values{QueryFlashcards: []string{"not json"}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			h, _, _ := newHandoff(t)
			if tt.staged {
				require.NoError(t, h.Stage(ctx, "Geography", sessionCards))
			}

			got, ok := h.Resolve(ctx, tt.query)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandoff_StageWritesSessionKeys(t *testing.T) {
	ctx := context.Background()
	h, medium, _ := newHandoff(t)

	require.NoError(t, h.Stage(ctx, "Geography", sessionCards))

	raw, found, err := medium.Get(ctx, kvstore.KeyPreviewFlashcards)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"question":"Capital of France?","answer":"Paris"}]`, raw)
	topic, found, err := medium.Get(ctx, kvstore.KeyPreviewTopic)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Geography", topic)
}

func TestHandoff_CorruptSessionIsNothingToPreview(t *testing.T) {
	ctx := context.Background()
	h, medium, reporter := newHandoff(t)
	require.NoError(t, medium.Set(ctx, kvstore.KeyPreviewFlashcards, "{oops"))

	_, ok := h.Resolve(ctx, nil)

	assert.False(t, ok)
	assert.Len(t, reporter.Errors(), 1)
}

func TestHandoff_Clear(t *testing.T) {
	ctx := context.Background()
	h, medium, _ := newHandoff(t)
	require.NoError(t, h.Stage(ctx, "Geography", sessionCards))
	quiz := []artifact.QuizQuestion{{Question: "Largest ocean?", Options: []string{"Pacific", "Indian"}}}
	require.NoError(t, h.StageQuiz(ctx, "Oceans", quiz))

	require.NoError(t, h.Clear(ctx))

	_, ok := h.Resolve(ctx, nil)
	assert.False(t, ok)
	_, found, err := medium.Get(ctx, kvstore.KeyPreviewTopic)
	require.NoError(t, err)
	assert.False(t, found)

	gotQuiz, ok := h.ResolveQuiz(ctx)
	require.True(t, ok, "quiz staging is independent")
	assert.Equal(t, QuizPreview{Topic: "Oceans", Quiz: quiz}, gotQuiz)

	require.NoError(t, h.ClearQuiz(ctx))
	_, ok = h.ResolveQuiz(ctx)
	assert.False(t, ok)
}

func TestHandoff_ClearFailure(t *testing.T) {
	ctx := context.Background()
	h, medium, _ := newHandoff(t)
	require.NoError(t, h.Stage(ctx, "Geography", sessionCards))
	medium.SetUnavailable(true)

	err := h.Clear(ctx)

	assert.ErrorIs(t, err, kvstore.ErrStorageUnavailable)
	_, ok := h.Resolve(ctx, nil)
	assert.False(t, ok, "the removal is observed for the rest of the session")
}
