package datasync

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/kvstore"
	"github.com/at-ishikawa/briefly/internal/streak"
)

func newStore(t *testing.T, values map[kvstore.Key]any) *kvstore.Store {
	t.Helper()
	store := kvstore.New(kvstore.NewMemoryMedium())
	for key, value := range values {
		encoded, err := json.Marshal(value)
		require.NoError(t, err)
		require.NoError(t, store.SetString(context.Background(), key, string(encoded)))
	}
	return store
}

func flashcardSet(id, topic, createdAt string) artifact.FlashcardSet {
	var ts artifact.Timestamp
	_ = ts.UnmarshalJSON([]byte(`"` + createdAt + `"`))
	return artifact.FlashcardSet{
		ID:         id,
		Topic:      topic,
		Flashcards: []artifact.Flashcard{{Question: "q", Answer: "a"}},
		CreatedAt:  ts,
	}
}

func TestImporter_Import(t *testing.T) {
	older := flashcardSet("1", "Old", "2025-01-01T00:00:00.000Z")
	newer := flashcardSet("2", "New", "2025-02-01T00:00:00.000Z")
	renamed := flashcardSet("1", "Renamed", "2025-01-01T00:00:00.000Z")
	quiz := artifact.QuizSet{
		ID:   "3",
		Quiz: []artifact.QuizQuestion{{Question: "q", Options: []string{"a", "b"}}},
	}
	sourceStreak := streak.StudyStreak{Current: 4, LastDate: "2025-02-01"}

	tests := []struct {
		name           string
		source         map[kvstore.Key]any
		target         map[kvstore.Key]any
		opts           ImportOptions
		want           *ImportResult
		wantFlashcards []string
		wantStreak     *streak.StudyStreak
		wantOutput     string
	}{
		{
			name: "empty target receives everything",
			source: map[kvstore.Key]any{
				kvstore.KeyFlashcardSets: []artifact.FlashcardSet{newer, older},
				kvstore.KeyQuizSets:      []artifact.QuizSet{quiz},
				kvstore.KeyStudyStreak:   sourceStreak,
			},
			want: &ImportResult{
				FlashcardSetsNew: 2,
				QuizSetsNew:      1,
				StreakImported:   true,
			},
			wantFlashcards: []string{"New", "Old"},
			wantStreak:     &sourceStreak,
			wantOutput: "  [NEW]  briefly_flashcard_sets 2\n" +
				"  [NEW]  briefly_flashcard_sets 1\n" +
				"  [NEW]  briefly_quiz_sets 3\n" +
				"  [NEW]  briefly_study_streak 4 days\n",
		},
		{
			name: "existing ids are skipped and merged newest first",
			source: map[kvstore.Key]any{
				kvstore.KeyFlashcardSets: []artifact.FlashcardSet{newer, renamed},
			},
			target: map[kvstore.Key]any{
				kvstore.KeyFlashcardSets: []artifact.FlashcardSet{older},
				kvstore.KeyStudyStreak:   streak.StudyStreak{Current: 1, LastDate: "2025-01-01"},
			},
			want: &ImportResult{
				FlashcardSetsNew:     1,
				FlashcardSetsSkipped: 1,
			},
			wantFlashcards: []string{"New", "Old"},
			wantStreak:     &streak.StudyStreak{Current: 1, LastDate: "2025-01-01"},
			wantOutput: "  [NEW]  briefly_flashcard_sets 2\n" +
				"  [SKIP]  briefly_flashcard_sets 1\n",
		},
		{
			name: "update existing",
			source: map[kvstore.Key]any{
				kvstore.KeyFlashcardSets: []artifact.FlashcardSet{renamed},
				kvstore.KeyStudyStreak:   sourceStreak,
			},
			target: map[kvstore.Key]any{
				kvstore.KeyFlashcardSets: []artifact.FlashcardSet{older},
				kvstore.KeyStudyStreak:   streak.StudyStreak{Current: 1, LastDate: "2025-01-01"},
			},
			opts: ImportOptions{UpdateExisting: true},
			want: &ImportResult{
				FlashcardSetsUpdated: 1,
				StreakImported:       true,
			},
			wantFlashcards: []string{"Renamed"},
			wantStreak:     &sourceStreak,
			wantOutput: "  [UPDATE]  briefly_flashcard_sets 1\n" +
				"  [UPDATE]  briefly_study_streak 4 days\n",
		},
		{
			name: "identical sets are skipped even when updating",
			source: map[kvstore.Key]any{
				kvstore.KeyFlashcardSets: []artifact.FlashcardSet{older},
			},
			target: map[kvstore.Key]any{
				kvstore.KeyFlashcardSets: []artifact.FlashcardSet{older},
			},
			opts:           ImportOptions{UpdateExisting: true},
			want:           &ImportResult{FlashcardSetsSkipped: 1},
			wantFlashcards: []string{"Old"},
			wantOutput:     "  [SKIP]  briefly_flashcard_sets 1\n",
		},
		{
			name: "dry run writes nothing",
			source: map[kvstore.Key]any{
				kvstore.KeyFlashcardSets: []artifact.FlashcardSet{newer},
				kvstore.KeyStudyStreak:   sourceStreak,
			},
			opts: ImportOptions{DryRun: true},
			want: &ImportResult{
				FlashcardSetsNew: 1,
				StreakImported:   true,
			},
			wantOutput: "  [NEW]  briefly_flashcard_sets 2\n" +
				"  [NEW]  briefly_study_streak 4 days\n",
		},
		{
			name: "corrupt source counts as empty",
			source: map[kvstore.Key]any{
				kvstore.KeyFlashcardSets: "not a list",
			},
			want: &ImportResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			target := newStore(t, tt.target)
			var out bytes.Buffer

			got, err := NewImporter(newStore(t, tt.source), target, &out).Import(ctx, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOutput, out.String())

			var topics []string
			for _, set := range kvstore.NewCollection[artifact.FlashcardSet](target, kvstore.KeyFlashcardSets).Load(ctx) {
				topics = append(topics, set.Topic)
			}
			assert.Equal(t, tt.wantFlashcards, topics)

			gotStreak, found, err := kvstore.NewObject[streak.StudyStreak](target, kvstore.KeyStudyStreak).Load(ctx)
			require.NoError(t, err)
			if tt.wantStreak == nil {
				assert.False(t, found)
				return
			}
			assert.Equal(t, *tt.wantStreak, gotStreak)
		})
	}
}
