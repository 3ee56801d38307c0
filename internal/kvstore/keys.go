package kvstore

// Key names a value in a storage medium. The string values are persisted and
// must stay stable across releases.
type Key string

const (
	KeyFlashcardSets Key = "briefly_flashcard_sets"
	KeyQuizSets      Key = "briefly_quiz_sets"
	KeyStudyStreak   Key = "briefly_study_streak"

	// Session-scoped staging of an artifact that has not been saved yet.
	KeyPreviewFlashcards Key = "preview_flashcards"
	KeyPreviewTopic      Key = "preview_topic"
	KeyPreviewQuiz       Key = "preview_quiz"
	KeyPreviewQuizTopic  Key = "preview_quiz_topic"
)

// PersistentKeys are the keys owned by the long-lived store.
var PersistentKeys = []Key{KeyFlashcardSets, KeyQuizSets, KeyStudyStreak}

// SessionKeys are the keys cleared once a staged artifact is committed.
var SessionKeys = []Key{KeyPreviewFlashcards, KeyPreviewTopic, KeyPreviewQuiz, KeyPreviewQuizTopic}

func (k Key) String() string {
	return string(k)
}
