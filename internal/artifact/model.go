package artifact

// Kind names an artifact collection.
type Kind string

const (
	KindFlashcardSet Kind = "flashcard set"
	KindQuizSet      Kind = "quiz set"
)

type Flashcard struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// FlashcardSet is a saved group of flashcards for one topic.
type FlashcardSet struct {
	ID         string      `json:"id"`
	Topic      string      `json:"topic" validate:"max=200"`
	Flashcards []Flashcard `json:"flashcards" validate:"required,min=1,dive"`
	CreatedAt  Timestamp   `json:"createdAt"`
}

// QuizQuestion is a multiple choice question. CorrectAnswer indexes Options.
type QuizQuestion struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"min=2,dive,required"`
	CorrectAnswer int      `json:"correctAnswer" validate:"answerindex"`
}

// QuizSet is a saved quiz for one topic.
type QuizSet struct {
	ID                string         `json:"id"`
	Topic             string         `json:"topic" validate:"max=200"`
	Quiz              []QuizQuestion `json:"quiz" validate:"required,min=1,dive"`
	NumberOfQuestions int            `json:"numberOfQuestions" validate:"min=0"`
	Difficulty        string         `json:"difficulty" validate:"omitempty,max=50"`
	CreatedAt         Timestamp      `json:"createdAt"`
}

func (s *FlashcardSet) GetID() string {
	return s.ID
}

func (s *FlashcardSet) GetCreatedAt() Timestamp {
	return s.CreatedAt
}

func (s *FlashcardSet) assign(id string, createdAt Timestamp) {
	s.ID = id
	s.CreatedAt = createdAt
}

func (s *FlashcardSet) normalize() {}

func (s *QuizSet) GetID() string {
	return s.ID
}

func (s *QuizSet) GetCreatedAt() Timestamp {
	return s.CreatedAt
}

func (s *QuizSet) assign(id string, createdAt Timestamp) {
	s.ID = id
	s.CreatedAt = createdAt
}

func (s *QuizSet) normalize() {
	if s.NumberOfQuestions == 0 {
		s.NumberOfQuestions = len(s.Quiz)
	}
}
