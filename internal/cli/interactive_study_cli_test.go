package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/briefly/internal/artifact"
	mock_cli "github.com/at-ishikawa/briefly/internal/mocks/cli"
	"github.com/at-ishikawa/briefly/internal/streak"
)

func disableColor(t *testing.T) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
}

func TestInteractiveStudyCLI_Run(t *testing.T) {
	sessionErr := errors.New("broken pipe")
	recordErr := errors.New("storage disabled")

	tests := []struct {
		name       string
		setup      func(session *mock_cli.MockSession, recorder *mock_cli.MockActivityRecorder)
		wantErr    error
		wantOutput string
	}{
		{
			name: "records activity after the last step",
			setup: func(session *mock_cli.MockSession, recorder *mock_cli.MockActivityRecorder) {
				gomock.InOrder(
					session.EXPECT().Session(gomock.Any()).Return(nil).Times(2),
					session.EXPECT().Session(gomock.Any()).Return(errEnd),
					recorder.EXPECT().RecordActivityNow(gomock.Any()).Return(streak.StudyStreak{Current: 3, LastDate: "2025-01-03"}, nil),
				)
			},
			wantOutput: "Study streak: 3 days\n",
		},
		{
			name: "session failure is not recorded",
			setup: func(session *mock_cli.MockSession, _ *mock_cli.MockActivityRecorder) {
				session.EXPECT().Session(gomock.Any()).Return(sessionErr)
			},
			wantErr: sessionErr,
		},
		{
			name: "record failure",
			setup: func(session *mock_cli.MockSession, recorder *mock_cli.MockActivityRecorder) {
				session.EXPECT().Session(gomock.Any()).Return(errEnd)
				recorder.EXPECT().RecordActivityNow(gomock.Any()).Return(streak.StudyStreak{}, recordErr)
			},
			wantErr: recordErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disableColor(t)
			ctrl := gomock.NewController(t)
			session := mock_cli.NewMockSession(ctrl)
			recorder := mock_cli.NewMockActivityRecorder(ctrl)
			tt.setup(session, recorder)
			var stdout bytes.Buffer

			err := newInteractiveStudyCLI(recorder, strings.NewReader(""), &stdout).Run(context.Background(), session)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, stdout.String())
		})
	}
}

func TestFlashcardStudyCLI(t *testing.T) {
	disableColor(t)
	ctrl := gomock.NewController(t)
	recorder := mock_cli.NewMockActivityRecorder(ctrl)
	recorder.EXPECT().RecordActivityNow(gomock.Any()).Return(streak.StudyStreak{Current: 1, LastDate: "2025-01-01"}, nil)
	set := artifact.FlashcardSet{
		ID:    "1",
		Topic: "Capitals",
		Flashcards: []artifact.Flashcard{
			{Question: "Capital of Peru?", Answer: "Lima"},
			{Question: "Capital of Chile?", Answer: "Santiago"},
		},
	}
	var stdout bytes.Buffer
	study := NewFlashcardStudyCLI(set, recorder, strings.NewReader("\ny\n\nn\n"), &stdout)
	require.Equal(t, 2, study.GetCardCount())

	require.NoError(t, study.Run(context.Background(), study))

	assert.Equal(t, 1, study.Known())
	assert.Equal(t, 0, study.GetCardCount())
	got := stdout.String()
	assert.Contains(t, got, "Card 1/2\nQ: Capital of Peru?\n")
	assert.Contains(t, got, "A: Lima\n")
	assert.Contains(t, got, "Card 2/2\nQ: Capital of Chile?\n")
	assert.Contains(t, got, "No more cards to practice! You knew 1 of 2 cards.\n")
	assert.Contains(t, got, "Study streak: 1 day\n")
}

func TestFlashcardStudyCLI_InputClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mock_cli.NewMockActivityRecorder(ctrl)
	set := artifact.FlashcardSet{Flashcards: []artifact.Flashcard{{Question: "q", Answer: "a"}}}
	study := NewFlashcardStudyCLI(set, recorder, strings.NewReader(""), &bytes.Buffer{})

	err := study.Run(context.Background(), study)

	assert.ErrorContains(t, err, "error reading input")
}

func TestQuizStudyCLI(t *testing.T) {
	disableColor(t)
	tests := []struct {
		name      string
		quiz      []artifact.QuizQuestion
		stdin     string
		wantScore int
		want      []string
	}{
		{
			name: "answers every question",
			quiz: []artifact.QuizQuestion{
				{Question: "Longest river?", Options: []string{"Amazon", "Nile"}, CorrectAnswer: 1},
				{Question: "Highest mountain?", Options: []string{"K2", "Everest", "Denali"}, CorrectAnswer: 1},
			},
			stdin:     "z\nb\na",
			wantScore: 1,
			want: []string{
				"Question 1/2: Longest river?\n  A. Amazon\n  B. Nile\n",
				"Please answer with a letter between A and B\n",
				"✅ Correct!",
				"❌ Wrong. The answer is B. Everest\n",
				"Score: 1/2\n",
			},
		},
		{
			name: "answer index outside the options",
			quiz: []artifact.QuizQuestion{
				{Question: "Broken?", Options: []string{"a", "b"}, CorrectAnswer: 5},
				{Question: "Longest river?", Options: []string{"Amazon", "Nile"}, CorrectAnswer: 1},
			},
			stdin:     "A",
			wantScore: 0,
			want: []string{
				"Question 1/2 skipped: it has no valid answer\n",
				"Question 2/2: Longest river?\n",
				"❌ Wrong. The answer is B. Nile\n",
				"Score: 0/1\n",
			},
		},
		{
			name: "question without options",
			quiz: []artifact.QuizQuestion{
				{Question: "Empty?", CorrectAnswer: 0},
			},
			stdin:     "",
			wantScore: 0,
			want: []string{
				"Question 1/1 skipped: it has no valid answer\n",
				"Score: 0/0\n",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			recorder := mock_cli.NewMockActivityRecorder(ctrl)
			recorder.EXPECT().RecordActivityNow(gomock.Any()).Return(streak.StudyStreak{Current: 2, LastDate: "2025-01-02"}, nil)
			set := artifact.QuizSet{Topic: "Geography", Quiz: tt.quiz}
			var stdout bytes.Buffer
			study := NewQuizStudyCLI(set, recorder, strings.NewReader(tt.stdin), &stdout)

			require.NoError(t, study.Run(context.Background(), study))

			assert.Equal(t, tt.wantScore, study.Score())
			got := stdout.String()
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
			assert.Contains(t, got, "Study streak: 2 days\n")
		})
	}
}

func TestParseOptionLetter(t *testing.T) {
	tests := []struct {
		input  string
		count  int
		want   int
		wantOK bool
	}{
		{input: "a", count: 2, want: 0, wantOK: true},
		{input: " C ", count: 3, want: 2, wantOK: true},
		{input: "c", count: 2, wantOK: false},
		{input: "", count: 2, wantOK: false},
		{input: "ab", count: 2, wantOK: false},
		{input: "1", count: 2, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseOptionLetter(tt.input, tt.count)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
