package assets

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"
	"time"
)

const studySheetTemplateName = "study-sheet.md.go.tmpl"

//go:embed templates/study-sheet.md.go.tmpl
var fallbackStudySheetTemplate string

// StudySheet is the template data of one printable flashcard or quiz set.
type StudySheet struct {
	Title      string
	Kind       string
	Difficulty string
	CreatedAt  time.Time
	Flashcards []StudySheetCard
	Questions  []StudySheetQuestion
}

type StudySheetCard struct {
	Question string
	Answer   string
}

// StudySheetQuestion is a multiple choice question; CorrectAnswer indexes Options.
type StudySheetQuestion struct {
	Question      string
	Options       []string
	CorrectAnswer int
}

func ParseStudySheetTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, studySheetTemplateName, fallbackStudySheetTemplate)
}

func WriteStudySheet(output io.Writer, templatePath string, sheet StudySheet) error {
	tmpl, err := ParseStudySheetTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseStudySheetTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, sheet); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
