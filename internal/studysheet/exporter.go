// Package studysheet writes saved artifacts as printable markdown and PDF files.
package studysheet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/assets"
	"github.com/at-ishikawa/briefly/internal/pdf"
)

type Exporter struct {
	templatePath    string
	outputDirectory string
	paperSize       string
	stdout          io.Writer
}

func NewExporter(templatePath, outputDirectory string, stdout io.Writer) *Exporter {
	return &Exporter{
		templatePath:    templatePath,
		outputDirectory: outputDirectory,
		paperSize:       pdf.PaperA4,
		stdout:          stdout,
	}
}

// FromFlashcardSet converts a flashcard set into template data.
func FromFlashcardSet(set artifact.FlashcardSet) assets.StudySheet {
	cards := make([]assets.StudySheetCard, 0, len(set.Flashcards))
	for _, card := range set.Flashcards {
		cards = append(cards, assets.StudySheetCard{Question: card.Question, Answer: card.Answer})
	}
	return assets.StudySheet{
		Title:      titleOr(set.Topic, "Untitled flashcards"),
		Kind:       "Flashcards",
		CreatedAt:  set.CreatedAt.Time,
		Flashcards: cards,
	}
}

// FromQuizSet converts a quiz set into template data.
func FromQuizSet(set artifact.QuizSet) assets.StudySheet {
	questions := make([]assets.StudySheetQuestion, 0, len(set.Quiz))
	for _, q := range set.Quiz {
		questions = append(questions, assets.StudySheetQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return assets.StudySheet{
		Title:      titleOr(set.Topic, "Untitled quiz"),
		Kind:       "Quiz",
		Difficulty: set.Difficulty,
		CreatedAt:  set.CreatedAt.Time,
		Questions:  questions,
	}
}

func (exporter Exporter) ExportFlashcardSet(set artifact.FlashcardSet, generatePDF bool) (string, error) {
	return exporter.export("flashcards-"+set.ID, FromFlashcardSet(set), generatePDF)
}

func (exporter Exporter) ExportQuizSet(set artifact.QuizSet, generatePDF bool) (string, error) {
	return exporter.export("quiz-"+set.ID, FromQuizSet(set), generatePDF)
}

func (exporter Exporter) export(name string, sheet assets.StudySheet, generatePDF bool) (string, error) {
	if err := os.MkdirAll(exporter.outputDirectory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", exporter.outputDirectory, err)
	}

	outputFilename := filepath.Join(exporter.outputDirectory, fileName(name, sheet.Title)+".md")
	output, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", outputFilename, err)
	}
	defer func() {
		_ = output.Close()
	}()

	if err := assets.WriteStudySheet(output, exporter.templatePath, sheet); err != nil {
		return "", fmt.Errorf("assets.WriteStudySheet(%s, %s) > %w", outputFilename, exporter.templatePath, err)
	}
	fmt.Fprintf(exporter.stdout, "Study sheet written to: %s\n", outputFilename)

	if !generatePDF {
		return outputFilename, nil
	}
	pdfPath, err := pdf.ConvertMarkdownToPDF(outputFilename, exporter.paperSize)
	if err != nil {
		return "", fmt.Errorf("ConvertMarkdownToPDF(%s) > %w", outputFilename, err)
	}
	fmt.Fprintf(exporter.stdout, "PDF generated at: %s\n", pdfPath)
	return pdfPath, nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

func fileName(prefix, title string) string {
	slug := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		return prefix
	}
	return prefix + "-" + slug
}

func titleOr(topic, fallback string) string {
	if topic == "" {
		return fallback
	}
	return topic
}
