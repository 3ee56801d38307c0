package artifact

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/briefly/internal/validation"
)

// ErrInvalidArtifact is wrapped by every ValidationError.
var ErrInvalidArtifact = errors.New("invalid artifact")

// ValidationError lists the problems of a rejected payload.
type ValidationError struct {
	Kind     Kind
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, strings.Join(e.Messages, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArtifact
}

type payloadValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

var loadPayloadValidator = sync.OnceValues(func() (*payloadValidator, error) {
	validate, trans, err := validation.New("json")
	if err != nil {
		return nil, err
	}
	if err := validation.RegisterTranslatedValidation(validate, trans, "answerindex", isAnswerIndex, "{0} must be an index into options"); err != nil {
		return nil, err
	}
	return &payloadValidator{validate: validate, translator: trans}, nil
})

// isAnswerIndex checks CorrectAnswer against the Options of the same question.
func isAnswerIndex(fl validator.FieldLevel) bool {
	options := fl.Parent().FieldByName("Options")
	if !options.IsValid() {
		return false
	}
	index := fl.Field().Int()
	return index >= 0 && index < int64(options.Len())
}

func validatePayload(kind Kind, payload any) error {
	v, err := loadPayloadValidator()
	if err != nil {
		return fmt.Errorf("create validator: %w", err)
	}
	if err := v.validate.Struct(payload); err != nil {
		return &ValidationError{Kind: kind, Messages: validation.Messages(err, v.translator)}
	}
	return nil
}
