// Package backend calls the HTTP generation API.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/briefly/internal/config"
	"github.com/at-ishikawa/briefly/internal/generation"
)

const (
	flashcardsPath = "/flashcards/generate"
	quizPath       = "/quiz/generate"
)

// StatusError is a non-2xx response of the generation API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

// ErrEmptyResult is returned when the API answers without any generated item.
var ErrEmptyResult = errors.New("generation returned no items")

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func NewClient(cfg config.GenerationConfig) *Client {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Client{
		httpClient:       client,
		maxRetryAttempts: cfg.MaxRetries,
		retryDelay:       100 * time.Millisecond,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// isRetryableError reports whether err is worth another attempt:
// transport failures, rate limiting and server errors.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= http.StatusInternalServerError
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func (client *Client) do(ctx context.Context, name string, call func() error) error {
	return retry.Do(
		func() error {
			err := call()
			if err != nil && !isRetryableError(err) {
				slog.Default().Debug("Non-retryable error encountered",
					slog.String("call", name),
					slog.Any("error", err),
				)
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying generation API call",
				slog.String("call", name),
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

// GenerateFlashcards implements the generation.Client interface
func (client *Client) GenerateFlashcards(ctx context.Context, params generation.FlashcardsRequest) (generation.FlashcardsResponse, error) {
	if params.Count <= 0 {
		params.Count = generation.DefaultFlashcardCount
	}

	var result generation.FlashcardsResponse
	if err := client.do(ctx, "GenerateFlashcards", func() error {
		var body generation.FlashcardsResponse
		if err := client.post(ctx, flashcardsPath, params, &body); err != nil {
			return err
		}
		result = body
		return nil
	}); err != nil {
		return generation.FlashcardsResponse{}, fmt.Errorf("generate flashcards for %q: %w", params.Topic, err)
	}
	if len(result.Flashcards) == 0 {
		return generation.FlashcardsResponse{}, fmt.Errorf("generate flashcards for %q: %w", params.Topic, ErrEmptyResult)
	}
	return result, nil
}

// GenerateQuiz implements the generation.Client interface
func (client *Client) GenerateQuiz(ctx context.Context, params generation.QuizRequest) (generation.QuizResponse, error) {
	if params.NumberOfQuestions <= 0 {
		params.NumberOfQuestions = generation.DefaultQuestionCount
	}

	var result generation.QuizResponse
	if err := client.do(ctx, "GenerateQuiz", func() error {
		var body generation.QuizResponse
		if err := client.post(ctx, quizPath, params, &body); err != nil {
			return err
		}
		result = body
		return nil
	}); err != nil {
		return generation.QuizResponse{}, fmt.Errorf("generate quiz for %q: %w", params.Topic, err)
	}
	if len(result.Quiz) == 0 {
		return generation.QuizResponse{}, fmt.Errorf("generate quiz for %q: %w", params.Topic, ErrEmptyResult)
	}
	return result, nil
}

func (client *Client) post(ctx context.Context, path string, body any, result any) error {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}
	return nil
}
