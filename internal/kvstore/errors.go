package kvstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var (
	// ErrStorageUnavailable is returned by a medium that is disabled or cannot accept writes.
	ErrStorageUnavailable = errors.New("storage medium unavailable")
	// ErrQuotaExceeded is returned when a write does not fit in the medium.
	ErrQuotaExceeded = fmt.Errorf("storage quota exceeded: %w", ErrStorageUnavailable)

	errNotArray = errors.New("stored value is not a JSON array")
)

// DecodeError reports a stored value that could not be decoded into the expected shape.
type DecodeError struct {
	Key Key
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ReadError reports a medium failure while reading a key.
type ReadError struct {
	Key Key
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError reports a medium failure while writing or removing a key.
type WriteError struct {
	Key Key
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ErrorReporter receives non-fatal store errors.
type ErrorReporter interface {
	Report(ctx context.Context, err error)
}

// ReporterFunc adapts a function to ErrorReporter.
type ReporterFunc func(ctx context.Context, err error)

func (f ReporterFunc) Report(ctx context.Context, err error) {
	f(ctx, err)
}

// LogReporter writes store errors to a slog logger. A nil Logger uses slog.Default().
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) Report(ctx context.Context, err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.WarnContext(ctx, "keyed collection store error", slog.Any("error", err))
}

// RecordingReporter keeps every reported error. It is safe for concurrent use.
type RecordingReporter struct {
	mu     sync.Mutex
	errors []error
}

func (r *RecordingReporter) Report(_ context.Context, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, err)
}

// Errors returns a copy of the reported errors.
func (r *RecordingReporter) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errors...)
}
