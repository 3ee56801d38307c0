// Package workflow drives saving one generated artifact:
// Idle -> Saving -> Success -> Saved.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/at-ishikawa/briefly/internal/clock"
	"github.com/at-ishikawa/briefly/internal/config"
	"github.com/at-ishikawa/briefly/internal/kvstore"
)

//go:generate mockgen -source=workflow.go -destination=../mocks/workflow/mock_workflow.go -package=mock_workflow

type State int

const (
	Idle State = iota
	Saving
	Success
	Saved
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Saving:
		return "saving"
	case Success:
		return "success"
	case Saved:
		return "saved"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	// ErrSaveInProgress rejects a save while another one is saving or showing success.
	ErrSaveInProgress = errors.New("save already in progress")
	// ErrAlreadySaved rejects a save of an artifact that is already persisted.
	ErrAlreadySaved = errors.New("artifact already saved")
)

// Creator persists a new artifact and returns it with its assigned id.
type Creator[T any] interface {
	Create(ctx context.Context, payload T) (T, error)
}

// Validator is implemented by creators that can reject a payload before
// anything is changed.
type Validator[T any] interface {
	Validate(payload T) error
}

// Updater is implemented by creators that can persist an artifact again under
// the id it was already created with.
type Updater[T any] interface {
	Update(ctx context.Context, artifact T) (T, error)
}

// StagingCleaner discards the unsaved copy of the artifact.
type StagingCleaner interface {
	Clear(ctx context.Context) error
}

type identified[T any] interface {
	*T
	GetID() string
}

// Workflow saves one artifact at most once.
type Workflow[T any, PT identified[T]] struct {
	creator Creator[T]
	staging StagingCleaner
	clock   clock.Clock
	config  config.WorkflowConfig
	payload T

	mu      sync.Mutex
	state   State
	savedID string
	timer   clock.Timer
	// unsaved holds an artifact created in the session whose write failed.
	unsaved PT

	// notifyMu keeps listeners seeing transitions in order.
	notifyMu  sync.Mutex
	listeners []func(from, to State)
}

type Option[T any, PT identified[T]] func(*Workflow[T, PT])

// WithStaging clears staging when saving starts.
func WithStaging[T any, PT identified[T]](staging StagingCleaner) Option[T, PT] {
	return func(w *Workflow[T, PT]) {
		w.staging = staging
	}
}

// New creates an Idle workflow for payload.
func New[T any, PT identified[T]](creator Creator[T], payload T, clk clock.Clock, cfg config.WorkflowConfig, opts ...Option[T, PT]) *Workflow[T, PT] {
	w := &Workflow[T, PT]{
		creator: creator,
		clock:   clk,
		config:  cfg,
		payload: payload,
		state:   Idle,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// OnTransition registers f to be called on every state change.
// f must not call Save.
func (w *Workflow[T, PT]) OnTransition(f func(from, to State)) {
	w.notifyMu.Lock()
	defer w.notifyMu.Unlock()
	w.listeners = append(w.listeners, f)
}

func (w *Workflow[T, PT]) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// SavedID returns the id the artifact was created with, or "" before success.
func (w *Workflow[T, PT]) SavedID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.savedID
}

// Save persists the payload. A payload the creator rejects as invalid leaves
// the workflow Idle with staging untouched. Otherwise staging is cleared on
// entering Saving. When persisting fails the workflow returns to Idle and Save
// can be retried; an artifact whose write failed is retried under its id.
func (w *Workflow[T, PT]) Save(ctx context.Context) (T, error) {
	var zero T

	w.mu.Lock()
	switch w.state {
	case Saving, Success:
		w.mu.Unlock()
		return zero, ErrSaveInProgress
	case Saved:
		w.mu.Unlock()
		return zero, ErrAlreadySaved
	}
	if validator, ok := w.creator.(Validator[T]); ok && w.unsaved == nil {
		if err := validator.Validate(w.payload); err != nil {
			w.mu.Unlock()
			slog.Default().Warn("rejected invalid artifact",
				slog.Any("error", err),
			)
			return zero, fmt.Errorf("save artifact: %w", err)
		}
	}
	unsaved := w.unsaved
	w.transitionLocked(Saving)

	if w.staging != nil {
		if err := w.staging.Clear(ctx); err != nil {
			slog.Default().Warn("failed to clear staged artifact",
				slog.Any("error", err),
			)
		}
	}

	if err := w.wait(ctx, w.config.SavingDelay); err != nil {
		w.mu.Lock()
		w.transitionLocked(Idle)
		return zero, err
	}

	created, err := w.persist(ctx, unsaved)
	if err != nil {
		slog.Default().Error("failed to save artifact",
			slog.Any("error", err),
		)
		w.mu.Lock()
		var writeErr *kvstore.WriteError
		if errors.As(err, &writeErr) && PT(&created).GetID() != "" {
			w.unsaved = &created
		} else {
			w.unsaved = nil
		}
		w.transitionLocked(Idle)
		return zero, fmt.Errorf("save artifact: %w", err)
	}

	w.mu.Lock()
	w.unsaved = nil
	w.savedID = PT(&created).GetID()
	if w.config.SuccessWindow <= 0 {
		w.transitionLocked(Success)
		w.mu.Lock()
		w.transitionLocked(Saved)
		return created, nil
	}
	w.timer = w.clock.AfterFunc(w.config.SuccessWindow, w.settle)
	w.transitionLocked(Success)
	return created, nil
}

// persist creates the payload, or writes unsaved again when an earlier
// attempt already created it.
func (w *Workflow[T, PT]) persist(ctx context.Context, unsaved PT) (T, error) {
	if updater, ok := w.creator.(Updater[T]); ok && unsaved != nil {
		return updater.Update(ctx, *unsaved)
	}
	return w.creator.Create(ctx, w.payload)
}

// Close abandons a pending success window. The workflow stays in its current state.
func (w *Workflow[T, PT]) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Workflow[T, PT]) settle() {
	w.mu.Lock()
	if w.state != Success {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.transitionLocked(Saved)
}

// transitionLocked changes the state, releases mu and notifies listeners.
func (w *Workflow[T, PT]) transitionLocked(to State) {
	from := w.state
	w.state = to
	w.notifyMu.Lock()
	w.mu.Unlock()
	defer w.notifyMu.Unlock()

	slog.Default().Debug("save workflow transition",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
	for _, f := range w.listeners {
		f(from, to)
	}
}

func (w *Workflow[T, PT]) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	done := make(chan struct{})
	timer := w.clock.AfterFunc(d, func() { close(done) })
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}
}
