// Package streak tracks the number of consecutive calendar days with study activity.
package streak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/briefly/internal/clock"
	"github.com/at-ishikawa/briefly/internal/kvstore"
)

// DateLayout is the persisted format of StudyStreak.LastDate.
const DateLayout = "2006-01-02"

// StudyStreak is the persisted streak state.
type StudyStreak struct {
	Current  int    `json:"current"`
	LastDate string `json:"lastDate"`
}

// Tracker owns the StudyStreak singleton.
type Tracker struct {
	state *kvstore.Object[StudyStreak]
	clock clock.Clock
}

// NewTracker creates a Tracker persisting to store.
func NewTracker(store *kvstore.Store, clk clock.Clock) *Tracker {
	return &Tracker{
		state: kvstore.NewObject[StudyStreak](store, kvstore.KeyStudyStreak),
		clock: clk,
	}
}

// FormatDate returns the calendar date of t in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// RecordActivity counts an activity on today's calendar date and returns the resulting state.
// Several activities on the same date count once; a gap of more than one day restarts the streak.
func (t *Tracker) RecordActivity(ctx context.Context, today time.Time) (StudyStreak, error) {
	todayDate := FormatDate(today)

	current, found := t.load(ctx)
	if found && current.LastDate == todayDate {
		return current, nil
	}

	next := StudyStreak{Current: 1, LastDate: todayDate}
	if found && current.LastDate != "" {
		diff, err := daysBetween(current.LastDate, todayDate)
		if err != nil {
			slog.Default().DebugContext(ctx, "restart streak from unreadable last date",
				slog.String("lastDate", current.LastDate),
				slog.Any("error", err),
			)
		} else if diff == 1 {
			next.Current = current.Current + 1
		}
	}

	if err := t.state.Save(ctx, next); err != nil {
		return next, fmt.Errorf("save study streak: %w", err)
	}
	return next, nil
}

// RecordActivityNow records an activity at the clock's current instant.
func (t *Tracker) RecordActivityNow(ctx context.Context) (StudyStreak, error) {
	return t.RecordActivity(ctx, t.clock.Now())
}

// GetStreak returns the current streak, or 0 when none is stored or the stored value is corrupt.
func (t *Tracker) GetStreak(ctx context.Context) int {
	current, found := t.load(ctx)
	if !found {
		return 0
	}
	return current.Current
}

// Get returns the stored state and whether one exists.
func (t *Tracker) Get(ctx context.Context) (StudyStreak, bool) {
	return t.load(ctx)
}

// Reset removes the stored streak.
func (t *Tracker) Reset(ctx context.Context) error {
	if err := t.state.Remove(ctx); err != nil {
		return fmt.Errorf("remove study streak: %w", err)
	}
	return nil
}

// load treats a corrupt value as absent. The streak is cosmetic, so corruption is only logged at debug level.
func (t *Tracker) load(ctx context.Context) (StudyStreak, bool) {
	current, found, err := t.state.Load(ctx)
	if err != nil {
		var decodeErr *kvstore.DecodeError
		if errors.As(err, &decodeErr) {
			slog.Default().DebugContext(ctx, "ignore corrupt study streak", slog.Any("error", err))
		}
		return StudyStreak{}, false
	}
	if current.Current < 0 {
		current.Current = 0
	}
	return current, found
}

// daysBetween counts calendar days from one date to another using UTC midnights,
// so daylight saving transitions never change the count.
func daysBetween(from, to string) (int, error) {
	fromDate, err := time.ParseInLocation(DateLayout, from, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", from, err)
	}
	toDate, err := time.ParseInLocation(DateLayout, to, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", to, err)
	}
	return int(toDate.Sub(fromDate).Hours() / 24), nil
}
