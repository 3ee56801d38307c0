// Package kvstore persists JSON-encoded collections under named keys of a
// string key/value medium. Decode failures degrade to empty values and are
// reported, never returned.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Store reads and writes raw values through a Medium. Writes the medium
// rejects are kept in a process-local overlay so the rest of the session keeps
// observing them.
type Store struct {
	medium   Medium
	reporter ErrorReporter

	mu      sync.Mutex
	overlay map[Key]overlayEntry
}

type overlayEntry struct {
	value   string
	removed bool
}

// Option configures a Store.
type Option func(*Store)

// WithReporter sets the reporter for non-fatal errors. The default logs through slog.
func WithReporter(reporter ErrorReporter) Option {
	return func(s *Store) {
		s.reporter = reporter
	}
}

// New creates a Store over medium.
func New(medium Medium, opts ...Option) *Store {
	s := &Store{
		medium:   medium,
		reporter: LogReporter{},
		overlay:  make(map[Key]overlayEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) report(ctx context.Context, err error) {
	if s.reporter != nil {
		s.reporter.Report(ctx, err)
	}
}

// read returns the raw value for key, preferring the overlay. Medium read
// failures are reported and treated as an absent key.
func (s *Store) read(ctx context.Context, key Key) (string, bool) {
	s.mu.Lock()
	entry, ok := s.overlay[key]
	s.mu.Unlock()
	if ok {
		return entry.value, !entry.removed
	}

	value, found, err := s.medium.Get(ctx, key)
	if err != nil {
		s.report(ctx, &ReadError{Key: key, Err: err})
		return "", false
	}
	return value, found
}

func (s *Store) write(ctx context.Context, key Key, value string) error {
	if err := s.medium.Set(ctx, key, value); err != nil {
		s.mu.Lock()
		s.overlay[key] = overlayEntry{value: value}
		s.mu.Unlock()

		writeErr := &WriteError{Key: key, Err: err}
		s.report(ctx, writeErr)
		return writeErr
	}

	s.mu.Lock()
	delete(s.overlay, key)
	s.mu.Unlock()
	return nil
}

// GetString returns the plain string stored under key.
func (s *Store) GetString(ctx context.Context, key Key) (string, bool) {
	return s.read(ctx, key)
}

// SetString stores a plain string under key.
func (s *Store) SetString(ctx context.Context, key Key, value string) error {
	return s.write(ctx, key, value)
}

// Remove deletes key.
func (s *Store) Remove(ctx context.Context, key Key) error {
	if err := s.medium.Remove(ctx, key); err != nil {
		s.mu.Lock()
		s.overlay[key] = overlayEntry{removed: true}
		s.mu.Unlock()

		writeErr := &WriteError{Key: key, Err: err}
		s.report(ctx, writeErr)
		return writeErr
	}

	s.mu.Lock()
	delete(s.overlay, key)
	s.mu.Unlock()
	return nil
}

// Collection is a JSON array of T stored under one key.
type Collection[T any] struct {
	store *Store
	key   Key
}

// NewCollection binds a collection of T to key.
func NewCollection[T any](store *Store, key Key) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key returns the key the collection is stored under.
func (c *Collection[T]) Key() Key {
	return c.key
}

// Load returns the stored items. An absent key yields an empty slice; a value
// that is not a JSON array of T yields an empty slice and one reported DecodeError.
func (c *Collection[T]) Load(ctx context.Context) []T {
	raw, ok := c.store.read(ctx, c.key)
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.store.report(ctx, &DecodeError{Key: c.key, Err: err})
		return []T{}
	}
	if items == nil {
		c.store.report(ctx, &DecodeError{Key: c.key, Err: errNotArray})
		return []T{}
	}
	return items
}

// Save replaces the stored items.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json.Marshal(%s) > %w", c.key, err)
	}
	return c.store.write(ctx, c.key, string(raw))
}

// Object is a single JSON value of T stored under one key.
type Object[T any] struct {
	store *Store
	key   Key
}

// NewObject binds a singleton T to key.
func NewObject[T any](store *Store, key Key) *Object[T] {
	return &Object[T]{store: store, key: key}
}

// Key returns the key the object is stored under.
func (o *Object[T]) Key() Key {
	return o.key
}

// Load returns the stored value and whether one exists. A value that cannot
// be decoded is returned as a DecodeError and is not reported, so callers
// decide whether corruption is worth surfacing.
func (o *Object[T]) Load(ctx context.Context) (T, bool, error) {
	var value T
	raw, ok := o.store.read(ctx, o.key)
	if !ok {
		return value, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		var zero T
		return zero, false, &DecodeError{Key: o.key, Err: err}
	}
	return value, true, nil
}

// Save replaces the stored value.
func (o *Object[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json.Marshal(%s) > %w", o.key, err)
	}
	return o.store.write(ctx, o.key, string(raw))
}

// Remove deletes the stored value.
func (o *Object[T]) Remove(ctx context.Context) error {
	return o.store.Remove(ctx, o.key)
}
