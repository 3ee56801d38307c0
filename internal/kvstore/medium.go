package kvstore

import (
	"context"
	"sync"
)

//go:generate mockgen -source=medium.go -destination=../mocks/kvstore/mock_medium.go -package=mock_kvstore

// Medium is a persistent string key/value medium.
type Medium interface {
	// Get returns the raw value for key. found is false when the key is absent.
	Get(ctx context.Context, key Key) (value string, found bool, err error)
	// Set replaces the value for key.
	Set(ctx context.Context, key Key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key Key) error
}

// MemoryMedium keeps values in process memory. It backs session-scoped
// staging and tests, and can simulate a disabled or full medium.
type MemoryMedium struct {
	mu          sync.RWMutex
	values      map[Key]string
	quota       int
	unavailable bool
}

// NewMemoryMedium creates an empty MemoryMedium without a quota.
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{values: make(map[Key]string)}
}

// SetQuota limits the total size in bytes of keys and values. Zero disables the limit.
func (m *MemoryMedium) SetQuota(bytes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quota = bytes
}

// SetUnavailable makes every operation fail with ErrStorageUnavailable.
func (m *MemoryMedium) SetUnavailable(unavailable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unavailable = unavailable
}

func (m *MemoryMedium) Get(_ context.Context, key Key) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.unavailable {
		return "", false, ErrStorageUnavailable
	}
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryMedium) Set(_ context.Context, key Key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrStorageUnavailable
	}
	if m.quota > 0 {
		size := len(key) + len(value)
		for k, v := range m.values {
			if k != key {
				size += len(k) + len(v)
			}
		}
		if size > m.quota {
			return ErrQuotaExceeded
		}
	}
	m.values[key] = value
	return nil
}

func (m *MemoryMedium) Remove(_ context.Context, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrStorageUnavailable
	}
	delete(m.values, key)
	return nil
}

var _ Medium = (*MemoryMedium)(nil)
