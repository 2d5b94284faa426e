package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/Veraticus/gofinances/internal/service"
)

// MemoryStorage is a process-local Storage used by tests and the memory driver.
type MemoryStorage struct {
	items map[string]string
	mu    sync.Mutex
}

var _ service.Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

// GetItem returns the value stored under key.
func (m *MemoryStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := validateContext(ctx); err != nil {
		return "", false, err
	}
	if err := validateString(key, "key"); err != nil {
		return "", false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.items[key]
	return value, ok, nil
}

// SetItem replaces the value stored under key.
func (m *MemoryStorage) SetItem(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// RemoveItem deletes key.
func (m *MemoryStorage) RemoveItem(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Update runs fn while holding the store lock.
func (m *MemoryStorage) Update(ctx context.Context, key string, fn service.UpdateFunc) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("%w: fn", ErrNilParameter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, found := m.items[key]
	next, err := fn(current, found)
	if err != nil {
		return err
	}
	m.items[key] = next
	return nil
}

// Migrate is a no-op for the memory store.
func (m *MemoryStorage) Migrate(_ context.Context) error {
	return nil
}

// Close is a no-op for the memory store.
func (m *MemoryStorage) Close() error {
	return nil
}
