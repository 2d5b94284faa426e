package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/gofinances/internal/service"
)

// Open creates the store for driver ("sqlite" or "memory") and migrates it.
func Open(ctx context.Context, driver, path string) (service.Storage, error) {
	var store service.Storage

	switch driver {
	case "sqlite":
		s, err := NewSQLiteStorage(path)
		if err != nil {
			return nil, err
		}
		store = s
	case "memory":
		store = NewMemoryStorage()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
