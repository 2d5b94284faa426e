package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Veraticus/gofinances/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })
	return store
}

// storesUnderTest returns every Storage implementation, freshly migrated.
func storesUnderTest(t *testing.T) map[string]service.Storage {
	t.Helper()
	return map[string]service.Storage{
		"sqlite": createTestStorage(t),
		"memory": NewMemoryStorage(),
	}
}

func TestStorage_GetSetRemove(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, found, err := store.GetItem(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.SetItem(ctx, "greeting", "olá"))
			value, found, err := store.GetItem(ctx, "greeting")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "olá", value)

			require.NoError(t, store.SetItem(ctx, "greeting", "oi"))
			value, _, err = store.GetItem(ctx, "greeting")
			require.NoError(t, err)
			assert.Equal(t, "oi", value)

			require.NoError(t, store.RemoveItem(ctx, "greeting"))
			_, found, err = store.GetItem(ctx, "greeting")
			require.NoError(t, err)
			assert.False(t, found)

			assert.NoError(t, store.RemoveItem(ctx, "greeting"), "removing an absent key is not an error")
		})
	}
}

func TestStorage_Update(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			err := store.Update(ctx, "counter", func(current string, found bool) (string, error) {
				assert.False(t, found)
				assert.Empty(t, current)
				return "1", nil
			})
			require.NoError(t, err)

			err = store.Update(ctx, "counter", func(current string, found bool) (string, error) {
				assert.True(t, found)
				return current + "1", nil
			})
			require.NoError(t, err)

			value, _, err := store.GetItem(ctx, "counter")
			require.NoError(t, err)
			assert.Equal(t, "11", value)
		})
	}
}

func TestStorage_UpdateAbortsOnError(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.SetItem(ctx, "k", "original"))

			boom := errors.New("boom")
			err := store.Update(ctx, "k", func(string, bool) (string, error) {
				return "changed", boom
			})
			assert.ErrorIs(t, err, boom)

			value, _, err := store.GetItem(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "original", value)
		})
	}
}

func TestStorage_InputValidation(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, _, err := store.GetItem(ctx, "  ")
			assert.ErrorIs(t, err, ErrEmptyString)

			assert.ErrorIs(t, store.SetItem(ctx, "", "v"), ErrEmptyString)
			assert.ErrorIs(t, store.RemoveItem(ctx, ""), ErrEmptyString)
			assert.ErrorIs(t, store.Update(ctx, "k", nil), ErrNilParameter)

			//nolint:staticcheck // exercising the nil guard
			_, _, err = store.GetItem(nil, "k")
			assert.ErrorIs(t, err, ErrNilContext)
		})
	}
}

func TestSQLiteStorage_Migrate(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Running again is a no-op.
	require.NoError(t, store.Migrate(ctx))
	version, err = store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSQLiteStorage_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "gofinances.db")
	ctx := context.Background()

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.SetItem(ctx, "k", "v"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)
	assert.Equal(t, dbPath, reopened.Path())
}

func TestSQLiteStorage_InMemory(t *testing.T) {
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.SetItem(ctx, "k", "v"))

	value, found, err := store.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, "memory", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, store)

	store, err = Open(ctx, "sqlite", filepath.Join(t.TempDir(), "db.sqlite"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStorage{}, store)
	require.NoError(t, store.Close())

	_, err = Open(ctx, "redis", "")
	assert.Error(t, err)
}
