// Package testutil provides test helpers for storage-backed tests.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/service"
	"github.com/Veraticus/gofinances/internal/storage"
)

// TestStore bundles a migrated store with a transaction gateway over it.
type TestStore struct {
	Storage service.Storage
	Gateway *storage.TransactionGateway
	t       *testing.T
}

// SetupTestStore creates a migrated in-memory SQLite store.
// It is closed automatically when the test ends.
//
// Example:
//
//	store := testutil.SetupTestStore(t)
//	store.Seed("user-1", testutil.NewTransaction().WithName("Aluguel").Build())
func SetupTestStore(t *testing.T) *TestStore {
	t.Helper()

	sqlite, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := sqlite.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		sqlite.Close()
	})

	return &TestStore{
		Storage: sqlite,
		Gateway: storage.NewTransactionGateway(sqlite),
		t:       t,
	}
}

// Seed appends txns to userID's list or fails the test.
func (s *TestStore) Seed(userID string, txns ...model.Transaction) {
	s.t.Helper()
	ctx := context.Background()
	for _, txn := range txns {
		if err := s.Gateway.Append(ctx, userID, txn); err != nil {
			s.t.Fatalf("failed to seed transaction %q: %v", txn.ID, err)
		}
	}
}

// MustList returns userID's stored list or fails the test.
func (s *TestStore) MustList(userID string) []model.Transaction {
	s.t.Helper()
	list, err := s.Gateway.List(context.Background(), userID)
	if err != nil {
		s.t.Fatalf("failed to list transactions: %v", err)
	}
	return list
}

// SetRaw writes a raw value under userID's list key, for corrupt-data tests.
func (s *TestStore) SetRaw(userID, raw string) {
	s.t.Helper()
	if err := s.Storage.SetItem(context.Background(), storage.TransactionsKey(userID), raw); err != nil {
		s.t.Fatalf("failed to write raw value: %v", err)
	}
}
