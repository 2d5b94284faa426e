package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test transactions.
func createTestTransactions(count int) []model.Transaction {
	txns := make([]model.Transaction, count)
	baseTime := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		txnType := model.TypeNegative
		if i%2 == 0 {
			txnType = model.TypePositive
		}
		txns[i] = model.Transaction{
			ID:       fmt.Sprintf("txn-%03d", i+1),
			Name:     fmt.Sprintf("Transaction #%d", i+1),
			Amount:   fmt.Sprintf("%d.50", (i+1)*10),
			Type:     txnType,
			Category: model.DefaultCategories[i%len(model.DefaultCategories)].Key,
			Date:     baseTime.Add(time.Duration(i) * time.Hour),
		}
	}
	return txns
}

func TestTransactionsKey(t *testing.T) {
	assert.Equal(t, "@gofinances:transactions_user:abc-123", TransactionsKey("abc-123"))
}

func TestTransactionGateway_AppendGrowsList(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			gateway := NewTransactionGateway(store)
			txns := createTestTransactions(4)

			list, err := gateway.List(ctx, "user-1")
			require.NoError(t, err)
			assert.Empty(t, list)

			for i, txn := range txns {
				require.NoError(t, gateway.Append(ctx, "user-1", txn))

				list, err := gateway.List(ctx, "user-1")
				require.NoError(t, err)
				require.Len(t, list, i+1)
				assert.Equal(t, txn, list[len(list)-1])
			}

			list, err = gateway.List(ctx, "user-1")
			require.NoError(t, err)
			assert.Equal(t, txns, list, "insertion order is preserved")
		})
	}
}

func TestTransactionGateway_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	gateway := NewTransactionGateway(store)
	txns := createTestTransactions(3)

	require.NoError(t, gateway.Append(ctx, "alice", txns[0]))
	require.NoError(t, gateway.Append(ctx, "bob", txns[1]))
	require.NoError(t, gateway.Append(ctx, "bob", txns[2]))

	alice, err := gateway.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, alice, 1)

	bob, err := gateway.List(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, bob, 2)

	_, found, err := store.GetItem(ctx, "@gofinances:transactions_user:bob")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestTransactionGateway_CorruptStorage(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			gateway := NewTransactionGateway(store)
			require.NoError(t, store.SetItem(ctx, TransactionsKey("user-1"), "{not json"))

			err := gateway.Append(ctx, "user-1", createTestTransactions(1)[0])
			assert.ErrorIs(t, err, ErrCorruptStorage)

			_, err = gateway.List(ctx, "user-1")
			assert.ErrorIs(t, err, ErrCorruptStorage)

			raw, _, err := store.GetItem(ctx, TransactionsKey("user-1"))
			require.NoError(t, err)
			assert.Equal(t, "{not json", raw, "corrupt data is left untouched")
		})
	}
}

func TestTransactionGateway_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	gateway := NewTransactionGateway(NewMemoryStorage())
	valid := createTestTransactions(1)[0]

	assert.ErrorIs(t, gateway.Append(ctx, "", valid), ErrEmptyString)

	invalid := valid
	invalid.Category = model.PlaceholderCategoryKey
	assert.ErrorIs(t, gateway.Append(ctx, "user-1", invalid), model.ErrInvalidTransaction)

	_, err := gateway.List(ctx, " ")
	assert.ErrorIs(t, err, ErrEmptyString)
}

type failingStorage struct {
	service.Storage
	err error
}

func (f failingStorage) Update(context.Context, string, service.UpdateFunc) error {
	return f.err
}

func TestTransactionGateway_StorageFailure(t *testing.T) {
	diskErr := errors.New("disk I/O error")
	gateway := NewTransactionGateway(failingStorage{Storage: NewMemoryStorage(), err: diskErr})

	err := gateway.Append(context.Background(), "user-1", createTestTransactions(1)[0])
	assert.ErrorIs(t, err, diskErr)
}

func TestTransactionGateway_ConcurrentAppendsKeepEveryRecord(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			gateway := NewTransactionGateway(store)
			txns := createTestTransactions(25)

			var wg sync.WaitGroup
			for _, txn := range txns {
				wg.Add(1)
				go func(txn model.Transaction) {
					defer wg.Done()
					assert.NoError(t, gateway.Append(ctx, "user-1", txn))
				}(txn)
			}
			wg.Wait()

			list, err := gateway.List(ctx, "user-1")
			require.NoError(t, err)
			assert.Len(t, list, len(txns))
			assert.ElementsMatch(t, txns, list)
		})
	}
}

func TestEncodeDecodeTransactions_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		list []model.Transaction
	}{
		{name: "empty", list: []model.Transaction{}},
		{name: "single", list: createTestTransactions(1)},
		{name: "many", list: createTestTransactions(12)},
		{name: "unicode names", list: []model.Transaction{{
			ID:       "id-ç",
			Name:     "Pão de queijo ☕",
			Amount:   "7.25",
			Type:     model.TypeNegative,
			Category: "food",
			Date:     time.Date(2024, 2, 29, 23, 59, 59, 123456789, time.UTC),
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := EncodeTransactions(tt.list)
			require.NoError(t, err)

			got, err := DecodeTransactions(raw, true)
			require.NoError(t, err)
			assert.Equal(t, tt.list, got)
		})
	}
}

func TestDecodeTransactions_EmptyForms(t *testing.T) {
	for _, raw := range []string{"", "null", "[]"} {
		got, err := DecodeTransactions(raw, true)
		require.NoError(t, err, raw)
		assert.Empty(t, got, raw)
		assert.NotNil(t, got, raw)
	}

	got, err := DecodeTransactions("ignored", false)
	require.NoError(t, err)
	assert.Empty(t, got)

	raw, err := EncodeTransactions(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}
