package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/service"
)

// TransactionsKeyPrefix namespaces every per-user transaction list.
const TransactionsKeyPrefix = "@gofinances:transactions_user:"

// ErrCorruptStorage is returned when a stored list cannot be decoded.
var ErrCorruptStorage = errors.New("corrupt storage")

// TransactionsKey returns the storage key holding userID's list.
func TransactionsKey(userID string) string {
	return TransactionsKeyPrefix + userID
}

// TransactionGateway appends to and reads per-user transaction lists.
type TransactionGateway struct {
	store service.Storage
	locks sync.Map // user id -> *sync.Mutex
}

var (
	_ service.TransactionAppender = (*TransactionGateway)(nil)
	_ service.TransactionLister   = (*TransactionGateway)(nil)
)

// NewTransactionGateway creates a gateway over store.
func NewTransactionGateway(store service.Storage) *TransactionGateway {
	return &TransactionGateway{store: store}
}

// Append adds txn to the end of userID's list.
// The read-modify-write goes through Storage.Update and is serialized per user.
func (g *TransactionGateway) Append(ctx context.Context, userID string, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := txn.Validate(); err != nil {
		return err
	}

	mu := g.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	key := TransactionsKey(userID)
	var count int
	err := g.store.Update(ctx, key, func(current string, found bool) (string, error) {
		list, err := DecodeTransactions(current, found)
		if err != nil {
			return "", err
		}

		list = append(list, txn)
		count = len(list)
		return EncodeTransactions(list)
	})
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	slog.Debug("appended transaction",
		"user_id", userID,
		"transaction_id", txn.ID,
		"count", count)
	return nil
}

// List returns userID's transactions in insertion order.
func (g *TransactionGateway) List(ctx context.Context, userID string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	raw, found, err := g.store.GetItem(ctx, TransactionsKey(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return DecodeTransactions(raw, found)
}

func (g *TransactionGateway) userLock(userID string) *sync.Mutex {
	mu, _ := g.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// DecodeTransactions parses a stored list. An absent key or JSON null is an empty list.
func DecodeTransactions(raw string, found bool) ([]model.Transaction, error) {
	if !found || raw == "" {
		return []model.Transaction{}, nil
	}

	var list []model.Transaction
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStorage, err)
	}
	if list == nil {
		list = []model.Transaction{}
	}
	return list, nil
}

// EncodeTransactions serializes a list for storage.
func EncodeTransactions(list []model.Transaction) (string, error) {
	if list == nil {
		list = []model.Transaction{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to encode transactions: %w", err)
	}
	return string(data), nil
}
