// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/gofinances/internal/model"
)

// UpdateFunc receives the current value of a key (found is false when the key
// is absent) and returns the value to store.
type UpdateFunc func(current string, found bool) (string, error)

// Storage defines the contract for the local key-value persistence layer.
type Storage interface {
	// GetItem returns the value stored under key.
	GetItem(ctx context.Context, key string) (value string, found bool, err error)
	// SetItem replaces the value stored under key.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
	// Update performs an atomic read-modify-write of key.
	// If fn returns an error nothing is written.
	Update(ctx context.Context, key string, fn UpdateFunc) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// TransactionAppender persists a new record for a user.
type TransactionAppender interface {
	Append(ctx context.Context, userID string, txn model.Transaction) error
}

// TransactionLister reads a user's stored records in insertion order.
type TransactionLister interface {
	List(ctx context.Context, userID string) ([]model.Transaction, error)
}

// Navigator switches the visible screen.
type Navigator interface {
	Navigate(screen string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(screen string)

// Navigate calls f(screen).
func (f NavigatorFunc) Navigate(screen string) {
	f(screen)
}

// Screen names understood by navigators.
const (
	ScreenRegister = "Cadastro"
	ScreenListing  = "Listagem"
)
