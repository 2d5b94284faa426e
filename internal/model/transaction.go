// Package model defines the core domain models used throughout the application.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TransactionType indicates whether a transaction adds or removes money.
type TransactionType string

const (
	// TypePositive represents income.
	TypePositive TransactionType = "positive"
	// TypeNegative represents an expense.
	TypeNegative TransactionType = "negative"
)

// Model validation errors.
var (
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TypePositive || t == TypeNegative
}

// Label returns the button title used for the type.
func (t TransactionType) Label() string {
	switch t {
	case TypePositive:
		return "Income"
	case TypeNegative:
		return "Outcome"
	default:
		return ""
	}
}

// ParseTransactionType accepts the stored values plus the income/outcome aliases.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive", "income", "up":
		return TypePositive, nil
	case "negative", "outcome", "expense", "down":
		return TypeNegative, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// Transaction is a single income or expense entry registered by a user.
// Records are immutable once stored.
type Transaction struct {
	Date     time.Time       `json:"date"`
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   string          `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
}

// Validate checks the fields every stored record must carry.
func (t *Transaction) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil transaction", ErrInvalidTransaction)
	}
	if t.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTransaction)
	}
	if strings.TrimSpace(t.Amount) == "" {
		return fmt.Errorf("%w: missing amount", ErrInvalidTransaction)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: %w %q", ErrInvalidTransaction, ErrInvalidType, t.Type)
	}
	if t.Category == "" || t.Category == PlaceholderCategoryKey {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	return nil
}
