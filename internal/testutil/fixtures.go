package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Veraticus/gofinances/internal/model"
)

var fixtureSeq atomic.Int64

// FixedTime is the timestamp given to built transactions unless overridden.
var FixedTime = time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)

// TransactionBuilder builds valid transactions for tests.
type TransactionBuilder struct {
	txn model.Transaction
}

// NewTransaction starts from a valid expense in the food category.
func NewTransaction() *TransactionBuilder {
	n := fixtureSeq.Add(1)
	return &TransactionBuilder{txn: model.Transaction{
		ID:       fmt.Sprintf("fixture-%04d", n),
		Name:     fmt.Sprintf("Fixture #%d", n),
		Amount:   "10.00",
		Type:     model.TypeNegative,
		Category: "food",
		Date:     FixedTime,
	}}
}

// WithID sets the id.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.txn.ID = id
	return b
}

// WithName sets the name.
func (b *TransactionBuilder) WithName(name string) *TransactionBuilder {
	b.txn.Name = name
	return b
}

// WithAmount sets the amount string.
func (b *TransactionBuilder) WithAmount(amount string) *TransactionBuilder {
	b.txn.Amount = amount
	return b
}

// Income marks the transaction as positive.
func (b *TransactionBuilder) Income() *TransactionBuilder {
	b.txn.Type = model.TypePositive
	return b
}

// Expense marks the transaction as negative.
func (b *TransactionBuilder) Expense() *TransactionBuilder {
	b.txn.Type = model.TypeNegative
	return b
}

// WithCategory sets the category key.
func (b *TransactionBuilder) WithCategory(key string) *TransactionBuilder {
	b.txn.Category = key
	return b
}

// WithDate sets the date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.txn.Date = date
	return b
}

// Build returns the transaction.
func (b *TransactionBuilder) Build() model.Transaction {
	return b.txn
}
