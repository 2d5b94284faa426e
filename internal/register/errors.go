package register

import (
	"errors"

	"github.com/Veraticus/gofinances/internal/common"
)

// Submission errors. They reach callers wrapped in a *common.UserError
// carrying the alert text.
var (
	ErrMissingTransactionType = errors.New("transaction type not selected")
	ErrMissingCategory        = errors.New("category not selected")
	ErrPersistence            = errors.New("failed to persist transaction")
	ErrSubmissionInFlight     = errors.New("submission already in progress")
)

// Alert texts.
const (
	AlertMissingTransactionType = "Selecione o tipo da transação"
	AlertMissingCategory        = "Selecione a categoria"
	AlertPersistence            = "Não foi possível salvar"
)

// AlertMessage returns the alert text for err. Field validation errors have none.
func AlertMessage(err error) (string, bool) {
	return common.UserMessage(err)
}
