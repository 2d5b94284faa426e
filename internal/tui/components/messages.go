package components

import "github.com/Veraticus/gofinances/internal/model"

// TransactionsLoadedMsg carries the user's stored list to the listing.
type TransactionsLoadedMsg struct {
	Err          error
	Transactions []model.Transaction
}

// SubmitResultMsg reports the outcome of a background save.
type SubmitResultMsg struct {
	Err         error
	Transaction model.Transaction
}
