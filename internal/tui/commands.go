package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/gofinances/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// loadTransactions reads the user's list from storage.
func (m Model) loadTransactions() tea.Cmd {
	store := m.store
	userID := m.user.ID
	parent := m.ctx
	timeout := m.config.LoadTimeout

	return func() tea.Msg {
		if store == nil {
			return components.TransactionsLoadedMsg{Err: fmt.Errorf("storage not configured")}
		}

		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		txns, err := store.List(ctx, userID)
		return components.TransactionsLoadedMsg{Transactions: txns, Err: err}
	}
}
