package components

import (
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingFixture() []model.Transaction {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC) }
	return []model.Transaction{
		{ID: "1", Name: "Salário", Amount: "5000", Type: model.TypePositive, Category: "salary", Date: day(5)},
		{ID: "2", Name: "Mercado", Amount: "320.45", Type: model.TypeNegative, Category: "food", Date: day(7)},
		{ID: "3", Name: "Freela", Amount: "1200.50", Type: model.TypePositive, Category: "salary", Date: day(10)},
		{ID: "4", Name: "Gasolina", Amount: "250", Type: model.TypeNegative, Category: "car", Date: day(8)},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(listingFixture())

	assert.True(t, decimal.RequireFromString("6200.50").Equal(s.Income))
	assert.True(t, decimal.RequireFromString("570.45").Equal(s.Expense))
	assert.True(t, decimal.RequireFromString("5630.05").Equal(s.Total()))
	assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), s.LastIncome)
	assert.Equal(t, time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC), s.LastExpense)
	assert.Equal(t, 0, s.Skipped)
}

func TestSummarize_SkipsUnparseable(t *testing.T) {
	s := Summarize([]model.Transaction{
		{Amount: "abc", Type: model.TypePositive},
		{Amount: "10", Type: "weird"},
		{Amount: "0.1", Type: model.TypePositive},
		{Amount: "0.2", Type: model.TypePositive},
	})
	assert.Equal(t, 2, s.Skipped)
	assert.Equal(t, "0.3", s.Income.String(), "decimal sums do not drift")
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "R$ 0,00"},
		{in: "5", want: "R$ 5,00"},
		{in: "12.5", want: "R$ 12,50"},
		{in: "999.999", want: "R$ 1.000,00"},
		{in: "1234.56", want: "R$ 1.234,56"},
		{in: "1234567.8", want: "R$ 1.234.567,80"},
		{in: "-320.45", want: "- R$ 320,45"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	sorted := SortNewestFirst(listingFixture())
	ids := make([]string, 0, len(sorted))
	for _, txn := range sorted {
		ids = append(ids, txn.ID)
	}
	assert.Equal(t, []string{"3", "4", "2", "1"}, ids)

	same := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tied := SortNewestFirst([]model.Transaction{{ID: "a", Date: same}, {ID: "b", Date: same}})
	assert.Equal(t, "b", tied[0].ID, "later insert wins ties")
}

func TestListingModel_Loaded(t *testing.T) {
	m := NewListingModel(themes.Default)
	assert.Contains(t, m.View(), "Carregando")

	m, cmd := m.Update(TransactionsLoadedMsg{Transactions: listingFixture()})
	assert.Nil(t, cmd)

	require.Len(t, m.Transactions(), 4)
	assert.Equal(t, "3", m.Transactions()[0].ID)

	view := m.View()
	assert.Contains(t, view, "Entradas")
	assert.Contains(t, view, "Saídas")
	assert.Contains(t, view, "Total")
	assert.Contains(t, view, "R$ 6.200,50")
	assert.Contains(t, view, "Mercado")
}

func TestListingModel_Empty(t *testing.T) {
	m := NewListingModel(themes.Default)
	m, _ = m.Update(TransactionsLoadedMsg{Transactions: []model.Transaction{}})
	assert.Contains(t, m.View(), "Nenhuma transação cadastrada")
	assert.Contains(t, m.View(), "R$ 0,00")
}

func TestListingModel_Error(t *testing.T) {
	m := NewListingModel(themes.Default)
	m, _ = m.Update(TransactionsLoadedMsg{Err: errors.New("corrupt storage")})
	assert.Contains(t, m.View(), "corrupt storage")

	m.Reload()
	assert.Contains(t, m.View(), "Carregando")
}

func TestListingModel_Resize(t *testing.T) {
	m := NewListingModel(themes.Default)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Positive(t, m.table.Height())
}
