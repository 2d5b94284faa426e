package components

import (
	"sort"
	"strings"
	"time"

	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Summary totals a list of transactions.
type Summary struct {
	LastIncome  time.Time
	LastExpense time.Time
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Skipped     int
}

// Total is income minus expenses.
func (s Summary) Total() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}

// Summarize adds up txns by type. Amounts that do not parse are counted in Skipped.
func Summarize(txns []model.Transaction) Summary {
	var s Summary
	for _, txn := range txns {
		amount, err := decimal.NewFromString(strings.TrimSpace(txn.Amount))
		if err != nil {
			s.Skipped++
			continue
		}

		switch txn.Type {
		case model.TypePositive:
			s.Income = s.Income.Add(amount)
			if txn.Date.After(s.LastIncome) {
				s.LastIncome = txn.Date
			}
		case model.TypeNegative:
			s.Expense = s.Expense.Add(amount)
			if txn.Date.After(s.LastExpense) {
				s.LastExpense = txn.Date
			}
		default:
			s.Skipped++
		}
	}
	return s
}

// FormatBRL renders an amount as Brazilian reais, e.g. "R$ 1.234,50".
func FormatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "- "
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return sign + "R$ " + b.String() + "," + frac
}

// SortNewestFirst returns a copy of txns ordered by date, newest first.
// Records with the same date keep their stored order reversed.
func SortNewestFirst(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, txn := range txns {
		out[len(txns)-1-i] = txn
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ListingModel renders the "Listagem" screen.
type ListingModel struct {
	theme        themes.Theme
	err          error
	summary      Summary
	transactions []model.Transaction
	table        table.Model
	width        int
	height       int
	loaded       bool
}

// NewListingModel creates an empty listing waiting for TransactionsLoadedMsg.
func NewListingModel(theme themes.Theme) ListingModel {
	columns := []table.Column{
		{Title: "Data", Width: 10},
		{Title: "Nome", Width: 24},
		{Title: "Categoria", Width: 16},
		{Title: "Valor", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	m := ListingModel{
		theme: theme,
		table: t,
	}
	m.Resize(80, 24)
	return m
}

// Update handles messages.
func (m ListingModel) Update(msg tea.Msg) (ListingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case TransactionsLoadedMsg:
		m.loaded = true
		m.err = msg.Err
		if msg.Err == nil {
			m.SetTransactions(msg.Transactions)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// SetTransactions replaces the displayed list.
func (m *ListingModel) SetTransactions(txns []model.Transaction) {
	m.transactions = SortNewestFirst(txns)
	m.summary = Summarize(txns)

	rows := make([]table.Row, 0, len(m.transactions))
	for _, txn := range m.transactions {
		rows = append(rows, table.Row{
			txn.Date.Local().Format("02/01/2006"),
			txn.Name,
			categoryName(txn.Category),
			signedAmount(txn),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Reload marks the listing as waiting for data again.
func (m *ListingModel) Reload() {
	m.loaded = false
	m.err = nil
}

// View renders the summary cards and the list.
func (m ListingModel) View() string {
	if !m.loaded {
		return m.theme.StatusPending.Render("Carregando transações...")
	}
	if m.err != nil {
		return m.theme.StatusError.Render("Não foi possível carregar as transações: " + m.err.Error())
	}

	cards := m.renderCards()

	var body string
	if len(m.transactions) == 0 {
		body = m.theme.StatusPending.Render("Nenhuma transação cadastrada")
	} else {
		body = m.table.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		cards,
		"",
		m.theme.Bold.Render("Listagem"),
		body,
	)
}

func (m ListingModel) renderCards() string {
	cardWidth := max((m.width-6)/3, 18)

	income := m.card("Entradas", "↑", m.theme.Income, FormatBRL(m.summary.Income),
		lastDateLabel("Última entrada", m.summary.LastIncome), m.theme.Card, cardWidth)
	expense := m.card("Saídas", "↓", m.theme.Expense, FormatBRL(m.summary.Expense),
		lastDateLabel("Última saída", m.summary.LastExpense), m.theme.Card, cardWidth)
	total := m.card("Total", "$", m.theme.Foreground, FormatBRL(m.summary.Total()),
		"", m.theme.TotalCard, cardWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, income, " ", expense, " ", total)
}

func (m ListingModel) card(title, icon string, color lipgloss.Color, amount, footer string, style lipgloss.Style, width int) string {
	header := title + " " + lipgloss.NewStyle().Foreground(color).Render(icon)
	lines := []string{header, m.theme.Bold.Render(amount)}
	if footer != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).Render(footer))
	}
	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Resize adapts the table to the available space.
func (m *ListingModel) Resize(width, height int) {
	m.width = width
	m.height = height
	// cards take 5 lines, the title 2 and the table header 2
	m.table.SetHeight(max(height-9, 3))
	m.table.SetWidth(max(width-2, 40))
}

// Transactions returns the displayed list, newest first.
func (m ListingModel) Transactions() []model.Transaction {
	return m.transactions
}

// Summary returns the totals of the displayed list.
func (m ListingModel) Summary() Summary {
	return m.summary
}

func lastDateLabel(prefix string, date time.Time) string {
	if date.IsZero() {
		return "Nenhuma transação"
	}
	return prefix + " " + date.Local().Format("02/01")
}

func categoryName(key string) string {
	if c, ok := model.FindCategory(key); ok {
		return themes.GetCategoryIcon(c.Key) + " " + c.Name
	}
	return key
}

func signedAmount(txn model.Transaction) string {
	amount, err := decimal.NewFromString(strings.TrimSpace(txn.Amount))
	if err != nil {
		return txn.Amount
	}
	if txn.Type == model.TypeNegative {
		amount = amount.Neg()
	}
	return FormatBRL(amount)
}
