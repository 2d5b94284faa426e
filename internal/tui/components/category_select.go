package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CategorySelectModel is the category picker modal.
type CategorySelectModel struct {
	theme      themes.Theme
	categories []model.Category
	current    model.CategorySelection
	result     model.CategorySelection
	cursor     int
	width      int
	height     int
	complete   bool
	chosen     bool
}

// NewCategorySelectModel opens the picker on the current selection.
func NewCategorySelectModel(categories []model.Category, current model.CategorySelection, theme themes.Theme) CategorySelectModel {
	m := CategorySelectModel{
		categories: categories,
		current:    current,
		result:     current,
		theme:      theme,
		width:      40,
	}

	for i, c := range categories {
		if c.Key == current.Key() {
			m.cursor = i
			break
		}
	}
	return m
}

// Update handles messages.
func (m CategorySelectModel) Update(msg tea.Msg) (CategorySelectModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if len(m.categories) == 0 {
			if msg.String() == "esc" || msg.String() == "enter" {
				m.complete = true
			}
			return m, nil
		}

		switch msg.String() {
		case "j", "down", "tab":
			m.cursor = (m.cursor + 1) % len(m.categories)

		case "k", "up", "shift+tab":
			m.cursor = (m.cursor + len(m.categories) - 1) % len(m.categories)

		case "enter", " ":
			m.result = model.Selected(m.categories[m.cursor])
			m.chosen = true
			m.complete = true

		case "esc":
			m.result = m.current
			m.complete = true

		default:
			// 1-9 jump straight to an entry
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				if idx := int(s[0] - '1'); idx < len(m.categories) {
					m.cursor = idx
					m.result = model.Selected(m.categories[idx])
					m.chosen = true
					m.complete = true
				}
			}
		}

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// View renders the modal.
func (m CategorySelectModel) View() string {
	title := m.theme.Title.Render("Categoria")

	lines := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		marker := "  "
		if c.Key == m.current.Key() {
			marker = "✓ "
		}

		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("●")
		line := fmt.Sprintf("%s%d. %s %s %s", marker, i+1, swatch, themes.GetCategoryIcon(c.Key), c.Name)
		if i == m.cursor {
			line = m.theme.Selected.Render(line)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, m.theme.StatusPending.Render("Nenhuma categoria disponível"))
	}

	help := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[↑↓] Navegar | [Enter] Selecionar | [Esc] Fechar")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		strings.Join(lines, "\n"),
		"",
		help,
	)

	return m.theme.RoundedBox.Width(m.width).Render(content)
}

// IsComplete reports whether the modal was closed.
func (m CategorySelectModel) IsComplete() bool {
	return m.complete
}

// GetResult returns the selection to keep and whether the user picked an entry.
// After Esc it returns the selection the modal was opened with.
func (m CategorySelectModel) GetResult() (model.CategorySelection, bool) {
	return m.result, m.chosen
}

// Resize sets the modal width.
func (m *CategorySelectModel) Resize(width, height int) {
	m.width = min(max(width-4, 30), 60)
	m.height = height
}
