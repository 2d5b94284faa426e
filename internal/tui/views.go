package tui

import (
	"github.com/Veraticus/gofinances/internal/service"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.current {
	case service.ScreenListing:
		body = m.listing.View()
	default:
		body = m.form.View()
	}

	return m.wrapWithBorder(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		"",
		body,
	))
}

// renderHeader renders the coloured title bar of the active screen.
func (m Model) renderHeader() string {
	title := m.current
	if m.current == service.ScreenListing && m.user.Name != "" {
		title = "Olá, " + m.user.Name + "  ·  " + title
	}
	return m.theme.Header.Width(max(m.width-6, 20)).Render(title)
}

// wrapWithBorder adds a border and the help line around content.
func (m Model) wrapWithBorder(content string) string {
	helpLine := m.help.View(m.keymap.HelpFor(m.current))

	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		"",
		helpLine,
	)

	return m.theme.RoundedBox.
		Padding(0, 1).
		MaxWidth(m.width).
		Render(fullContent)
}
