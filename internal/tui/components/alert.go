package components

import (
	"github.com/Veraticus/gofinances/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AlertModel is a blocking message box dismissed with Enter or Esc.
type AlertModel struct {
	theme    themes.Theme
	title    string
	message  string
	width    int
	complete bool
}

// NewAlertModel creates an alert showing message.
func NewAlertModel(message string, theme themes.Theme) AlertModel {
	return AlertModel{
		title:   "Erro",
		message: message,
		theme:   theme,
		width:   40,
	}
}

// Update handles messages.
func (m AlertModel) Update(msg tea.Msg) (AlertModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", " ":
			m.complete = true
		}
	}
	return m, nil
}

// View renders the alert box.
func (m AlertModel) View() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.StatusError.Render(m.title),
		"",
		m.theme.Normal.Render(m.message),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[Enter] OK"),
	)

	return m.theme.RoundedBox.
		BorderForeground(m.theme.Error).
		Width(m.width).
		Align(lipgloss.Center).
		Render(content)
}

// Message returns the alert text.
func (m AlertModel) Message() string {
	return m.message
}

// IsComplete reports whether the alert was dismissed.
func (m AlertModel) IsComplete() bool {
	return m.complete
}

// Resize sets the box width.
func (m *AlertModel) Resize(width int) {
	m.width = min(max(width-4, 20), 60)
}
