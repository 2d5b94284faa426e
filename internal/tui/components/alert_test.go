package components

import (
	"testing"

	"github.com/Veraticus/gofinances/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestAlertModel_Dismiss(t *testing.T) {
	tests := []struct {
		name         string
		msg          tea.KeyMsg
		wantComplete bool
	}{
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, wantComplete: true},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, wantComplete: true},
		{name: "other key", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, wantComplete: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAlertModel("Selecione a categoria", themes.Default)
			updated, cmd := m.Update(tt.msg)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantComplete, updated.IsComplete())
		})
	}
}

func TestAlertModel_View(t *testing.T) {
	m := NewAlertModel("Não foi possível salvar", themes.Default)
	m.Resize(80)

	view := m.View()
	assert.Contains(t, view, "Não foi possível salvar")
	assert.Contains(t, view, "OK")
	assert.Equal(t, "Não foi possível salvar", m.Message())
}
