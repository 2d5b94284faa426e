package components

import (
	"testing"

	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestNewCategorySelectModel_CursorOnCurrent(t *testing.T) {
	car, _ := model.FindCategory("car")

	m := NewCategorySelectModel(model.DefaultCategories, model.Selected(car), themes.Default)
	assert.Equal(t, 3, m.cursor)

	m = NewCategorySelectModel(model.DefaultCategories, model.Unselected(), themes.Default)
	assert.Equal(t, 0, m.cursor)
}

func TestCategorySelectModel_Navigation(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		startCursor int
		wantCursor  int
	}{
		{name: "down", key: "j", startCursor: 0, wantCursor: 1},
		{name: "down arrow", key: "down", startCursor: 2, wantCursor: 3},
		{name: "down wraps", key: "j", startCursor: 5, wantCursor: 0},
		{name: "up", key: "k", startCursor: 2, wantCursor: 1},
		{name: "up wraps", key: "up", startCursor: 0, wantCursor: 5},
		{name: "tab moves down", key: "tab", startCursor: 1, wantCursor: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCategorySelectModel(model.DefaultCategories, model.Unselected(), themes.Default)
			m.cursor = tt.startCursor

			updated, cmd := m.Update(keyMsg(tt.key))

			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantCursor, updated.cursor)
			assert.False(t, updated.IsComplete())
		})
	}
}

func TestCategorySelectModel_Select(t *testing.T) {
	m := NewCategorySelectModel(model.DefaultCategories, model.Unselected(), themes.Default)
	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("enter"))

	require.True(t, m.IsComplete())
	sel, chosen := m.GetResult()
	assert.True(t, chosen)
	assert.Equal(t, "food", sel.Key())
	assert.Equal(t, "Alimentação", sel.Title())
}

func TestCategorySelectModel_QuickSelect(t *testing.T) {
	m := NewCategorySelectModel(model.DefaultCategories, model.Unselected(), themes.Default)
	m, _ = m.Update(keyMsg("3"))

	require.True(t, m.IsComplete())
	sel, chosen := m.GetResult()
	assert.True(t, chosen)
	assert.Equal(t, "salary", sel.Key())

	m = NewCategorySelectModel(model.DefaultCategories, model.Unselected(), themes.Default)
	m, _ = m.Update(keyMsg("9"))
	assert.False(t, m.IsComplete(), "out of range digits are ignored")
}

func TestCategorySelectModel_EscKeepsCurrent(t *testing.T) {
	leisure, _ := model.FindCategory("leisure")
	m := NewCategorySelectModel(model.DefaultCategories, model.Selected(leisure), themes.Default)
	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("esc"))

	require.True(t, m.IsComplete())
	sel, chosen := m.GetResult()
	assert.False(t, chosen)
	assert.Equal(t, "leisure", sel.Key())
}

func TestCategorySelectModel_View(t *testing.T) {
	m := NewCategorySelectModel(model.DefaultCategories, model.Unselected(), themes.Default)
	m.Resize(80, 24)
	view := m.View()

	for _, c := range model.DefaultCategories {
		assert.Contains(t, view, c.Name)
	}

	empty := NewCategorySelectModel(nil, model.Unselected(), themes.Default)
	assert.Contains(t, empty.View(), "Nenhuma categoria")
	empty, _ = empty.Update(keyMsg("esc"))
	assert.True(t, empty.IsComplete())
}
