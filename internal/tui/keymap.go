package tui

import (
	"github.com/Veraticus/gofinances/internal/service"
	"github.com/Veraticus/gofinances/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Register form
	NextField key.Binding
	PrevField key.Binding
	Activate  key.Binding
	Submit    key.Binding
	Listing   key.Binding

	// Listing
	Up             key.Binding
	Down           key.Binding
	NewTransaction key.Binding
	Refresh        key.Binding

	// Application
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "próximo"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "anterior"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "selecionar"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "enviar"),
		),
		Listing: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "listagem"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "descer"),
		),
		NewTransaction: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "cadastrar"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recarregar"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "sair"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "sair"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ajuda"),
		),
	}
}

// FormKeys returns the subset of bindings the register form uses.
func (k KeyMap) FormKeys() components.FormKeys {
	return components.FormKeys{
		Next:     k.NextField,
		Prev:     k.PrevField,
		Activate: k.Activate,
		Submit:   k.Submit,
	}
}

// ScreenHelp adapts a screen's bindings to help.KeyMap.
type ScreenHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h ScreenHelp) ShortHelp() []key.Binding  { return h.short }
func (h ScreenHelp) FullHelp() [][]key.Binding { return h.full }

// HelpFor returns the bindings shown in the help line of screen.
func (k KeyMap) HelpFor(screen string) ScreenHelp {
	if screen == service.ScreenListing {
		return ScreenHelp{
			short: []key.Binding{k.NewTransaction, k.Refresh, k.Quit, k.Help},
			full: [][]key.Binding{
				{k.Up, k.Down},
				{k.NewTransaction, k.Refresh},
				{k.Quit, k.Help},
			},
		}
	}

	return ScreenHelp{
		short: []key.Binding{k.NextField, k.Activate, k.Submit, k.Listing, k.ForceQuit},
		full: [][]key.Binding{
			{k.NextField, k.PrevField, k.Activate},
			{k.Submit, k.Listing},
			{k.ForceQuit},
		},
	}
}
