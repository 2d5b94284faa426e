package tui

import (
	"context"
	"time"

	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/register"
	"github.com/Veraticus/gofinances/internal/service"
	"github.com/Veraticus/gofinances/internal/tui/themes"
)

// Store is what the TUI needs from the persistence gateway.
type Store interface {
	service.TransactionAppender
	service.TransactionLister
}

// Config holds TUI configuration.
type Config struct {
	Context       context.Context
	Theme         themes.Theme
	Store         Store
	User          model.User
	StartScreen   string
	Categories    []model.Category
	ScreenOptions []register.Option
	SaveTimeout   time.Duration
	LoadTimeout   time.Duration
	Width         int
	Height        int
	AltScreen     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Context:     context.Background(),
		Theme:       themes.Default,
		StartScreen: service.ScreenRegister,
		Categories:  model.DefaultCategories,
		SaveTimeout: 10 * time.Second,
		LoadTimeout: 10 * time.Second,
		Width:       80,
		Height:      24,
		AltScreen:   true,
	}
}

// WithStore sets the transaction store.
func WithStore(store Store) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithUser sets the user whose transactions are registered and listed.
func WithUser(user model.User) Option {
	return func(c *Config) {
		c.User = user
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithStartScreen selects the first screen shown (Cadastro or Listagem).
func WithStartScreen(screen string) Option {
	return func(c *Config) {
		c.StartScreen = screen
	}
}

// WithCategories replaces the category catalogue offered by the picker.
func WithCategories(categories []model.Category) Option {
	return func(c *Config) {
		c.Categories = categories
	}
}

// WithScreenOptions passes options through to the register screen.
func WithScreenOptions(opts ...register.Option) Option {
	return func(c *Config) {
		c.ScreenOptions = append(c.ScreenOptions, opts...)
	}
}

// WithTimeouts bounds background saves and loads.
func WithTimeouts(save, load time.Duration) Option {
	return func(c *Config) {
		c.SaveTimeout = save
		c.LoadTimeout = load
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
