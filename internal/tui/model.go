package tui

import (
	"context"
	"errors"

	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/register"
	"github.com/Veraticus/gofinances/internal/service"
	"github.com/Veraticus/gofinances/internal/tui/components"
	"github.com/Veraticus/gofinances/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoStore is returned when the TUI is built without a transaction store.
var ErrNoStore = errors.New("transaction store is required")

// router records navigation requests made by the register screen.
type router struct {
	next string
}

func (r *router) Navigate(screen string) {
	r.next = screen
}

func (r *router) take() string {
	next := r.next
	r.next = ""
	return next
}

// Model holds the main TUI state.
type Model struct {
	ctx      context.Context
	theme    themes.Theme
	store    Store
	router   *router
	user     model.User
	current  string
	keymap   KeyMap
	help     help.Model
	form     components.RegisterFormModel
	listing  components.ListingModel
	config   Config
	width    int
	height   int
	quitting bool
}

// NewModel builds the root model from options.
func NewModel(opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) (Model, error) {
	if cfg.Store == nil {
		return Model{}, ErrNoStore
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}

	r := &router{}
	screenOpts := append([]register.Option{register.WithNavigator(r)}, cfg.ScreenOptions...)
	screen, err := register.NewScreen(cfg.User, cfg.Store, screenOpts...)
	if err != nil {
		return Model{}, err
	}

	keymap := DefaultKeyMap()
	form := components.NewRegisterFormModel(cfg.Context, screen, cfg.Categories, keymap.FormKeys(), cfg.Theme)
	form.SetSaveTimeout(cfg.SaveTimeout)

	current := cfg.StartScreen
	if current != service.ScreenListing {
		current = service.ScreenRegister
	}

	m := Model{
		ctx:     cfg.Context,
		theme:   cfg.Theme,
		store:   cfg.Store,
		router:  r,
		user:    cfg.User,
		current: current,
		keymap:  keymap,
		help:    help.New(),
		form:    form,
		listing: components.NewListingModel(cfg.Theme),
		config:  cfg,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	m.handleResize()
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.current == service.ScreenListing {
		return m.loadTransactions()
	}
	return m.form.Init()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case components.TransactionsLoadedMsg:
		m.listing, _ = m.listing.Update(msg)
		return m, nil

	case components.SubmitResultMsg:
		// results may arrive after the user left the form
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, tea.Batch(cmd, m.followNavigation())
	}

	var cmd tea.Cmd
	switch m.current {
	case service.ScreenListing:
		m.listing, cmd = m.listing.Update(msg)
	default:
		m.form, cmd = m.form.Update(msg)
	}

	return m, tea.Batch(cmd, m.followNavigation())
}

// handleGlobalKeys handles keys that are not meant for the active component.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return tea.Quit, true
	}

	switch m.current {
	case service.ScreenListing:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return tea.Quit, true
		case key.Matches(msg, m.keymap.NewTransaction):
			return m.switchTo(service.ScreenRegister), true
		case key.Matches(msg, m.keymap.Refresh):
			m.listing.Reload()
			return m.loadTransactions(), true
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return nil, true
		}

	default:
		if key.Matches(msg, m.keymap.Listing) && !m.form.Screen().Submitting() {
			return m.switchTo(service.ScreenListing), true
		}
	}

	return nil, false
}

// followNavigation switches screens when the register screen asked to.
func (m *Model) followNavigation() tea.Cmd {
	if next := m.router.take(); next != "" {
		return m.switchTo(next)
	}
	return nil
}

func (m *Model) switchTo(screen string) tea.Cmd {
	switch screen {
	case service.ScreenListing:
		m.current = service.ScreenListing
		m.listing.Reload()
		return m.loadTransactions()
	default:
		m.current = service.ScreenRegister
		return m.form.Init()
	}
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	// header (3) + help line (1) + border and padding (4)
	usableWidth := max(m.width-6, 20)
	usableHeight := max(m.height-8, 8)

	m.form.Resize(usableWidth, usableHeight)
	m.listing.Resize(usableWidth, usableHeight)
	m.help.Width = usableWidth
}

// CurrentScreen returns the name of the visible screen.
func (m Model) CurrentScreen() string {
	return m.current
}

// Form returns the register form component.
func (m Model) Form() components.RegisterFormModel {
	return m.form
}

// Listing returns the listing component.
func (m Model) Listing() components.ListingModel {
	return m.listing
}
