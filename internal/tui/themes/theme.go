// Package themes holds the lipgloss styles used by the TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Header        lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	FieldError    lipgloss.Style
	Selected      lipgloss.Style
	Box           lipgloss.Style
	RoundedBox    lipgloss.Style
	Card          lipgloss.Style
	TotalCard     lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

// palette is the set of colours a theme is built from.
type palette struct {
	primary, secondary     lipgloss.Color
	income, expense        lipgloss.Color
	muted, border          lipgloss.Color
	foreground, background lipgloss.Color
	surface, onPrimary     lipgloss.Color
}

func build(p palette) Theme {
	return Theme{
		Primary:    p.primary,
		Secondary:  p.secondary,
		Income:     p.income,
		Expense:    p.expense,
		Muted:      p.muted,
		Border:     p.border,
		Foreground: p.foreground,
		Background: p.background,
		Error:      p.expense,
		Success:    p.income,

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.muted).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.onPrimary).
			Background(p.primary).
			Padding(1, 2).
			Align(lipgloss.Center),

		// Form styles
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Foreground(p.foreground).
			Padding(0, 2).
			Align(lipgloss.Center),
		ButtonFocused: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.primary).
			Foreground(p.foreground).
			Bold(true).
			Padding(0, 2).
			Align(lipgloss.Center),
		FieldError: lipgloss.NewStyle().
			Foreground(p.expense),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.onPrimary).
			Bold(true),

		// Component styles
		Box: lipgloss.NewStyle().
			Padding(1, 2),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(1, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Background(p.surface).
			Padding(0, 2),
		TotalCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.secondary).
			Foreground(p.onPrimary).
			Background(p.secondary).
			Padding(0, 2),

		// Status styles
		StatusError: lipgloss.NewStyle().
			Foreground(p.expense).
			Bold(true),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.income).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
	}
}

// Default is the default theme, after the mobile app's palette.
var Default = build(palette{
	primary:    lipgloss.Color("#5636D3"),
	secondary:  lipgloss.Color("#FF872C"),
	income:     lipgloss.Color("#12A454"),
	expense:    lipgloss.Color("#E83F5B"),
	muted:      lipgloss.Color("#969CB2"),
	border:     lipgloss.Color("#404040"),
	foreground: lipgloss.Color("#F0F2F5"),
	background: lipgloss.Color("#1a1a1a"),
	surface:    lipgloss.Color("#262626"),
	onPrimary:  lipgloss.Color("#FFFFFF"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build(palette{
	primary:    lipgloss.Color("#cba6f7"),
	secondary:  lipgloss.Color("#f5c2e7"),
	income:     lipgloss.Color("#a6e3a1"),
	expense:    lipgloss.Color("#f38ba8"),
	muted:      lipgloss.Color("#6c7086"),
	border:     lipgloss.Color("#45475a"),
	foreground: lipgloss.Color("#cdd6f4"),
	background: lipgloss.Color("#1e1e2e"),
	surface:    lipgloss.Color("#313244"),
	onPrimary:  lipgloss.Color("#1e1e2e"),
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// CategoryIcons maps category keys to icons.
var CategoryIcons = map[string]string{
	"purchases": "🛍️",
	"food":      "☕",
	"salary":    "💵",
	"car":       "🚗",
	"leisure":   "❤️",
	"studies":   "📚",
}

// GetCategoryIcon returns an icon for a category key.
func GetCategoryIcon(key string) string {
	if icon, ok := CategoryIcons[key]; ok {
		return icon
	}
	return "📦"
}
