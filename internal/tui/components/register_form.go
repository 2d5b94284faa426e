package components

import (
	"context"
	"errors"
	"time"

	"github.com/Veraticus/gofinances/internal/form"
	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/register"
	"github.com/Veraticus/gofinances/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Control identifies a focusable element of the register form.
type Control int

// Form controls in focus order.
const (
	ControlName Control = iota
	ControlAmount
	ControlIncome
	ControlOutcome
	ControlCategory
	ControlSubmit
	controlCount
)

const defaultSaveTimeout = 10 * time.Second

// FormKeys are the bindings the register form reacts to.
type FormKeys struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Submit   key.Binding
}

// RegisterFormModel renders and drives the "Cadastro" screen.
type RegisterFormModel struct {
	ctx         context.Context
	theme       themes.Theme
	screen      *register.Screen
	keys        FormKeys
	categories  []model.Category
	alert       AlertModel
	picker      CategorySelectModel
	nameInput   textinput.Model
	amountInput textinput.Model
	spinner     spinner.Model
	saveTimeout time.Duration
	focus       Control
	width       int
	height      int
	showAlert   bool
}

// NewRegisterFormModel creates the form for screen.
func NewRegisterFormModel(ctx context.Context, screen *register.Screen, categories []model.Category, keys FormKeys, theme themes.Theme) RegisterFormModel {
	if ctx == nil {
		ctx = context.Background()
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "Nome"
	nameInput.CharLimit = 80
	nameInput.Prompt = ""
	nameInput.Focus()

	amountInput := textinput.New()
	amountInput.Placeholder = "Preço"
	amountInput.CharLimit = 20
	amountInput.Prompt = ""

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	m := RegisterFormModel{
		ctx:         ctx,
		theme:       theme,
		screen:      screen,
		keys:        keys,
		categories:  categories,
		nameInput:   nameInput,
		amountInput: amountInput,
		spinner:     s,
		saveTimeout: defaultSaveTimeout,
		focus:       ControlName,
	}
	m.Resize(60, 24)
	return m
}

// Init returns initial commands.
func (m RegisterFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m RegisterFormModel) Update(msg tea.Msg) (RegisterFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmitResultMsg:
		return m.handleSubmitResult(msg)

	case spinner.TickMsg:
		if m.screen.Submitting() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m RegisterFormModel) handleKey(msg tea.KeyMsg) (RegisterFormModel, tea.Cmd) {
	if m.showAlert {
		m.alert, _ = m.alert.Update(msg)
		if m.alert.IsComplete() {
			m.showAlert = false
		}
		return m, nil
	}

	if m.screen.Picker().IsOpen() {
		m.picker, _ = m.picker.Update(msg)
		if m.picker.IsComplete() {
			if sel, chosen := m.picker.GetResult(); chosen {
				m.screen.SetCategory(sel)
			}
			m.screen.Picker().Close()
		}
		return m, nil
	}

	if m.screen.Submitting() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()

	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % controlCount)

	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + controlCount - 1) % controlCount)

	case key.Matches(msg, m.keys.Activate):
		return m, m.activate()
	}

	return m, m.updateInput(msg)
}

// activate runs the action of the focused control.
func (m *RegisterFormModel) activate() tea.Cmd {
	switch m.focus {
	case ControlName, ControlAmount:
		return m.setFocus(m.focus + 1)
	case ControlIncome:
		_ = m.screen.SelectType(model.TypePositive)
	case ControlOutcome:
		_ = m.screen.SelectType(model.TypeNegative)
	case ControlCategory:
		m.picker = NewCategorySelectModel(m.categories, m.screen.Category(), m.theme)
		m.picker.Resize(m.width, m.height)
		m.screen.Picker().Open()
	case ControlSubmit:
		return m.submit()
	}
	return nil
}

// submit validates synchronously and saves in the background.
func (m *RegisterFormModel) submit() tea.Cmd {
	txn, err := m.screen.Prepare()
	if err != nil {
		if errors.Is(err, register.ErrSubmissionInFlight) {
			return nil
		}
		if msg, ok := register.AlertMessage(err); ok {
			m.openAlert(msg)
		}
		return nil
	}

	return tea.Batch(m.spinner.Tick, m.persist(txn))
}

func (m RegisterFormModel) persist(txn model.Transaction) tea.Cmd {
	screen := m.screen
	parent := m.ctx
	timeout := m.saveTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		err := screen.Persist(ctx, txn)
		return SubmitResultMsg{Transaction: txn, Err: err}
	}
}

func (m RegisterFormModel) handleSubmitResult(msg SubmitResultMsg) (RegisterFormModel, tea.Cmd) {
	if msg.Err != nil {
		m.screen.Fail(msg.Err)
		text, ok := register.AlertMessage(msg.Err)
		if !ok {
			text = register.AlertPersistence
		}
		m.openAlert(text)
		return m, nil
	}

	m.screen.Complete()
	m.nameInput.SetValue("")
	m.amountInput.SetValue("")
	return m, m.setFocus(ControlName)
}

func (m *RegisterFormModel) openAlert(text string) {
	m.alert = NewAlertModel(text, m.theme)
	m.alert.Resize(m.width)
	m.showAlert = true
}

// updateInput forwards typing to the focused text input and mirrors it into the form.
func (m *RegisterFormModel) updateInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case ControlName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.screen.Form().SetValue(form.FieldName, m.nameInput.Value())
	case ControlAmount:
		m.amountInput, cmd = m.amountInput.Update(msg)
		m.screen.Form().SetValue(form.FieldAmount, m.amountInput.Value())
	}
	return cmd
}

func (m *RegisterFormModel) setFocus(c Control) tea.Cmd {
	m.focus = c
	m.nameInput.Blur()
	m.amountInput.Blur()

	switch c {
	case ControlName:
		return m.nameInput.Focus()
	case ControlAmount:
		return m.amountInput.Focus()
	}
	return nil
}

// View renders the form.
func (m RegisterFormModel) View() string {
	if m.showAlert {
		return m.overlay(m.alert.View())
	}
	if m.screen.Picker().IsOpen() {
		return m.overlay(m.picker.View())
	}

	sections := []string{
		m.renderInput(m.nameInput, ControlName, form.FieldName),
		m.renderInput(m.amountInput, ControlAmount, form.FieldAmount),
		m.renderTypeButtons(),
		m.renderCategoryButton(),
		"",
		m.renderSubmitButton(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m RegisterFormModel) overlay(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m RegisterFormModel) renderInput(input textinput.Model, c Control, field string) string {
	style := m.theme.Input
	if m.focus == c {
		style = m.theme.InputFocused
	}
	box := style.Width(m.fieldWidth()).Render(input.View())

	if msg := m.screen.Form().Error(field); msg != "" {
		return lipgloss.JoinVertical(lipgloss.Left, box, m.theme.FieldError.Render(msg))
	}
	return box
}

func (m RegisterFormModel) renderTypeButtons() string {
	half := (m.fieldWidth() - 1) / 2

	income := m.typeButton(model.TypePositive, "↑", m.theme.Income, ControlIncome, half)
	outcome := m.typeButton(model.TypeNegative, "↓", m.theme.Expense, ControlOutcome, half)

	return lipgloss.JoinHorizontal(lipgloss.Top, income, " ", outcome)
}

func (m RegisterFormModel) typeButton(t model.TransactionType, icon string, color lipgloss.Color, c Control, width int) string {
	style := m.theme.Button
	if m.focus == c {
		style = m.theme.ButtonFocused
	}

	label := lipgloss.NewStyle().Foreground(color).Render(icon) + " " + t.Label()
	if m.screen.Types().IsActive(t) {
		style = style.BorderForeground(color).Bold(true)
		label = lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + t.Label())
	}
	return style.Width(width).Render(label)
}

func (m RegisterFormModel) renderCategoryButton() string {
	style := m.theme.Button.Align(lipgloss.Left)
	if m.focus == ControlCategory {
		style = m.theme.ButtonFocused.Align(lipgloss.Left)
	}

	sel := m.screen.Category()
	title := sel.Title()
	if !sel.IsSelected() {
		title = lipgloss.NewStyle().Foreground(m.theme.Muted).Render(title)
	}
	return style.Width(m.fieldWidth()).Render(title + "  ▾")
}

func (m RegisterFormModel) renderSubmitButton() string {
	if m.screen.Submitting() {
		return m.theme.StatusPending.Render(m.spinner.View() + " Salvando...")
	}

	style := m.theme.Button.
		Background(m.theme.Secondary).
		Foreground(lipgloss.Color("#FFFFFF"))
	if m.focus == ControlSubmit {
		style = m.theme.ButtonFocused.
			Background(m.theme.Secondary).
			Foreground(lipgloss.Color("#FFFFFF"))
	}
	return style.Width(m.fieldWidth()).Render("Enviar")
}

func (m RegisterFormModel) fieldWidth() int {
	return min(max(m.width-4, 24), 60)
}

// Resize adapts the form to the available space.
func (m *RegisterFormModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.nameInput.Width = m.fieldWidth() - 4
	m.amountInput.Width = m.fieldWidth() - 4
	m.alert.Resize(width)
	m.picker.Resize(width, height)
}

// Focus returns the focused control.
func (m RegisterFormModel) Focus() Control {
	return m.focus
}

// AlertShown returns the visible alert text, if any.
func (m RegisterFormModel) AlertShown() (string, bool) {
	if !m.showAlert {
		return "", false
	}
	return m.alert.Message(), true
}

// Screen returns the underlying register screen.
func (m RegisterFormModel) Screen() *register.Screen {
	return m.screen
}

// SetSaveTimeout bounds how long a background save may take.
func (m *RegisterFormModel) SetSaveTimeout(d time.Duration) {
	if d > 0 {
		m.saveTimeout = d
	}
}
