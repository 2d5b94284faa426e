// Package register implements the "Cadastro" screen logic: form, type
// selector, category picker and the submission flow.
package register

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/gofinances/internal/common"
	"github.com/Veraticus/gofinances/internal/form"
	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/service"
	"github.com/google/uuid"
)

// Construction errors.
var (
	ErrNoUser    = errors.New("user id is required")
	ErrNoGateway = errors.New("transaction gateway is required")
)

// Option configures a Screen.
type Option func(*Screen)

// WithNavigator sets who is told to show the listing after a successful submit.
func WithNavigator(n service.Navigator) Option {
	return func(s *Screen) {
		s.navigator = n
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Screen) {
		s.now = now
	}
}

// WithIDGenerator overrides the record id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Screen) {
		s.newID = newID
	}
}

// Screen holds the register screen state and runs submissions.
// It is not safe for concurrent use; Persist is the only method that may run
// off the owning goroutine.
type Screen struct {
	gateway   service.TransactionAppender
	navigator service.Navigator
	form      *form.Controller
	now       func() time.Time
	newID     func() string
	category  model.CategorySelection
	user      model.User
	types     TypeSelector
	picker    CategoryPicker
	inFlight  bool
}

// NewScreen creates a screen that saves user's transactions through gateway.
func NewScreen(user model.User, gateway service.TransactionAppender, opts ...Option) (*Screen, error) {
	if strings.TrimSpace(user.ID) == "" {
		return nil, ErrNoUser
	}
	if gateway == nil {
		return nil, ErrNoGateway
	}

	s := &Screen{
		user:      user,
		gateway:   gateway,
		navigator: service.NavigatorFunc(func(string) {}),
		form:      form.NewController(form.TransactionSchema),
		now:       time.Now,
		newID:     uuid.NewString,
		category:  model.Unselected(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// User returns the user the screen saves for.
func (s *Screen) User() model.User { return s.user }

// Form returns the form controller.
func (s *Screen) Form() *form.Controller { return s.form }

// Types returns the transaction type selector.
func (s *Screen) Types() *TypeSelector { return &s.types }

// Picker returns the category modal launcher.
func (s *Screen) Picker() *CategoryPicker { return &s.picker }

// SelectType is shorthand for Types().Select.
func (s *Screen) SelectType(t model.TransactionType) error {
	return s.types.Select(t)
}

// SetCategory stores the selection reported by the category modal.
func (s *Screen) SetCategory(sel model.CategorySelection) {
	s.category = sel
}

// Category returns the current category selection.
func (s *Screen) Category() model.CategorySelection {
	return s.category
}

// Submitting reports whether a submission is waiting on Persist.
func (s *Screen) Submitting() bool {
	return s.inFlight
}

// Submit validates, persists and, on success, resets the screen and
// navigates to the listing. It returns the stored record.
func (s *Screen) Submit(ctx context.Context) (model.Transaction, error) {
	txn, err := s.Prepare()
	if err != nil {
		return model.Transaction{}, err
	}

	if err := s.Persist(ctx, txn); err != nil {
		s.Fail(err)
		return model.Transaction{}, err
	}

	s.Complete()
	return txn, nil
}

// Prepare validates the form and selections and builds the record to store.
// On success the screen is marked in flight until Complete or Fail.
func (s *Screen) Prepare() (model.Transaction, error) {
	if s.inFlight {
		return model.Transaction{}, ErrSubmissionInFlight
	}

	var values form.Values
	err := s.form.HandleSubmit(func(v form.Values) error {
		values = v
		return nil
	})
	if err != nil {
		return model.Transaction{}, err
	}

	txnType, ok := s.types.Current()
	if !ok {
		return model.Transaction{}, common.NewUserError(AlertMissingTransactionType, ErrMissingTransactionType)
	}

	category, ok := s.category.Category()
	if !ok {
		return model.Transaction{}, common.NewUserError(AlertMissingCategory, ErrMissingCategory)
	}

	s.inFlight = true
	return model.Transaction{
		ID:       s.newID(),
		Name:     values.Name,
		Amount:   values.Amount,
		Type:     txnType,
		Category: category.Key,
		Date:     s.now().UTC(),
	}, nil
}

// Persist appends txn to the user's list. It reads no mutable screen state.
func (s *Screen) Persist(ctx context.Context, txn model.Transaction) error {
	if err := s.gateway.Append(ctx, s.user.ID, txn); err != nil {
		slog.Error("failed to save transaction",
			"user_id", s.user.ID,
			"transaction_id", txn.ID,
			"error", err)
		return common.NewUserError(AlertPersistence, fmt.Errorf("%w: %w", ErrPersistence, err))
	}

	slog.Info("transaction saved",
		"user_id", s.user.ID,
		"transaction_id", txn.ID,
		"type", txn.Type,
		"category", txn.Category)
	return nil
}

// Complete finishes a successful submission.
func (s *Screen) Complete() {
	s.inFlight = false
	s.Reset()
	s.navigator.Navigate(service.ScreenListing)
}

// Fail finishes a failed submission. Entered values and selections are kept.
func (s *Screen) Fail(err error) {
	s.inFlight = false
	slog.Debug("submission failed, keeping screen state", "error", err)
}

// Reset clears the form, the type and the category.
func (s *Screen) Reset() {
	s.form.Reset()
	s.types.Reset()
	s.category = model.Unselected()
	s.picker.Close()
}
