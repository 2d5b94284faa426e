package register

import (
	"fmt"

	"github.com/Veraticus/gofinances/internal/model"
)

// TypeSelector tracks which transaction type button is active.
// The zero value has no type selected.
type TypeSelector struct {
	current model.TransactionType
}

// Select makes t the active type. Selecting the active type again keeps it active.
func (s *TypeSelector) Select(t model.TransactionType) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidType, t)
	}
	s.current = t
	return nil
}

// IsActive reports whether t is the selected type.
func (s *TypeSelector) IsActive(t model.TransactionType) bool {
	return s.current != "" && s.current == t
}

// Current returns the selected type and whether one is set.
func (s *TypeSelector) Current() (model.TransactionType, bool) {
	return s.current, s.current != ""
}

// Reset clears the selection.
func (s *TypeSelector) Reset() {
	s.current = ""
}

// CategoryPicker tracks whether the category select modal is visible.
type CategoryPicker struct {
	open bool
}

// Open shows the modal.
func (p *CategoryPicker) Open() { p.open = true }

// Close hides the modal.
func (p *CategoryPicker) Close() { p.open = false }

// IsOpen reports whether the modal is visible.
func (p *CategoryPicker) IsOpen() bool { return p.open }
