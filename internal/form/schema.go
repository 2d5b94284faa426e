// Package form validates and holds the register screen's input fields.
package form

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Field names.
const (
	FieldName   = "name"
	FieldAmount = "amount"
)

// ErrorCode classifies a field validation failure.
type ErrorCode string

// Field error codes.
const (
	CodeRequiredField    ErrorCode = "required_field"
	CodeTypeError        ErrorCode = "type_error"
	CodeNonPositiveValue ErrorCode = "non_positive_value"
)

// Messages shown next to the offending input.
const (
	MsgNameRequired   = "Nome é obrigatório"
	MsgAmountRequired = "O valor é obrigatório"
	MsgAmountNumeric  = "Informe um valor númerico"
	MsgAmountPositive = "O valor não pode ser negativo"
)

// ErrValidation is wrapped by every FieldErrors value.
var ErrValidation = errors.New("validation failed")

// Values are the raw contents of the form inputs.
type Values struct {
	Name   string
	Amount string
}

// Get returns the value of field.
func (v Values) Get(field string) string {
	switch field {
	case FieldName:
		return v.Name
	case FieldAmount:
		return v.Amount
	default:
		return ""
	}
}

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field   string
	Code    ErrorCode
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors maps field names to their validation failure.
type FieldErrors map[string]*FieldError

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, e[field].Error())
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrValidation.
func (e FieldErrors) Unwrap() error {
	return ErrValidation
}

// Has reports whether field failed validation.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Rule validates one field value and returns nil when it passes.
type Rule func(value string) *FieldError

// Schema is an ordered set of rules per field.
type Schema struct {
	rules  map[string][]Rule
	fields []string
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{rules: make(map[string][]Rule)}
}

// Field appends rules for field. Rules run in order and stop at the first failure.
func (s *Schema) Field(field string, rules ...Rule) *Schema {
	if _, ok := s.rules[field]; !ok {
		s.fields = append(s.fields, field)
	}
	s.rules[field] = append(s.rules[field], rules...)
	return s
}

// Validate returns nil when every field passes.
func (s *Schema) Validate(values Values) FieldErrors {
	errs := FieldErrors{}
	for _, field := range s.fields {
		value := values.Get(field)
		for _, rule := range s.rules[field] {
			if fe := rule(value); fe != nil {
				fe.Field = field
				errs[field] = fe
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Required fails on empty or blank values.
func Required(message string) Rule {
	return func(value string) *FieldError {
		if strings.TrimSpace(value) == "" {
			return &FieldError{Code: CodeRequiredField, Message: message}
		}
		return nil
	}
}

// Numeric fails when the value is not a decimal number.
func Numeric(message string) Rule {
	return func(value string) *FieldError {
		if _, err := ParseAmount(value); err != nil {
			return &FieldError{Code: CodeTypeError, Message: message}
		}
		return nil
	}
}

// Positive fails when the number is zero or negative.
// Non-numeric values are left to Numeric.
func Positive(message string) Rule {
	return func(value string) *FieldError {
		d, err := ParseAmount(value)
		if err != nil {
			return nil
		}
		if !d.IsPositive() {
			return &FieldError{Code: CodeNonPositiveValue, Message: message}
		}
		return nil
	}
}

// ParseAmount parses a trimmed decimal amount such as "12.50".
func ParseAmount(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(value))
}

// TransactionSchema holds the register form rules.
var TransactionSchema = NewSchema().
	Field(FieldName, Required(MsgNameRequired)).
	Field(FieldAmount,
		Required(MsgAmountRequired),
		Numeric(MsgAmountNumeric),
		Positive(MsgAmountPositive),
	)
