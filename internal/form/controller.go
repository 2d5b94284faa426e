package form

import "strings"

// SubmitHandler receives validated values.
type SubmitHandler func(Values) error

// Controller holds the current field values and their validation errors.
type Controller struct {
	schema *Schema
	errors FieldErrors
	values Values
}

// NewController creates a controller validated by schema.
// A nil schema uses TransactionSchema.
func NewController(schema *Schema) *Controller {
	if schema == nil {
		schema = TransactionSchema
	}
	return &Controller{schema: schema}
}

// SetValue updates a field. Unknown fields are ignored.
func (c *Controller) SetValue(field, value string) {
	switch field {
	case FieldName:
		c.values.Name = value
	case FieldAmount:
		c.values.Amount = value
	}
}

// Value returns the current contents of field.
func (c *Controller) Value(field string) string {
	return c.values.Get(field)
}

// Values returns a copy of all field values.
func (c *Controller) Values() Values {
	return c.values
}

// Errors returns the errors recorded by the last submit attempt.
func (c *Controller) Errors() FieldErrors {
	return c.errors
}

// Error returns the message for field, or "" when it is valid.
func (c *Controller) Error(field string) string {
	if fe, ok := c.errors[field]; ok {
		return fe.Message
	}
	return ""
}

// Validate runs the schema against the current values and records the result.
func (c *Controller) Validate() FieldErrors {
	c.errors = c.schema.Validate(c.values)
	return c.errors
}

// HandleSubmit validates synchronously and calls handler only when every field passes.
// Values reach the handler trimmed.
func (c *Controller) HandleSubmit(handler SubmitHandler) error {
	if errs := c.Validate(); errs != nil {
		return errs
	}
	if handler == nil {
		return nil
	}
	return handler(Values{
		Name:   strings.TrimSpace(c.values.Name),
		Amount: strings.TrimSpace(c.values.Amount),
	})
}

// Reset clears all values and errors.
func (c *Controller) Reset() {
	c.values = Values{}
	c.errors = nil
}
