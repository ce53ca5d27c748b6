package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// FieldError names a single offending field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validation carries the full list of field-level validation failures.
// It unwraps to ErrInvalid so callers can keep using errors.Is.
type Validation struct {
	Fields []FieldError
}

// NewValidation creates an empty Validation accumulator.
func NewValidation() *Validation {
	return &Validation{}
}

// Add appends a field failure and returns the receiver for chaining.
func (v *Validation) Add(field, reason string) *Validation {
	v.Fields = append(v.Fields, FieldError{Field: field, Reason: reason})
	return v
}

// Empty reports whether no field failures were recorded.
func (v *Validation) Empty() bool { return len(v.Fields) == 0 }

// Err returns nil if no failures were recorded, the Validation otherwise.
func (v *Validation) Err() error {
	if v.Empty() {
		return nil
	}
	return v
}

func (v *Validation) Error() string {
	if v.Empty() {
		return ErrInvalid.Error()
	}
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (v *Validation) Unwrap() error { return ErrInvalid }

// Invalid builds a single-field validation error.
func Invalid(field, reason string) error {
	return NewValidation().Add(field, reason)
}

// FieldsOf extracts field errors from err if it carries any.
func FieldsOf(err error) []FieldError {
	var v *Validation
	if errors.As(err, &v) {
		return v.Fields
	}
	return nil
}
