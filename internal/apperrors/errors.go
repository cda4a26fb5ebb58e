package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ValidationError names the first input field that failed validation.
// It unwraps to ErrValidation so callers can match it with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldOf returns the failing field name when err is a ValidationError.
func FieldOf(err error) (string, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Field, true
	}
	return "", false
}
