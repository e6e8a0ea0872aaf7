package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField signals a required document field that was left empty.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidRequest signals a request the store refuses to process.
	ErrInvalidRequest = errors.New("invalid request")
)

// MissingFieldError wraps ErrMissingField with the name of the empty field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField.Error(), e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// NewMissingField creates a missing field error.
func NewMissingField(field string) error {
	return &MissingFieldError{Field: field}
}
