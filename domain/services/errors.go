package services

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both genuinely missing entities and entities owned by
// another user; the two must be indistinguishable to callers.
var ErrNotFound = errors.New("not found")

// ValidationError reports a rejected field. Requests failing validation have no
// side effects.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
