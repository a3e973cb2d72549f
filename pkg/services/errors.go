package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity does not exist or is outside
	// the caller's tenancy scope.
	ErrNotFound = errors.New("entity not found")

	// ErrDeleted is returned when an entity exists but is soft-deleted.
	ErrDeleted = errors.New("entity is deleted")

	// ErrAlreadyExists is returned when attempting to create a duplicate
	// entity, including an event whose dedupe key is already present.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrNotRunning is returned when cancelling a dream session that is not
	// in the running state.
	ErrNotRunning = errors.New("session is not running")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// clampLimit bounds a caller-supplied page size.
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
