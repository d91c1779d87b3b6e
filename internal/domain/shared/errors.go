// Package shared contains common domain types, errors, and events that are
// used across all domain packages.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Validation kinds. Every validation failure raised by the entity model
	// carries exactly one of these as its Kind.
	ErrEmptyField    = errors.New("required field is empty")
	ErrInvalidFormat = errors.New("invalid format")
	ErrOutOfRange    = errors.New("value out of range")
)

// ValidationError is a field-level validation failure raised at construction
// or mutation time. Kind is one of ErrEmptyField, ErrInvalidFormat or
// ErrOutOfRange so callers can classify with errors.Is().
type ValidationError struct {
	Field   string // offending field, e.g. "name", "working_hours"
	Kind    error  // base error kind for errors.Is() checking
	Message string // human-readable description of the violated rule
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the error kind for errors.Unwrap().
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Is implements errors.Is() matching against the error kind.
func (e *ValidationError) Is(target error) bool {
	return e.Kind != nil && errors.Is(e.Kind, target)
}

// NewValidationError creates a new validation error.
func NewValidationError(field string, kind error, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Kind:    kind,
		Message: message,
	}
}

// EmptyField reports a required text field that is blank after trimming.
func EmptyField(field string) *ValidationError {
	return NewValidationError(field, ErrEmptyField, "must not be blank")
}

// InvalidFormat reports a field that fails its pattern.
func InvalidFormat(field, rule string) *ValidationError {
	return NewValidationError(field, ErrInvalidFormat, rule)
}

// OutOfRange reports a numeric field outside its bound.
func OutOfRange(field, rule string) *ValidationError {
	return NewValidationError(field, ErrOutOfRange, rule)
}

// IsValidation checks if the error is any validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyField) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrOutOfRange)
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
