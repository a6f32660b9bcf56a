// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when a raw value fails its field-specific format rule.
	// Callers receive an *InvalidFormatError that unwraps to this sentinel.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrMissingField is returned when a required field is absent during construction
	// or deserialization. Callers receive a *MissingFieldError that unwraps to this sentinel.
	ErrMissingField = errors.New("missing field")

	// ErrForeignApplication is returned when a job application owned by one person
	// is registered into another person's application set.
	ErrForeignApplication = fmt.Errorf("%w: job application belongs to a different person", ErrValidation)
)

// InvalidFormatError reports a scalar value that failed its validation predicate.
// Error returns the field's fixed constraint message so it can be surfaced verbatim.
type InvalidFormatError struct {
	Field   string // The field that failed validation (e.g., "name", "label")
	Value   string // The rejected raw value
	Message string // The fixed, human-readable constraint message
}

// Error implements the error interface for InvalidFormatError.
func (e *InvalidFormatError) Error() string {
	return e.Message
}

// Unwrap returns ErrInvalidFormat to support errors.Is.
func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

func newInvalidFormatError(field, value, message string) *InvalidFormatError {
	return &InvalidFormatError{Field: field, Value: value, Message: message}
}

// MissingFieldFormat is the message format used for missing required fields.
const MissingFieldFormat = "%s's %s field is missing!"

// MissingFieldError reports a required field that was absent while building a record.
// It is fatal to that record only; whether a whole load aborts is the caller's decision.
type MissingFieldError struct {
	Entity string // Human-readable owner of the field (e.g., "Job application")
	Field  string // The missing field (e.g., "JobTitle")
}

// Error implements the error interface for MissingFieldError.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf(MissingFieldFormat, e.Entity, e.Field)
}

// Unwrap returns ErrMissingField to support errors.Is.
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// NewMissingFieldError creates a MissingFieldError for the given entity and field.
func NewMissingFieldError(entity, field string) *MissingFieldError {
	return &MissingFieldError{Entity: entity, Field: field}
}
