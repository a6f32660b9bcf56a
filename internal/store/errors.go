package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrPersonNotFound, ErrScheduleNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a person with the same name).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrPersonNotFound indicates that the requested person does not exist in the list.
	ErrPersonNotFound = fmt.Errorf("%w: person", ErrNotFound)

	// ErrJobApplicationNotFound indicates that the requested job application does not exist.
	ErrJobApplicationNotFound = fmt.Errorf("%w: job application", ErrNotFound)

	// ErrScheduleNotFound indicates that the requested schedule does not exist.
	ErrScheduleNotFound = fmt.Errorf("%w: schedule", ErrNotFound)

	// ErrJobRoleNotFound indicates that the requested job role does not exist.
	ErrJobRoleNotFound = fmt.Errorf("%w: job role", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrDuplicatePerson indicates that a person with the same name already exists.
	ErrDuplicatePerson = fmt.Errorf("%w: person", ErrDuplicate)

	// ErrDuplicateJobApplication indicates that the same application already exists
	// for the person.
	ErrDuplicateJobApplication = fmt.Errorf("%w: job application", ErrDuplicate)

	// ErrDuplicateSchedule indicates that the schedule is already on the board.
	ErrDuplicateSchedule = fmt.Errorf("%w: schedule", ErrDuplicate)

	// ErrDuplicateJobRole indicates that the job role is already in the catalogue.
	ErrDuplicateJobRole = fmt.Errorf("%w: job role", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
// This includes the generic ErrDuplicate and all entity-specific duplicate errors.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "address book", "user prefs")
	Operation string // The operation that failed (e.g., "read", "save")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
