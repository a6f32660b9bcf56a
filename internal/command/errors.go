package command

import (
	"errors"
	"fmt"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/store"
)

// User-facing messages.
const (
	MessageInvalidPersonIndex      = "The person index provided is invalid"
	MessageInvalidApplicationIndex = "The job application index provided is invalid"
	MessageInvalidJobRoleIndex     = "The job role index provided is invalid"
	MessageInvalidIndex            = "Index is not a non-zero unsigned integer."
	MessageDuplicatePerson         = "This person already exists in the address book"
	MessageDuplicateApplication    = "This job application already exists for the person"
	MessageDuplicateJobRole        = "This job role already exists in the job role list"
	MessageNotEdited               = "At least one field to edit must be provided."
	MessageEmptyKeywords           = "At least one keyword must be provided."
	MessageInvalidDateRange        = "The start of the range must be before its end."
	MessageUnexpected              = "An unexpected error occurred"
)

// ErrInvalidIndex is returned when an index is out of range or malformed.
var ErrInvalidIndex = errors.New("invalid index")

// Error is a command failure with a message that can be shown to the user as is.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error carrying message and wrapping cause, which may be nil.
func NewError(message string, cause error) *Error {
	return &Error{Message: message, Err: cause}
}

// Translate maps model and domain errors to an *Error with a user-friendly message.
// Errors that are already *Error are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		return err
	}

	var formatErr *domain.InvalidFormatError
	var missingErr *domain.MissingFieldError

	switch {
	case errors.As(err, &formatErr):
		return NewError(formatErr.Message, err)
	case errors.As(err, &missingErr):
		return NewError(missingErr.Error(), err)

	// Duplicates
	case errors.Is(err, store.ErrDuplicatePerson):
		return NewError(MessageDuplicatePerson, err)
	case errors.Is(err, store.ErrDuplicateJobApplication):
		return NewError(MessageDuplicateApplication, err)
	case errors.Is(err, store.ErrDuplicateJobRole):
		return NewError(MessageDuplicateJobRole, err)

	// Not found
	case errors.Is(err, store.ErrPersonNotFound):
		return NewError(MessageInvalidPersonIndex, err)
	case errors.Is(err, store.ErrJobApplicationNotFound):
		return NewError(MessageInvalidApplicationIndex, err)
	case errors.Is(err, store.ErrJobRoleNotFound):
		return NewError(MessageInvalidJobRoleIndex, err)

	default:
		return NewError(MessageUnexpected, err)
	}
}

func invalidIndexError(message string, index Index) error {
	return NewError(message, fmt.Errorf("%w: %d", ErrInvalidIndex, index))
}
