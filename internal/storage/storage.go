package storage

import (
	"context"
	"fmt"

	"github.com/phrazzld/recruitbook/internal/model"
)

// AddressBookStorage persists the address book.
// ReadAddressBook returns an error wrapping store.ErrNotFound when nothing has been
// saved yet and a *DataLoadingError when stored data cannot be turned into an
// address book.
type AddressBookStorage interface {
	AddressBookLocation() string
	ReadAddressBook(ctx context.Context) (*model.AddressBook, error)
	SaveAddressBook(ctx context.Context, ab model.ReadOnlyAddressBook) error
}

// AddressBookArchiver is implemented by address book storages that can set
// stored data aside. ArchiveAddressBook returns where the data was moved to, or
// an empty string when there was nothing to move.
type AddressBookArchiver interface {
	ArchiveAddressBook(ctx context.Context) (string, error)
}

// ScheduleBoardStorage persists the schedule board, with the same error
// contract as AddressBookStorage.
type ScheduleBoardStorage interface {
	ScheduleBoardLocation() string
	ReadScheduleBoard(ctx context.Context) (*model.ScheduleBoard, error)
	SaveScheduleBoard(ctx context.Context, sb model.ReadOnlyScheduleBoard) error
}

// UserPrefsStorage persists user preferences.
type UserPrefsStorage interface {
	UserPrefsLocation() string
	ReadUserPrefs(ctx context.Context) (model.UserPrefs, error)
	SaveUserPrefs(ctx context.Context, prefs model.UserPrefs) error
}

// DataLoadingError reports stored data that exists but could not be loaded.
type DataLoadingError struct {
	Location string
	Err      error
}

// Error implements the error interface for DataLoadingError.
func (e *DataLoadingError) Error() string {
	return fmt.Sprintf("could not load data from %s: %v", e.Location, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DataLoadingError) Unwrap() error {
	return e.Err
}

// NewDataLoadingError wraps err with the location it was read from.
func NewDataLoadingError(location string, err error) *DataLoadingError {
	return &DataLoadingError{Location: location, Err: err}
}
