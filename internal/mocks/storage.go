package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/recruitbook/internal/model"
	"github.com/phrazzld/recruitbook/internal/storage"
	"github.com/phrazzld/recruitbook/internal/store"
)

// Compile-time checks that the mocks implement the storage interfaces.
var (
	_ storage.AddressBookStorage   = (*MockAddressBookStorage)(nil)
	_ storage.AddressBookArchiver  = (*MockAddressBookStorage)(nil)
	_ storage.ScheduleBoardStorage = (*MockScheduleBoardStorage)(nil)
	_ storage.UserPrefsStorage     = (*MockUserPrefsStorage)(nil)
)

// MockAddressBookStorage implements storage.AddressBookStorage for testing.
// Without custom functions it behaves as an in-memory store: reads return a copy
// of the last saved address book, or store.ErrNotFound before the first save.
type MockAddressBookStorage struct {
	// Custom behavior functions
	ReadAddressBookFn    func(ctx context.Context) (*model.AddressBook, error)
	SaveAddressBookFn    func(ctx context.Context, ab model.ReadOnlyAddressBook) error
	ArchiveAddressBookFn func(ctx context.Context) (string, error)

	// Default response values
	Location string
	Stored   *model.AddressBook
	Archived *model.AddressBook
	Err      error

	// Call tracking for verification
	mu           sync.Mutex
	ReadCalls    int
	SaveCalls    int
	ArchiveCalls int
}

func (m *MockAddressBookStorage) AddressBookLocation() string {
	if m.Location == "" {
		return "mock://addressbook"
	}
	return m.Location
}

// ReadAddressBook implements the storage.AddressBookStorage interface
func (m *MockAddressBookStorage) ReadAddressBook(ctx context.Context) (*model.AddressBook, error) {
	m.mu.Lock()
	m.ReadCalls++
	m.mu.Unlock()

	if m.ReadAddressBookFn != nil {
		return m.ReadAddressBookFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Stored == nil {
		return nil, store.ErrNotFound
	}
	return model.NewAddressBookFrom(m.Stored, nil)
}

// SaveAddressBook implements the storage.AddressBookStorage interface
func (m *MockAddressBookStorage) SaveAddressBook(ctx context.Context, ab model.ReadOnlyAddressBook) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()

	if m.SaveAddressBookFn != nil {
		return m.SaveAddressBookFn(ctx, ab)
	}
	if m.Err != nil {
		return m.Err
	}
	saved, err := model.NewAddressBookFrom(ab, nil)
	if err != nil {
		return err
	}
	m.Stored = saved
	return nil
}

// ArchiveAddressBook implements the storage.AddressBookArchiver interface.
// By default it moves Stored to Archived.
func (m *MockAddressBookStorage) ArchiveAddressBook(ctx context.Context) (string, error) {
	m.mu.Lock()
	m.ArchiveCalls++
	m.mu.Unlock()

	if m.ArchiveAddressBookFn != nil {
		return m.ArchiveAddressBookFn(ctx)
	}
	if m.Stored == nil {
		return "", nil
	}
	m.Archived, m.Stored = m.Stored, nil
	return m.AddressBookLocation() + ".bak", nil
}

// MockScheduleBoardStorage implements storage.ScheduleBoardStorage for testing,
// with the same default behavior as MockAddressBookStorage.
type MockScheduleBoardStorage struct {
	ReadScheduleBoardFn func(ctx context.Context) (*model.ScheduleBoard, error)
	SaveScheduleBoardFn func(ctx context.Context, sb model.ReadOnlyScheduleBoard) error

	Location string
	Stored   *model.ScheduleBoard
	Err      error

	mu        sync.Mutex
	ReadCalls int
	SaveCalls int
}

func (m *MockScheduleBoardStorage) ScheduleBoardLocation() string {
	if m.Location == "" {
		return "mock://scheduleboard"
	}
	return m.Location
}

// ReadScheduleBoard implements the storage.ScheduleBoardStorage interface
func (m *MockScheduleBoardStorage) ReadScheduleBoard(ctx context.Context) (*model.ScheduleBoard, error) {
	m.mu.Lock()
	m.ReadCalls++
	m.mu.Unlock()

	if m.ReadScheduleBoardFn != nil {
		return m.ReadScheduleBoardFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Stored == nil {
		return nil, store.ErrNotFound
	}
	return model.NewScheduleBoardFrom(m.Stored, nil)
}

// SaveScheduleBoard implements the storage.ScheduleBoardStorage interface
func (m *MockScheduleBoardStorage) SaveScheduleBoard(ctx context.Context, sb model.ReadOnlyScheduleBoard) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()

	if m.SaveScheduleBoardFn != nil {
		return m.SaveScheduleBoardFn(ctx, sb)
	}
	if m.Err != nil {
		return m.Err
	}
	saved, err := model.NewScheduleBoardFrom(sb, nil)
	if err != nil {
		return err
	}
	m.Stored = saved
	return nil
}

// MockUserPrefsStorage implements storage.UserPrefsStorage for testing.
type MockUserPrefsStorage struct {
	ReadUserPrefsFn func(ctx context.Context) (model.UserPrefs, error)
	SaveUserPrefsFn func(ctx context.Context, prefs model.UserPrefs) error

	Location string
	Stored   *model.UserPrefs
	Err      error

	mu        sync.Mutex
	ReadCalls int
	SaveCalls int
}

func (m *MockUserPrefsStorage) UserPrefsLocation() string {
	if m.Location == "" {
		return "mock://preferences"
	}
	return m.Location
}

// ReadUserPrefs implements the storage.UserPrefsStorage interface
func (m *MockUserPrefsStorage) ReadUserPrefs(ctx context.Context) (model.UserPrefs, error) {
	m.mu.Lock()
	m.ReadCalls++
	m.mu.Unlock()

	if m.ReadUserPrefsFn != nil {
		return m.ReadUserPrefsFn(ctx)
	}
	if m.Err != nil {
		return model.UserPrefs{}, m.Err
	}
	if m.Stored == nil {
		return model.UserPrefs{}, store.ErrNotFound
	}
	return m.Stored.Clone(), nil
}

// SaveUserPrefs implements the storage.UserPrefsStorage interface
func (m *MockUserPrefsStorage) SaveUserPrefs(ctx context.Context, prefs model.UserPrefs) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()

	if m.SaveUserPrefsFn != nil {
		return m.SaveUserPrefsFn(ctx, prefs)
	}
	if m.Err != nil {
		return m.Err
	}
	saved := prefs.Clone()
	m.Stored = &saved
	return nil
}
