package model

import (
	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/store"
)

// Model is the API the command layer drives.
type Model interface {
	// UserPrefs returns a copy of the current preferences.
	UserPrefs() UserPrefs
	// SetUserPrefs replaces the preferences with a copy of prefs.
	SetUserPrefs(prefs UserPrefs) error
	GuiSettings() GuiSettings
	SetGuiSettings(settings GuiSettings)
	AddressBookFilePath() string
	SetAddressBookFilePath(path string) error
	ScheduleBoardFilePath() string
	SetScheduleBoardFilePath(path string) error

	// AddressBook returns a read-only view of the canonical address book.
	AddressBook() ReadOnlyAddressBook
	// SetAddressBook replaces the address book data with a copy of src.
	SetAddressBook(src ReadOnlyAddressBook) error
	HasPerson(p *domain.Person) bool
	AddPerson(p *domain.Person) error
	DeletePerson(p *domain.Person) error
	SetPerson(target, edited *domain.Person) error
	// FilteredPersons returns the live, filtered view of persons.
	FilteredPersons() store.ListView[*domain.Person]
	// UpdateFilteredPersonList replaces the person filter wholesale.
	UpdateFilteredPersonList(predicate store.Predicate[*domain.Person])
	// FirstPerson returns the first visible person, or nil when none is visible.
	FirstPerson() *domain.Person

	AddJobApplication(p *domain.Person, template *domain.JobApplication) (*domain.Person, error)
	SetJobApplication(p *domain.Person, target, edited *domain.JobApplication) (*domain.Person, error)
	DeleteJobApplication(p *domain.Person, app *domain.JobApplication) (*domain.Person, error)

	HasJobRole(role domain.JobTitle) bool
	AddJobRole(role domain.JobTitle) error
	DeleteJobRole(role domain.JobTitle) error
	FilteredJobRoles() store.ListView[domain.JobTitle]
	UpdateFilteredJobRoleList(predicate store.Predicate[domain.JobTitle])

	// ScheduleBoard returns a read-only view of the canonical schedule board.
	ScheduleBoard() ReadOnlyScheduleBoard
	SetScheduleBoard(src ReadOnlyScheduleBoard) error
	HasSchedule(s domain.Schedule) bool
	AddSchedule(s domain.Schedule) error
	DeleteSchedule(s domain.Schedule) error
	FilteredSchedules() store.ListView[domain.Schedule]
	UpdateFilteredScheduleList(predicate store.Predicate[domain.Schedule])
	// SyncScheduleBoard rebuilds the schedule board from the job applications
	// in the address book.
	SyncScheduleBoard() error
}
