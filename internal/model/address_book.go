package model

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/store"
)

// ReadOnlyAddressBook is the view of an address book handed to storage and UI
// collaborators.
type ReadOnlyAddressBook interface {
	// Persons returns a live read-only view of the persons in insertion order.
	Persons() store.ListView[*domain.Person]

	// JobRoles returns a live read-only view of the job-role catalogue.
	JobRoles() store.ListView[domain.JobTitle]
}

// AddressBook is the aggregate root for persons and the job-role catalogue.
// Duplicate persons are not allowed (by IsSamePerson comparison).
type AddressBook struct {
	persons  *store.UniqueList[*domain.Person]
	jobRoles *store.UniqueList[domain.JobTitle]
	logger   *slog.Logger
}

// NewAddressBook creates an address book with no persons and the default job roles.
func NewAddressBook(logger *slog.Logger) *AddressBook {
	logger = orDefault(logger)
	ab := &AddressBook{
		persons:  newPersonList(logger),
		jobRoles: newJobRoleList(logger),
		logger:   logger,
	}
	// The defaults are distinct by construction.
	_ = ab.jobRoles.SetAll(defaultJobRoles())
	return ab
}

// NewAddressBookFrom creates an address book holding a copy of src's data.
func NewAddressBookFrom(src ReadOnlyAddressBook, logger *slog.Logger) (*AddressBook, error) {
	ab := NewAddressBook(logger)
	if err := ab.ResetData(src); err != nil {
		return nil, err
	}
	return ab, nil
}

// ResetData replaces all data with a copy of src.
// It fails without changing anything when src holds duplicates.
func (ab *AddressBook) ResetData(src ReadOnlyAddressBook) error {
	persons := newPersonList(ab.logger)
	if err := persons.SetAll(src.Persons().Items()); err != nil {
		return fmt.Errorf("failed to copy persons: %w", err)
	}
	roles := newJobRoleList(ab.logger)
	if err := roles.SetAll(src.JobRoles().Items()); err != nil {
		return fmt.Errorf("failed to copy job roles: %w", err)
	}

	ab.persons.Replace(persons.View())
	ab.jobRoles.Replace(roles.View())
	return nil
}

// HasPerson reports whether a person with the same identity as p exists.
func (ab *AddressBook) HasPerson(p *domain.Person) bool {
	return ab.persons.Contains(p)
}

// AddPerson adds p. The person must not already exist in the address book.
func (ab *AddressBook) AddPerson(p *domain.Person) error {
	return ab.persons.Add(p)
}

// SetPerson replaces target with edited.
// target must exist in the address book, and the identity of edited must not be the
// same as another existing person.
func (ab *AddressBook) SetPerson(target, edited *domain.Person) error {
	return ab.persons.Set(target, edited)
}

// RemovePerson removes the person equal to p. The person must exist in the address book.
func (ab *AddressBook) RemovePerson(p *domain.Person) error {
	return ab.persons.Remove(p)
}

// SetPersons replaces the persons with persons, which must not contain duplicates.
func (ab *AddressBook) SetPersons(persons []*domain.Person) error {
	return ab.persons.SetAll(persons)
}

// HasJobRole reports whether role is in the catalogue.
func (ab *AddressBook) HasJobRole(role domain.JobTitle) bool {
	return ab.jobRoles.Contains(role)
}

// AddJobRole adds role to the catalogue. It must not already be present.
func (ab *AddressBook) AddJobRole(role domain.JobTitle) error {
	return ab.jobRoles.Add(role)
}

// RemoveJobRole removes role from the catalogue.
func (ab *AddressBook) RemoveJobRole(role domain.JobTitle) error {
	return ab.jobRoles.Remove(role)
}

// SetJobRoles replaces the catalogue with roles, which must not contain duplicates.
func (ab *AddressBook) SetJobRoles(roles []domain.JobTitle) error {
	return ab.jobRoles.SetAll(roles)
}

// Persons implements ReadOnlyAddressBook.
func (ab *AddressBook) Persons() store.ListView[*domain.Person] {
	return ab.persons.View()
}

// JobRoles implements ReadOnlyAddressBook.
func (ab *AddressBook) JobRoles() store.ListView[domain.JobTitle] {
	return ab.jobRoles.View()
}

// Equal reports whether both address books hold equal persons and job roles in the same order.
func (ab *AddressBook) Equal(other *AddressBook) bool {
	if other == nil {
		return false
	}
	if ab == other {
		return true
	}
	return ab.persons.Equal(other.persons) && ab.jobRoles.Equal(other.jobRoles)
}

// String summarises the address book for logs.
func (ab *AddressBook) String() string {
	return fmt.Sprintf("%d persons, %d job roles", ab.persons.Len(), ab.jobRoles.Len())
}
