package model

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/redact"
	"github.com/phrazzld/recruitbook/internal/store"
)

// ModelManager represents the in-memory model of the recruitment book.
// It is not safe for concurrent use.
type ModelManager struct {
	addressBook   *AddressBook
	scheduleBoard *ScheduleBoard
	userPrefs     UserPrefs

	filteredPersons   *store.FilteredList[*domain.Person]
	filteredSchedules *store.FilteredList[domain.Schedule]
	filteredJobRoles  *store.FilteredList[domain.JobTitle]

	logger *slog.Logger
}

// Compile-time check that ModelManager implements Model.
var _ Model = (*ModelManager)(nil)

// NewModelManager initializes a ModelManager with copies of the given address book,
// schedule board and user prefs. Every filter starts out showing all elements.
func NewModelManager(
	addressBook ReadOnlyAddressBook,
	scheduleBoard ReadOnlyScheduleBoard,
	userPrefs UserPrefs,
	logger *slog.Logger,
) (*ModelManager, error) {
	logger = orDefault(logger).With("component", "model_manager")

	if err := userPrefs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user prefs: %w", err)
	}
	ab, err := NewAddressBookFrom(addressBook, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to copy address book: %w", err)
	}
	sb, err := NewScheduleBoardFrom(scheduleBoard, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to copy schedule board: %w", err)
	}

	logger.Debug("initializing model",
		slog.String("address_book", ab.String()),
		slog.String("schedule_board", sb.String()))

	return &ModelManager{
		addressBook:       ab,
		scheduleBoard:     sb,
		userPrefs:         userPrefs.Clone(),
		filteredPersons:   store.NewFilteredList("filtered persons", ab.Persons(), logger),
		filteredSchedules: store.NewFilteredList("filtered schedules", sb.Schedules(), logger),
		filteredJobRoles:  store.NewFilteredList("filtered job roles", ab.JobRoles(), logger),
		logger:            logger,
	}, nil
}

// NewDefaultModelManager initializes a ModelManager with an empty address book,
// an empty schedule board and default user prefs.
func NewDefaultModelManager(logger *slog.Logger) *ModelManager {
	m, err := NewModelManager(NewAddressBook(logger), NewScheduleBoard(logger), DefaultUserPrefs(), logger)
	if err != nil {
		// ALLOW-PANIC: empty aggregates and default prefs are always valid
		panic(err)
	}
	return m
}

// UserPrefs returns a copy of the current preferences.
func (m *ModelManager) UserPrefs() UserPrefs {
	return m.userPrefs.Clone()
}

// SetUserPrefs replaces the preferences with a copy of prefs after validating them.
func (m *ModelManager) SetUserPrefs(prefs UserPrefs) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	m.userPrefs = prefs.Clone()
	return nil
}

// GuiSettings returns a copy of the window settings.
func (m *ModelManager) GuiSettings() GuiSettings {
	return m.userPrefs.GuiSettings.Clone()
}

// SetGuiSettings replaces the window settings with a copy of settings.
func (m *ModelManager) SetGuiSettings(settings GuiSettings) {
	m.userPrefs.GuiSettings = settings.Clone()
}

// AddressBookFilePath returns the configured address book file.
func (m *ModelManager) AddressBookFilePath() string {
	return m.userPrefs.AddressBookFilePath
}

// SetAddressBookFilePath sets the address book file. path must not be empty.
func (m *ModelManager) SetAddressBookFilePath(path string) error {
	if path == "" {
		return domain.NewMissingFieldError("User prefs", "AddressBookFilePath")
	}
	m.userPrefs.AddressBookFilePath = path
	return nil
}

// ScheduleBoardFilePath returns the configured schedule board file.
func (m *ModelManager) ScheduleBoardFilePath() string {
	return m.userPrefs.ScheduleBoardFilePath
}

// SetScheduleBoardFilePath sets the schedule board file. path must not be empty.
func (m *ModelManager) SetScheduleBoardFilePath(path string) error {
	if path == "" {
		return domain.NewMissingFieldError("User prefs", "ScheduleBoardFilePath")
	}
	m.userPrefs.ScheduleBoardFilePath = path
	return nil
}

// AddressBook returns a read-only view of the canonical address book.
func (m *ModelManager) AddressBook() ReadOnlyAddressBook {
	return m.addressBook
}

// SetAddressBook replaces the address book data with a copy of src.
func (m *ModelManager) SetAddressBook(src ReadOnlyAddressBook) error {
	if err := m.addressBook.ResetData(src); err != nil {
		return err
	}
	m.logger.Debug("address book replaced", slog.String("address_book", m.addressBook.String()))
	return nil
}

// HasPerson reports whether a person with the same identity as p exists.
func (m *ModelManager) HasPerson(p *domain.Person) bool {
	return m.addressBook.HasPerson(p)
}

// DeletePerson removes p and its job applications.
func (m *ModelManager) DeletePerson(p *domain.Person) error {
	if err := m.addressBook.RemovePerson(p); err != nil {
		return err
	}
	m.logger.Debug("person deleted", slog.String("person_id", p.ID().String()))
	return nil
}

// AddPerson adds p and resets the person filter so that p is visible.
func (m *ModelManager) AddPerson(p *domain.Person) error {
	if err := m.addressBook.AddPerson(p); err != nil {
		return err
	}
	m.UpdateFilteredPersonList(store.ShowAll[*domain.Person])
	m.logger.Debug("person added",
		slog.String("person_id", p.ID().String()),
		slog.String("email", redact.MaskEmail(p.Email().String())),
		slog.String("phone", redact.MaskPhone(p.Phone().String())))
	return nil
}

// SetPerson replaces target with edited. edited must not clash with another person.
func (m *ModelManager) SetPerson(target, edited *domain.Person) error {
	if err := m.addressBook.SetPerson(target, edited); err != nil {
		return err
	}
	m.logger.Debug("person replaced",
		slog.String("person_id", edited.ID().String()),
		slog.Int("job_applications", len(edited.JobApplications())))
	return nil
}

// AddJobApplication binds template to p, adds it to p's applications and swaps the
// resulting replacement of p into the address book. It returns the replacement.
// Fails with store.ErrDuplicateJobApplication if p already has the same application.
func (m *ModelManager) AddJobApplication(p *domain.Person, template *domain.JobApplication) (*domain.Person, error) {
	return m.editApplications(p, func(apps *store.UniqueList[*domain.JobApplication]) error {
		return apps.Add(template.BoundTo(p))
	})
}

// SetJobApplication replaces target, one of p's applications, with edited.
func (m *ModelManager) SetJobApplication(
	p *domain.Person,
	target, edited *domain.JobApplication,
) (*domain.Person, error) {
	return m.editApplications(p, func(apps *store.UniqueList[*domain.JobApplication]) error {
		return apps.Set(target, edited.BoundTo(p))
	})
}

// DeleteJobApplication removes app from p's applications.
func (m *ModelManager) DeleteJobApplication(p *domain.Person, app *domain.JobApplication) (*domain.Person, error) {
	return m.editApplications(p, func(apps *store.UniqueList[*domain.JobApplication]) error {
		return apps.Remove(app)
	})
}

// editApplications runs edit against p's applications and commits the result as a
// replacement person. Nothing is committed if any step fails.
func (m *ModelManager) editApplications(
	p *domain.Person,
	edit func(apps *store.UniqueList[*domain.JobApplication]) error,
) (*domain.Person, error) {
	if !m.addressBook.persons.Contains(p) {
		return nil, store.ErrPersonNotFound
	}
	apps := newApplicationList(m.logger)
	if err := apps.SetAll(p.JobApplications()); err != nil {
		return nil, err
	}
	if err := edit(apps); err != nil {
		return nil, err
	}
	replacement := p.WithApplications(apps.Items())
	if err := m.SetPerson(p, replacement); err != nil {
		return nil, err
	}
	return replacement, nil
}

// HasJobRole reports whether role is in the catalogue.
func (m *ModelManager) HasJobRole(role domain.JobTitle) bool {
	return m.addressBook.HasJobRole(role)
}

// AddJobRole adds role to the catalogue and resets the job-role filter.
func (m *ModelManager) AddJobRole(role domain.JobTitle) error {
	if err := m.addressBook.AddJobRole(role); err != nil {
		return err
	}
	m.UpdateFilteredJobRoleList(store.ShowAll[domain.JobTitle])
	return nil
}

// DeleteJobRole removes role from the catalogue. Job applications already made
// for that title are kept.
func (m *ModelManager) DeleteJobRole(role domain.JobTitle) error {
	if err := m.addressBook.RemoveJobRole(role); err != nil {
		return err
	}
	m.logger.Debug("job role deleted", slog.String("job_role", role.String()))
	return nil
}

// ScheduleBoard returns a read-only view of the canonical schedule board.
func (m *ModelManager) ScheduleBoard() ReadOnlyScheduleBoard {
	return m.scheduleBoard
}

// SetScheduleBoard replaces the schedule board data with a copy of src.
func (m *ModelManager) SetScheduleBoard(src ReadOnlyScheduleBoard) error {
	return m.scheduleBoard.ResetData(src)
}

// HasSchedule reports whether s is on the schedule board.
func (m *ModelManager) HasSchedule(s domain.Schedule) bool {
	return m.scheduleBoard.HasSchedule(s)
}

// AddSchedule adds s and resets the schedule filter so that s is visible.
func (m *ModelManager) AddSchedule(s domain.Schedule) error {
	if err := m.scheduleBoard.AddSchedule(s); err != nil {
		return err
	}
	m.UpdateFilteredScheduleList(store.ShowAll[domain.Schedule])
	return nil
}

// DeleteSchedule removes s from the schedule board.
func (m *ModelManager) DeleteSchedule(s domain.Schedule) error {
	return m.scheduleBoard.RemoveSchedule(s)
}

// SyncScheduleBoard replaces the schedule board with the distinct schedules of all
// job applications, in address-book order.
func (m *ModelManager) SyncScheduleBoard() error {
	schedules := schedulesOf(m.addressBook)
	if err := m.scheduleBoard.SetSchedules(schedules); err != nil {
		return err
	}
	m.logger.Debug("schedule board synchronised", slog.Int("schedules", len(schedules)))
	return nil
}

// FilteredPersons returns the live, filtered view of persons.
func (m *ModelManager) FilteredPersons() store.ListView[*domain.Person] {
	return m.filteredPersons
}

// UpdateFilteredPersonList replaces the person filter.
func (m *ModelManager) UpdateFilteredPersonList(predicate store.Predicate[*domain.Person]) {
	m.filteredPersons.SetPredicate(predicate)
}

// FirstPerson returns the first visible person, or nil when none is visible.
func (m *ModelManager) FirstPerson() *domain.Person {
	p, ok := m.filteredPersons.First()
	if !ok {
		return nil
	}
	return p
}

// FilteredSchedules returns the live, filtered view of schedules.
func (m *ModelManager) FilteredSchedules() store.ListView[domain.Schedule] {
	return m.filteredSchedules
}

// UpdateFilteredScheduleList replaces the schedule filter.
func (m *ModelManager) UpdateFilteredScheduleList(predicate store.Predicate[domain.Schedule]) {
	m.filteredSchedules.SetPredicate(predicate)
}

// FilteredJobRoles returns the live, filtered view of the job-role catalogue.
func (m *ModelManager) FilteredJobRoles() store.ListView[domain.JobTitle] {
	return m.filteredJobRoles
}

// UpdateFilteredJobRoleList replaces the job-role filter.
func (m *ModelManager) UpdateFilteredJobRoleList(predicate store.Predicate[domain.JobTitle]) {
	m.filteredJobRoles.SetPredicate(predicate)
}

// Equal reports whether both models hold equal data and preferences and currently
// show the same filtered contents.
func (m *ModelManager) Equal(other *ModelManager) bool {
	if other == nil {
		return false
	}
	if m == other {
		return true
	}
	return m.addressBook.Equal(other.addressBook) &&
		m.scheduleBoard.Equal(other.scheduleBoard) &&
		m.userPrefs.Equal(other.userPrefs) &&
		slices.EqualFunc(m.filteredPersons.Items(), other.filteredPersons.Items(), (*domain.Person).Equal) &&
		slices.Equal(m.filteredSchedules.Items(), other.filteredSchedules.Items()) &&
		slices.Equal(m.filteredJobRoles.Items(), other.filteredJobRoles.Items())
}
