package model

import (
	"strings"
	"testing"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/store"
	"github.com/phrazzld/recruitbook/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(persons []*domain.Person) []string {
	out := make([]string, len(persons))
	for i, p := range persons {
		out[i] = p.Name().String()
	}
	return out
}

func TestModelManager_Constructor(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)
	assert.True(t, m.UserPrefs().Equal(DefaultUserPrefs()))
	assert.True(t, m.GuiSettings().Equal(DefaultGuiSettings()))
	assert.True(t, NewAddressBook(nil).Equal(mustCopy(t, m.AddressBook())))
	assert.Equal(t, 0, m.FilteredPersons().Len())
	assert.Equal(t, len(DefaultJobRoles), m.FilteredJobRoles().Len())
}

func TestModelManager_RejectsInvalidPrefs(t *testing.T) {
	t.Parallel()

	prefs := DefaultUserPrefs()
	prefs.AddressBookFilePath = ""
	_, err := NewModelManager(NewAddressBook(nil), NewScheduleBoard(nil), prefs, nil)
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestModelManager_SetUserPrefsCopies(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)
	prefs := DefaultUserPrefs()
	prefs.AddressBookFilePath = "address/book/file/path"
	prefs.GuiSettings = NewGuiSettings(1, 2, 3, 4, ThemeDark)
	require.NoError(t, m.SetUserPrefs(prefs))
	assert.True(t, m.UserPrefs().Equal(prefs))

	old := prefs.Clone()
	prefs.AddressBookFilePath = "new/address/book/file/path"
	prefs.GuiSettings.WindowCoordinates.X = 99
	assert.True(t, m.UserPrefs().Equal(old), "modifying the argument does not modify the model")

	got := m.UserPrefs()
	got.GuiSettings.WindowCoordinates.Y = 42
	assert.True(t, m.UserPrefs().Equal(old), "modifying the result does not modify the model")

	bad := DefaultUserPrefs()
	bad.GuiSettings.Theme = "SEPIA"
	assert.ErrorIs(t, m.SetUserPrefs(bad), domain.ErrValidation)
}

func TestModelManager_GuiSettingsAndPaths(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)

	settings := NewGuiSettings(1, 2, 3, 4, ThemeDark)
	m.SetGuiSettings(settings)
	assert.True(t, m.GuiSettings().Equal(settings))

	require.NoError(t, m.SetAddressBookFilePath("address/book/file/path"))
	assert.Equal(t, "address/book/file/path", m.AddressBookFilePath())
	require.NoError(t, m.SetScheduleBoardFilePath("schedule/board/file/path"))
	assert.Equal(t, "schedule/board/file/path", m.ScheduleBoardFilePath())

	assert.ErrorIs(t, m.SetAddressBookFilePath(""), domain.ErrMissingField)
	assert.ErrorIs(t, m.SetScheduleBoardFilePath(""), domain.ErrMissingField)
	assert.Equal(t, "schedule/board/file/path", m.ScheduleBoardFilePath())
}

func TestModelManager_HasPerson(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)
	alice := testutils.Alice(t)

	assert.False(t, m.HasPerson(alice))
	require.NoError(t, m.AddPerson(alice))
	assert.True(t, m.HasPerson(alice))
}

func TestModelManager_PersonScenario(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)
	alice := testutils.Alice(t)
	require.NoError(t, m.AddPerson(alice))

	alicePrime := testutils.AliceWith(t, testutils.WithPhone("11112222"))
	err := m.AddPerson(alicePrime)
	assert.ErrorIs(t, err, store.ErrDuplicatePerson)
	assert.True(t, store.IsDuplicateError(err))

	aliceEdited := testutils.AliceWith(t, testutils.WithPhone("33334444"))
	require.NoError(t, m.SetPerson(alice, aliceEdited))
	assert.Equal(t, "33334444", m.AddressBook().Persons().At(0).Phone().String())
	assert.Equal(t, "33334444", m.FilteredPersons().At(0).Phone().String(), "views update before the call returns")

	assert.ErrorIs(t, m.DeletePerson(alice), store.ErrPersonNotFound)
	require.NoError(t, m.DeletePerson(aliceEdited))
	assert.Equal(t, 0, m.FilteredPersons().Len())
}

func TestModelManager_FilteredPersons(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)
	require.NoError(t, m.AddPerson(testutils.Alice(t)))
	require.NoError(t, m.AddPerson(testutils.Benson(t)))

	m.UpdateFilteredPersonList(domain.NameContainsSubstring("Ali"))
	assert.Equal(t, []string{"Alice Pauline"}, names(m.FilteredPersons().Items()))

	m.UpdateFilteredPersonList(store.ShowAll[*domain.Person])
	assert.Equal(t, []string{"Alice Pauline", "Benson Meier"}, names(m.FilteredPersons().Items()))

	m.UpdateFilteredPersonList(domain.NameContainsKeywords([]string{"meier"}))
	assert.Equal(t, []string{"Benson Meier"}, names(m.FilteredPersons().Items()))

	// Adding a person resets the filter so the new person is visible.
	require.NoError(t, m.AddPerson(testutils.MustBuildPerson(t, testutils.CarlSpec)))
	assert.Equal(t, 3, m.FilteredPersons().Len())
}

func TestModelManager_FilteredViewIsReadOnly(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)
	require.NoError(t, m.AddPerson(testutils.Alice(t)))

	_, isList := m.AddressBook().Persons().(*store.UniqueList[*domain.Person])
	assert.False(t, isList)

	items := m.FilteredPersons().Items()
	items[0] = nil
	assert.NotNil(t, m.FilteredPersons().At(0))
}

func TestModelManager_FirstPerson(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)
	require.NoError(t, m.AddPerson(testutils.Alice(t)))
	assert.Same(t, m.FilteredPersons().At(0), m.FirstPerson())

	m.UpdateFilteredPersonList(func(*domain.Person) bool { return false })
	assert.Nil(t, m.FirstPerson())
}

func TestModelManager_JobRoles(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)
	notDefault := testutils.MustJobTitle(t, testutils.JobRoleNotInDefaultList)

	assert.False(t, m.HasJobRole(notDefault))
	assert.True(t, m.HasJobRole(testutils.MustJobTitle(t, testutils.JobRoleInDefaultList)))

	m.UpdateFilteredJobRoleList(domain.JobTitleContainsKeyword("engineer"))
	engineers := m.FilteredJobRoles().Len()
	assert.Less(t, engineers, len(DefaultJobRoles))
	for _, role := range m.FilteredJobRoles().All() {
		assert.Contains(t, strings.ToLower(role.String()), "engineer")
	}

	require.NoError(t, m.AddJobRole(notDefault))
	assert.True(t, m.HasJobRole(notDefault))
	assert.Equal(t, len(DefaultJobRoles)+1, m.FilteredJobRoles().Len(), "adding a role resets the filter")
	assert.ErrorIs(t, m.AddJobRole(notDefault), store.ErrDuplicateJobRole)
}

func TestModelManager_Schedules(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)
	s1 := testutils.MustSchedule(t, testutils.Schedule1)
	s2 := testutils.MustSchedule(t, testutils.Schedule2)

	require.NoError(t, m.AddSchedule(s1))
	require.NoError(t, m.AddSchedule(s2))
	assert.True(t, m.HasSchedule(s1))
	assert.ErrorIs(t, m.AddSchedule(s1), store.ErrDuplicateSchedule)

	m.UpdateFilteredScheduleList(domain.SchedulesOnDate(s2.Time()))
	assert.Equal(t, []domain.Schedule{s2}, m.FilteredSchedules().Items())

	require.NoError(t, m.DeleteSchedule(s2))
	assert.Equal(t, 0, m.FilteredSchedules().Len())
	assert.ErrorIs(t, m.DeleteSchedule(s2), store.ErrScheduleNotFound)
}

func TestModelManager_SyncScheduleBoard(t *testing.T) {
	t.Parallel()

	ab := NewAddressBook(nil)
	require.NoError(t, ab.SetPersons(testutils.TypicalPersons(t)))
	m, err := NewModelManager(ab, NewScheduleBoard(nil), DefaultUserPrefs(), nil)
	require.NoError(t, err)

	require.NoError(t, m.SyncScheduleBoard())
	assert.Equal(t, []domain.Schedule{
		testutils.MustSchedule(t, testutils.Schedule1),
		testutils.MustSchedule(t, testutils.Schedule2),
		testutils.MustSchedule(t, testutils.Schedule3),
	}, m.ScheduleBoard().Schedules().Items(), "distinct schedules in address-book order")
	assert.Equal(t, 3, m.FilteredSchedules().Len())
}

func TestModelManager_JobApplicationProtocol(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)
	alice := testutils.Alice(t)
	require.NoError(t, m.AddPerson(alice))

	t.Run("add", func(t *testing.T) {
		template := testutils.MustCreateApplicationTemplate(t, "Data Scientist", testutils.Schedule2, "APPLIED", "")
		updated, err := m.AddJobApplication(alice, template)
		require.NoError(t, err)

		assert.Equal(t, alice.ID(), updated.ID())
		require.Len(t, updated.JobApplications(), 2)
		assert.Equal(t, alice.ID(), updated.JobApplications()[1].OwnerID())
		assert.Len(t, alice.JobApplications(), 1, "the original person is not mutated")
		assert.Same(t, updated, m.AddressBook().Persons().At(0))
		alice = updated
	})

	t.Run("same application with a different remark is a duplicate", func(t *testing.T) {
		template := testutils.MustCreateApplicationTemplate(t, "Data Scientist", testutils.Schedule2, "APPLIED", "follow up")
		_, err := m.AddJobApplication(alice, template)
		assert.ErrorIs(t, err, store.ErrDuplicateJobApplication)
		assert.Same(t, alice, m.AddressBook().Persons().At(0), "nothing committed")
	})

	t.Run("set", func(t *testing.T) {
		target := alice.JobApplications()[1]
		edited := target.WithRemark(domain.NewRemark("follow up"))
		updated, err := m.SetJobApplication(alice, target, edited)
		require.NoError(t, err)
		assert.Equal(t, "follow up", updated.JobApplications()[1].Remark().String())
		alice = updated
	})

	t.Run("set missing target", func(t *testing.T) {
		stale := testutils.MustCreateApplicationTemplate(t, "Data Scientist", testutils.Schedule2, "APPLIED", "").BoundTo(alice)
		_, err := m.SetJobApplication(alice, stale, stale)
		assert.ErrorIs(t, err, store.ErrJobApplicationNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		updated, err := m.DeleteJobApplication(alice, alice.JobApplications()[0])
		require.NoError(t, err)
		require.Len(t, updated.JobApplications(), 1)
		assert.Equal(t, "Data Scientist", updated.JobApplications()[0].JobTitle().String())
		alice = updated
	})

	t.Run("unknown person", func(t *testing.T) {
		template := testutils.MustCreateApplicationTemplate(t, "QA Engineer", testutils.Schedule3, "APPLIED", "")
		_, err := m.AddJobApplication(testutils.Benson(t), template)
		assert.ErrorIs(t, err, store.ErrPersonNotFound)
	})
}

func TestModelManager_Equal(t *testing.T) {
	t.Parallel()

	ab := NewAddressBook(nil)
	require.NoError(t, ab.SetPersons([]*domain.Person{testutils.Alice(t), testutils.Benson(t)}))
	sb := NewScheduleBoard(nil)
	require.NoError(t, sb.SetSchedules([]domain.Schedule{
		testutils.MustSchedule(t, testutils.Schedule1),
		testutils.MustSchedule(t, testutils.Schedule2),
	}))
	prefs := DefaultUserPrefs()

	newManager := func(ab ReadOnlyAddressBook, sb ReadOnlyScheduleBoard, prefs UserPrefs) *ModelManager {
		m, err := NewModelManager(ab, sb, prefs, nil)
		require.NoError(t, err)
		return m
	}

	m := newManager(ab, sb, prefs)
	assert.True(t, m.Equal(newManager(ab, sb, prefs)), "same values")
	assert.True(t, m.Equal(m), "same object")
	assert.False(t, m.Equal(nil))
	assert.False(t, m.Equal(newManager(NewAddressBook(nil), NewScheduleBoard(nil), prefs)), "different data")

	m.UpdateFilteredPersonList(domain.NameContainsKeywords([]string{"Alice", "Pauline"}))
	assert.False(t, m.Equal(newManager(ab, sb, prefs)), "different filtered persons")
	m.UpdateFilteredPersonList(store.ShowAll[*domain.Person])

	m.UpdateFilteredScheduleList(func(domain.Schedule) bool { return false })
	assert.False(t, m.Equal(newManager(ab, sb, prefs)), "different filtered schedules")
	m.UpdateFilteredScheduleList(nil)

	differentPrefs := DefaultUserPrefs()
	differentPrefs.AddressBookFilePath = "differentFilePath"
	assert.False(t, m.Equal(newManager(ab, sb, differentPrefs)), "different prefs")
	assert.True(t, m.Equal(newManager(ab, sb, prefs)))
}

func TestSampleData(t *testing.T) {
	t.Parallel()

	ab, err := SampleAddressBook(nil)
	require.NoError(t, err)
	assert.Equal(t, len(samplePersons), ab.Persons().Len())

	sb, err := SampleScheduleBoard(nil)
	require.NoError(t, err)
	assert.Less(t, sb.Schedules().Len(), 8, "shared schedules appear once")
	assert.Positive(t, sb.Schedules().Len())
}

func TestModelManager_AddPersonLogsMaskedContact(t *testing.T) {
	t.Parallel()

	log, handler := testutils.NewTestLogger()
	m := NewDefaultModelManager(log)
	require.NoError(t, m.AddPerson(testutils.Alice(t)))

	entry, ok := handler.Find("person added")
	require.True(t, ok)
	assert.Equal(t, "a****@example.com", entry["email"])
	assert.Equal(t, "****1253", entry["phone"])
	assert.Equal(t, "DEBUG", entry["level"])
}

func TestModelManager_DeleteJobRole(t *testing.T) {
	t.Parallel()

	m := NewDefaultModelManager(nil)
	role := testutils.MustJobTitle(t, DefaultJobRoles[0])

	require.NoError(t, m.DeleteJobRole(role))
	assert.False(t, m.HasJobRole(role))
	assert.Equal(t, len(DefaultJobRoles)-1, m.FilteredJobRoles().Len())
	assert.ErrorIs(t, m.DeleteJobRole(role), store.ErrJobRoleNotFound)
}
