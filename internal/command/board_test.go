package command_test

import (
	"testing"
	"time"

	"github.com/phrazzld/recruitbook/internal/command"
	"github.com/phrazzld/recruitbook/internal/store"
	"github.com/phrazzld/recruitbook/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, raw string) time.Time {
	t.Helper()

	d, err := time.Parse(time.DateOnly, raw)
	require.NoError(t, err)
	return d
}

func TestSchedulesCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cmd      command.SchedulesCommand
		feedback string
	}{
		{name: "all", cmd: command.SchedulesCommand{}, feedback: "3 schedules listed!"},
		{name: "on a day", cmd: command.SchedulesCommand{On: day(t, "2024-04-01")}, feedback: "1 schedules listed!"},
		{name: "on an empty day", cmd: command.SchedulesCommand{On: day(t, "2024-01-01")}, feedback: "0 schedules listed!"},
		{
			name:     "range excludes its end",
			cmd:      command.SchedulesCommand{From: day(t, "2024-04-01"), To: day(t, "2024-04-03")},
			feedback: "2 schedules listed!",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := tc.cmd.Execute(newTypicalModel(t))
			require.NoError(t, err)
			assert.Equal(t, tc.feedback, result.Feedback)
		})
	}

	t.Run("invalid range", func(t *testing.T) {
		t.Parallel()

		m := newTypicalModel(t)
		_, err := command.SchedulesCommand{From: day(t, "2024-04-03"), To: day(t, "2024-04-01")}.Execute(m)
		assertCommandError(t, err, command.MessageInvalidDateRange)

		_, err = command.SchedulesCommand{From: day(t, "2024-04-03")}.Execute(m)
		assertCommandError(t, err, command.MessageInvalidDateRange)
	})
}

func TestRolesCommands(t *testing.T) {
	t.Parallel()

	m := newTypicalModel(t)

	result, err := command.RolesCommand{Keyword: "engineer"}.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "3 job roles listed!", result.Feedback)

	role := testutils.MustJobTitle(t, testutils.JobRoleNotInDefaultList)
	result, err = command.AddRoleCommand{Role: role}.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "New job role added: "+testutils.JobRoleNotInDefaultList, result.Feedback)
	assert.True(t, m.HasJobRole(role))
	assert.Equal(t, m.AddressBook().JobRoles().Len(), m.FilteredJobRoles().Len(), "adding a role resets the filter")

	_, err = command.AddRoleCommand{Role: role}.Execute(m)
	assertCommandError(t, err, command.MessageDuplicateJobRole)
	assert.ErrorIs(t, err, store.ErrDuplicateJobRole)

	result, err = command.RolesCommand{}.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "13 job roles listed!", result.Feedback)
}

func TestDeleteRoleCommand(t *testing.T) {
	t.Parallel()

	m := newTypicalModel(t)
	_, err := command.RolesCommand{Keyword: "engineer"}.Execute(m)
	require.NoError(t, err)
	require.Equal(t, 3, m.FilteredJobRoles().Len())
	first := m.FilteredJobRoles().At(0)

	result, err := command.DeleteRoleCommand{Index: 1}.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "Deleted job role: "+first.String(), result.Feedback)
	assert.False(t, m.HasJobRole(first))
	assert.Equal(t, 2, m.FilteredJobRoles().Len(), "the index refers to the filtered catalogue")

	_, err = command.DeleteRoleCommand{Index: 3}.Execute(m)
	assertCommandError(t, err, command.MessageInvalidJobRoleIndex)
	assert.ErrorIs(t, err, command.ErrInvalidIndex)
}
