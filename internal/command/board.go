package command

import (
	"fmt"
	"time"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/model"
	"github.com/phrazzld/recruitbook/internal/store"
)

// SchedulesCommand filters the schedule board. With On set it shows the schedules
// of that day; with From and To set it shows the schedules in [From, To).
// Otherwise every schedule is shown.
type SchedulesCommand struct {
	On       time.Time
	From, To time.Time
}

func (c SchedulesCommand) Execute(m model.Model) (*Result, error) {
	switch {
	case !c.On.IsZero():
		m.UpdateFilteredScheduleList(domain.SchedulesOnDate(c.On))
	case !c.From.IsZero() || !c.To.IsZero():
		if c.From.IsZero() || c.To.IsZero() || !c.From.Before(c.To) {
			return nil, NewError(MessageInvalidDateRange, nil)
		}
		m.UpdateFilteredScheduleList(domain.SchedulesBetween(c.From, c.To))
	default:
		m.UpdateFilteredScheduleList(store.ShowAll[domain.Schedule])
	}
	return NewResult(fmt.Sprintf("%d schedules listed!", m.FilteredSchedules().Len())), nil
}

// RolesCommand filters the job-role catalogue by Keyword, or shows every role
// when Keyword is empty.
type RolesCommand struct {
	Keyword string
}

func (c RolesCommand) Execute(m model.Model) (*Result, error) {
	if c.Keyword == "" {
		m.UpdateFilteredJobRoleList(store.ShowAll[domain.JobTitle])
	} else {
		m.UpdateFilteredJobRoleList(domain.JobTitleContainsKeyword(c.Keyword))
	}
	return NewResult(fmt.Sprintf("%d job roles listed!", m.FilteredJobRoles().Len())), nil
}

// AddRoleCommand adds a job role to the catalogue.
type AddRoleCommand struct {
	Role domain.JobTitle
}

func (c AddRoleCommand) Execute(m model.Model) (*Result, error) {
	if c.Role.IsZero() {
		return nil, Translate(domain.NewMissingFieldError("Job role", "JobTitle"))
	}
	if m.HasJobRole(c.Role) {
		return nil, NewError(MessageDuplicateJobRole, store.ErrDuplicateJobRole)
	}
	if err := m.AddJobRole(c.Role); err != nil {
		return nil, Translate(err)
	}
	return NewResult(fmt.Sprintf("New job role added: %s", c.Role)), nil
}

// DeleteRoleCommand removes the job role shown at Index from the catalogue.
type DeleteRoleCommand struct {
	Index Index
}

func (c DeleteRoleCommand) Execute(m model.Model) (*Result, error) {
	role, err := jobRoleAt(m.FilteredJobRoles(), c.Index)
	if err != nil {
		return nil, err
	}
	if err := m.DeleteJobRole(role); err != nil {
		return nil, Translate(err)
	}
	return NewResult(fmt.Sprintf("Deleted job role: %s", role)), nil
}
