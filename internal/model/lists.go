package model

import (
	"log/slog"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/store"
)

func newPersonList(logger *slog.Logger) *store.UniqueList[*domain.Person] {
	return store.NewUniqueList(store.Rules[*domain.Person]{
		Source:       "persons",
		Same:         (*domain.Person).IsSamePerson,
		Equal:        (*domain.Person).Equal,
		ErrDuplicate: store.ErrDuplicatePerson,
		ErrNotFound:  store.ErrPersonNotFound,
	}, logger)
}

func newApplicationList(logger *slog.Logger) *store.UniqueList[*domain.JobApplication] {
	return store.NewUniqueList(store.Rules[*domain.JobApplication]{
		Source:       "job applications",
		Same:         (*domain.JobApplication).IsSameApplication,
		Equal:        (*domain.JobApplication).Equal,
		ErrDuplicate: store.ErrDuplicateJobApplication,
		ErrNotFound:  store.ErrJobApplicationNotFound,
	}, logger)
}

func newScheduleList(logger *slog.Logger) *store.UniqueList[domain.Schedule] {
	return store.NewUniqueList(
		store.ComparableRules[domain.Schedule]("schedules", store.ErrDuplicateSchedule, store.ErrScheduleNotFound),
		logger,
	)
}

func newJobRoleList(logger *slog.Logger) *store.UniqueList[domain.JobTitle] {
	return store.NewUniqueList(
		store.ComparableRules[domain.JobTitle]("job roles", store.ErrDuplicateJobRole, store.ErrJobRoleNotFound),
		logger,
	)
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
