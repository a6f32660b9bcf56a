package model

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/store"
)

// ReadOnlyScheduleBoard is the view of a schedule board handed to collaborators.
type ReadOnlyScheduleBoard interface {
	// Schedules returns a live read-only view of the interview schedules.
	Schedules() store.ListView[domain.Schedule]
}

// ScheduleBoard is the aggregate root for interview schedules.
// Its lifecycle is independent of the AddressBook; ModelManager.SyncScheduleBoard
// reconciles the two.
type ScheduleBoard struct {
	schedules *store.UniqueList[domain.Schedule]
	logger    *slog.Logger
}

// NewScheduleBoard creates an empty schedule board.
func NewScheduleBoard(logger *slog.Logger) *ScheduleBoard {
	logger = orDefault(logger)
	return &ScheduleBoard{
		schedules: newScheduleList(logger),
		logger:    logger,
	}
}

// NewScheduleBoardFrom creates a schedule board holding a copy of src's schedules.
func NewScheduleBoardFrom(src ReadOnlyScheduleBoard, logger *slog.Logger) (*ScheduleBoard, error) {
	sb := NewScheduleBoard(logger)
	if err := sb.ResetData(src); err != nil {
		return nil, err
	}
	return sb, nil
}

// ResetData replaces all schedules with a copy of src's.
func (sb *ScheduleBoard) ResetData(src ReadOnlyScheduleBoard) error {
	return sb.SetSchedules(src.Schedules().Items())
}

// HasSchedule reports whether s is on the board.
func (sb *ScheduleBoard) HasSchedule(s domain.Schedule) bool {
	return sb.schedules.Contains(s)
}

// AddSchedule adds s. It must not already be on the board.
func (sb *ScheduleBoard) AddSchedule(s domain.Schedule) error {
	return sb.schedules.Add(s)
}

// RemoveSchedule removes s. It must be on the board.
func (sb *ScheduleBoard) RemoveSchedule(s domain.Schedule) error {
	return sb.schedules.Remove(s)
}

// SetSchedules replaces the schedules with schedules, which must not contain duplicates.
func (sb *ScheduleBoard) SetSchedules(schedules []domain.Schedule) error {
	return sb.schedules.SetAll(schedules)
}

// Schedules implements ReadOnlyScheduleBoard.
func (sb *ScheduleBoard) Schedules() store.ListView[domain.Schedule] {
	return sb.schedules.View()
}

// Equal reports whether both boards hold the same schedules in the same order.
func (sb *ScheduleBoard) Equal(other *ScheduleBoard) bool {
	if other == nil {
		return false
	}
	return sb == other || sb.schedules.Equal(other.schedules)
}

// String summarises the board for logs.
func (sb *ScheduleBoard) String() string {
	return fmt.Sprintf("%d schedules", sb.schedules.Len())
}
