package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/model"
	"github.com/phrazzld/recruitbook/internal/redact"
	"github.com/phrazzld/recruitbook/internal/storage"
	"github.com/phrazzld/recruitbook/internal/store"
)

// MessageDuplicateSchedule is reported for a schedule listed twice.
const MessageDuplicateSchedule = "Schedules list contains duplicate schedule(s)."

type jsonSerializableScheduleBoard struct {
	Schedules []string `json:"schedules"`
}

// ScheduleBoardStore implements storage.ScheduleBoardStorage on a JSON file.
type ScheduleBoardStore struct {
	path        string
	skipInvalid bool
	logger      *slog.Logger
}

var _ storage.ScheduleBoardStorage = (*ScheduleBoardStore)(nil)

// NewScheduleBoardStore creates a store for the schedule board at path.
func NewScheduleBoardStore(path string, opts Options) *ScheduleBoardStore {
	return &ScheduleBoardStore{
		path:        path,
		skipInvalid: opts.SkipInvalidRecords,
		logger:      opts.logger("jsonfile_schedule_board"),
	}
}

func (s *ScheduleBoardStore) ScheduleBoardLocation() string {
	return s.path
}

// ReadScheduleBoard implements storage.ScheduleBoardStorage.
func (s *ScheduleBoardStore) ReadScheduleBoard(ctx context.Context) (*model.ScheduleBoard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := readDocument(s.path, scheduleBoardSchema)
	if err != nil {
		return nil, err
	}

	var doc jsonSerializableScheduleBoard
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, storage.NewDataLoadingError(s.path, err)
	}

	sb := model.NewScheduleBoard(s.logger)
	for i, raw := range doc.Schedules {
		schedule, err := domain.NewSchedule(raw)
		if err == nil && sb.HasSchedule(schedule) {
			err = fmt.Errorf("%w: %s", store.ErrDuplicateSchedule, MessageDuplicateSchedule)
		}
		if err != nil {
			if s.skipInvalid {
				s.logger.Warn("skipping invalid record",
					slog.String("path", s.path),
					slog.String("record", "schedule"),
					slog.Int("index", i),
					slog.String("error", redact.Error(err)))
				continue
			}
			return nil, storage.NewDataLoadingError(s.path, err)
		}
		if err := sb.AddSchedule(schedule); err != nil {
			return nil, storage.NewDataLoadingError(s.path, err)
		}
	}
	return sb, nil
}

// SaveScheduleBoard implements storage.ScheduleBoardStorage.
func (s *ScheduleBoardStore) SaveScheduleBoard(ctx context.Context, sb model.ReadOnlyScheduleBoard) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := jsonSerializableScheduleBoard{Schedules: make([]string, 0, sb.Schedules().Len())}
	for _, schedule := range sb.Schedules().All() {
		doc.Schedules = append(doc.Schedules, schedule.String())
	}

	if err := writeDocument(s.path, doc); err != nil {
		return store.NewStoreError("schedule board", "save", s.path, err)
	}
	s.logger.Info("schedule board saved",
		slog.String("path", s.path),
		slog.Int("schedules", len(doc.Schedules)))
	return nil
}
