package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/recruitbook/internal/model"
	"github.com/phrazzld/recruitbook/internal/store"
)

// Manager combines the three storages and converts between stored data and a
// ModelManager.
//
// Manager remembers what it last read or wrote, and Save only writes the parts
// of a model that differ from it. An address book that could not be loaded is
// never overwritten by an unchanged model; the first save that does change it
// archives the unloadable data first when the storage implements
// AddressBookArchiver.
type Manager struct {
	addressBooks   AddressBookStorage
	scheduleBoards ScheduleBoardStorage
	userPrefs      UserPrefsStorage
	logger         *slog.Logger

	stored    snapshot
	recovered bool
}

// snapshot holds copies of the data known to be in storage. A nil part is
// unknown and is always written.
type snapshot struct {
	addressBook   *model.AddressBook
	scheduleBoard *model.ScheduleBoard
	userPrefs     *model.UserPrefs
}

// NewManager creates a Manager over the given storages.
// If logger is nil, slog.Default() is used.
func NewManager(
	addressBooks AddressBookStorage,
	scheduleBoards ScheduleBoardStorage,
	userPrefs UserPrefsStorage,
	logger *slog.Logger,
) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		addressBooks:   addressBooks,
		scheduleBoards: scheduleBoards,
		userPrefs:      userPrefs,
		logger:         logger.With("component", "storage_manager"),
	}
}

// LoadUserPrefs reads preferences from s. Missing or unreadable preferences fall
// back to model.DefaultUserPrefs; only unexpected failures are returned.
func LoadUserPrefs(ctx context.Context, s UserPrefsStorage, logger *slog.Logger) (model.UserPrefs, error) {
	if logger == nil {
		logger = slog.Default()
	}

	prefs, err := s.ReadUserPrefs(ctx)
	var loadErr *DataLoadingError
	switch {
	case err == nil:
		return prefs, nil
	case errors.Is(err, store.ErrNotFound):
		logger.Info("preferences file not found, using default preferences",
			slog.String("location", s.UserPrefsLocation()))
		return model.DefaultUserPrefs(), nil
	case errors.As(err, &loadErr):
		logger.Warn("preferences could not be loaded, using default preferences",
			slog.String("location", s.UserPrefsLocation()),
			slog.String("error", err.Error()))
		return model.DefaultUserPrefs(), nil
	default:
		return model.UserPrefs{}, fmt.Errorf("failed to read user prefs: %w", err)
	}
}

// Load builds a ModelManager from stored data.
//
// An address book that has never been saved is replaced by the sample address
// book; one that cannot be loaded is replaced by an empty address book and
// reported by Recovered. A missing or unloadable schedule board is rebuilt from
// the address book.
func (m *Manager) Load(ctx context.Context, prefs model.UserPrefs) (*model.ModelManager, error) {
	m.stored = snapshot{}
	m.recovered = false

	ab, err := m.loadAddressBook(ctx)
	if err != nil {
		return nil, err
	}
	sb, err := m.loadScheduleBoard(ctx, ab)
	if err != nil {
		return nil, err
	}

	mdl, err := model.NewModelManager(ab, sb, prefs, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize model: %w", err)
	}
	stored := prefs.Clone()
	m.stored.userPrefs = &stored
	return mdl, nil
}

// Recovered reports whether the last Load replaced an unloadable address book
// that has not been saved over since.
func (m *Manager) Recovered() bool {
	return m.recovered
}

func (m *Manager) loadAddressBook(ctx context.Context) (*model.AddressBook, error) {
	location := m.addressBooks.AddressBookLocation()

	ab, err := m.addressBooks.ReadAddressBook(ctx)
	var loadErr *DataLoadingError
	switch {
	case err == nil:
		m.logger.Info("address book loaded",
			slog.String("location", location),
			slog.Int("persons", ab.Persons().Len()))
		return ab, m.rememberAddressBook(ab)
	case errors.Is(err, store.ErrNotFound):
		m.logger.Info("address book not found, starting with sample data",
			slog.String("location", location))
		return model.SampleAddressBook(m.logger)
	case errors.As(err, &loadErr):
		m.logger.Warn("address book could not be loaded, starting with an empty address book",
			slog.String("location", location),
			slog.String("error", err.Error()))
		ab := model.NewAddressBook(m.logger)
		m.recovered = true
		return ab, m.rememberAddressBook(ab)
	default:
		return nil, fmt.Errorf("failed to read address book: %w", err)
	}
}

func (m *Manager) loadScheduleBoard(ctx context.Context, ab *model.AddressBook) (*model.ScheduleBoard, error) {
	location := m.scheduleBoards.ScheduleBoardLocation()

	sb, err := m.scheduleBoards.ReadScheduleBoard(ctx)
	var loadErr *DataLoadingError
	switch {
	case err == nil:
		return sb, m.rememberScheduleBoard(sb)
	case errors.Is(err, store.ErrNotFound):
		m.logger.Info("schedule board not found, rebuilding from address book",
			slog.String("location", location))
		return model.ScheduleBoardFor(ab, m.logger)
	case errors.As(err, &loadErr):
		m.logger.Warn("schedule board could not be loaded, rebuilding from address book",
			slog.String("location", location),
			slog.String("error", err.Error()))
		return model.ScheduleBoardFor(ab, m.logger)
	default:
		return nil, fmt.Errorf("failed to read schedule board: %w", err)
	}
}

// Save writes the parts of the model that differ from what is known to be
// stored. It stops at the first failure.
func (m *Manager) Save(ctx context.Context, mdl model.Model) error {
	ab, err := model.NewAddressBookFrom(mdl.AddressBook(), nil)
	if err != nil {
		return fmt.Errorf("failed to copy address book: %w", err)
	}
	sb, err := model.NewScheduleBoardFrom(mdl.ScheduleBoard(), nil)
	if err != nil {
		return fmt.Errorf("failed to copy schedule board: %w", err)
	}
	prefs := mdl.UserPrefs()

	written := 0
	if !ab.Equal(m.stored.addressBook) {
		if err := m.archiveRecovered(ctx); err != nil {
			return err
		}
		if err := m.addressBooks.SaveAddressBook(ctx, ab); err != nil {
			return fmt.Errorf("failed to save address book: %w", err)
		}
		m.stored.addressBook = ab
		m.recovered = false
		written++
	}
	if !sb.Equal(m.stored.scheduleBoard) {
		if err := m.scheduleBoards.SaveScheduleBoard(ctx, sb); err != nil {
			return fmt.Errorf("failed to save schedule board: %w", err)
		}
		m.stored.scheduleBoard = sb
		written++
	}
	if m.stored.userPrefs == nil || !prefs.Equal(*m.stored.userPrefs) {
		if err := m.userPrefs.SaveUserPrefs(ctx, prefs); err != nil {
			return fmt.Errorf("failed to save user prefs: %w", err)
		}
		stored := prefs.Clone()
		m.stored.userPrefs = &stored
		written++
	}

	m.logger.Debug("model saved",
		slog.Int("parts_written", written),
		slog.String("address_book", m.addressBooks.AddressBookLocation()),
		slog.String("schedule_board", m.scheduleBoards.ScheduleBoardLocation()))
	return nil
}

// archiveRecovered sets the unloadable address book aside before it is first
// overwritten.
func (m *Manager) archiveRecovered(ctx context.Context) error {
	if !m.recovered {
		return nil
	}
	location := m.addressBooks.AddressBookLocation()

	archiver, ok := m.addressBooks.(AddressBookArchiver)
	if !ok {
		m.logger.Warn("overwriting address book that could not be loaded",
			slog.String("location", location))
		return nil
	}
	archived, err := archiver.ArchiveAddressBook(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive address book: %w", err)
	}
	if archived == "" {
		return nil
	}
	m.logger.Warn("address book that could not be loaded was archived",
		slog.String("location", location),
		slog.String("archive", archived))
	return nil
}

func (m *Manager) rememberAddressBook(ab *model.AddressBook) error {
	stored, err := model.NewAddressBookFrom(ab, nil)
	if err != nil {
		return fmt.Errorf("failed to copy address book: %w", err)
	}
	m.stored.addressBook = stored
	return nil
}

func (m *Manager) rememberScheduleBoard(sb *model.ScheduleBoard) error {
	stored, err := model.NewScheduleBoardFrom(sb, nil)
	if err != nil {
		return fmt.Errorf("failed to copy schedule board: %w", err)
	}
	m.stored.scheduleBoard = stored
	return nil
}
