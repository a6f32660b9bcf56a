package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/recruitbook/internal/command"
	"github.com/phrazzld/recruitbook/internal/config"
	"github.com/phrazzld/recruitbook/internal/model"
	"github.com/phrazzld/recruitbook/internal/platform/jsonfile"
	"github.com/phrazzld/recruitbook/internal/platform/logger"
	"github.com/phrazzld/recruitbook/internal/platform/postgres"
	"github.com/phrazzld/recruitbook/internal/redact"
	"github.com/phrazzld/recruitbook/internal/storage"
)

// session is a loaded model together with the storage it is saved to.
type session struct {
	model   *model.ModelManager
	storage *storage.Manager
	db      *sql.DB
	out     io.Writer
	logger  *slog.Logger

	// exited is set once an exit command has run.
	exited bool
}

// openSession loads user preferences, the address book and the schedule board
// from the configured backend.
func openSession(ctx context.Context, cfg *config.Config, out io.Writer, log *slog.Logger) (*session, error) {
	fileOpts := jsonfile.Options{SkipInvalidRecords: cfg.Storage.SkipInvalidRecords, Logger: log}
	prefsStore := jsonfile.NewUserPrefsStore(cfg.Storage.PrefsPath, fileOpts)

	prefs, err := storage.LoadUserPrefs(ctx, prefsStore, log)
	if err != nil {
		return nil, err
	}

	s := &session{out: out, logger: log}

	var (
		addressBooks   storage.AddressBookStorage
		scheduleBoards storage.ScheduleBoardStorage
	)
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		s.db = db
		pg := postgres.NewStore(db, redact.DatabaseURL(cfg.Database.URL), postgres.Options{
			SkipInvalidRecords: cfg.Storage.SkipInvalidRecords,
			Logger:             log,
		})
		addressBooks, scheduleBoards = pg, pg
	default:
		addressBooks = jsonfile.NewAddressBookStore(prefs.AddressBookFilePath, fileOpts)
		scheduleBoards = jsonfile.NewScheduleBoardStore(prefs.ScheduleBoardFilePath, fileOpts)
	}

	log.Debug("opening session",
		slog.String("backend", cfg.Storage.Backend),
		slog.String("address_book", addressBooks.AddressBookLocation()),
		slog.String("schedule_board", scheduleBoards.ScheduleBoardLocation()))

	s.storage = storage.NewManager(addressBooks, scheduleBoards, prefsStore, log)
	s.model, err = s.storage.Load(ctx, prefs)
	if err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

// execute runs c, prints its outcome and saves the model.
func (s *session) execute(ctx context.Context, c command.Command, v view) (*command.Result, error) {
	result, err := c.Execute(s.model)
	if err != nil {
		s.logger.Debug("command failed", slog.String("error", redact.Error(err)))
		return nil, err
	}

	render(s.out, s.model, result, v)

	if err := s.storage.Save(ctx, s.model); err != nil {
		s.logger.Error("failed to save data", slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("could not save data: %w", err)
	}
	return result, nil
}

func (s *session) close() {
	if s.db == nil {
		return
	}
	if err := s.db.Close(); err != nil {
		s.logger.Warn("failed to close database", slog.String("error", err.Error()))
	}
}

// runCommand loads configuration and data, executes c once and saves.
func (c *cli) runCommand(ctx context.Context, cmd command.Command, v view) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	log, err := c.setupLogger(cfg)
	if err != nil {
		return err
	}
	ctx = logger.WithLogger(ctx, log)

	s, err := openSession(ctx, cfg, c.out, log)
	if err != nil {
		return err
	}
	defer s.close()

	_, err = s.execute(ctx, cmd, v)
	return err
}
