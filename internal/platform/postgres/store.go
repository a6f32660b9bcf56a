package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/model"
	"github.com/phrazzld/recruitbook/internal/platform/logger"
	"github.com/phrazzld/recruitbook/internal/redact"
	"github.com/phrazzld/recruitbook/internal/storage"
	"github.com/phrazzld/recruitbook/internal/store"
)

// Snapshot names recorded in the snapshots table.
const (
	addressBookSnapshot   = "address_book"
	scheduleBoardSnapshot = "schedule_board"
)

// Options configures a Store.
type Options struct {
	// SkipInvalidRecords drops stored rows that no longer validate, logging a
	// warning, instead of failing the whole read.
	SkipInvalidRecords bool
	Logger             *slog.Logger
}

// Store implements storage.AddressBookStorage and storage.ScheduleBoardStorage
// on PostgreSQL.
type Store struct {
	db          *sql.DB
	location    string
	skipInvalid bool
	logger      *slog.Logger
}

var (
	_ storage.AddressBookStorage   = (*Store)(nil)
	_ storage.ScheduleBoardStorage = (*Store)(nil)
)

// NewStore creates a Store on db. location names the database in logs and
// errors and must not carry credentials.
func NewStore(db *sql.DB, location string, opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		db:          db,
		location:    location,
		skipInvalid: opts.SkipInvalidRecords,
		logger:      log.With("component", "postgres_store"),
	}
}

func (s *Store) AddressBookLocation() string {
	return s.location + "#" + addressBookSnapshot
}

func (s *Store) ScheduleBoardLocation() string {
	return s.location + "#" + scheduleBoardSnapshot
}

// hasSnapshot reports whether the named snapshot has ever been saved.
func (s *Store) hasSnapshot(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM snapshots WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

type personRow struct {
	id                          uuid.UUID
	name, phone, email, address string
	tags                        []string
	applications                []applicationRow
}

type applicationRow struct {
	jobTitle    string
	scheduledAt time.Time
	label       string
	remark      string
}

// ReadAddressBook implements storage.AddressBookStorage.
func (s *Store) ReadAddressBook(ctx context.Context) (*model.AddressBook, error) {
	exists, err := s.hasSnapshot(ctx, addressBookSnapshot)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, s.AddressBookLocation())
	}

	rows, err := s.readPersonRows(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.readStrings(ctx, `SELECT title FROM job_roles ORDER BY position`)
	if err != nil {
		return nil, err
	}

	ab := model.NewAddressBook(s.logger)
	for i, row := range rows {
		p, err := row.toModel()
		if err == nil && ab.HasPerson(p) {
			err = store.ErrDuplicatePerson
		}
		if err != nil {
			if s.skip("person", i, err) {
				continue
			}
			return nil, storage.NewDataLoadingError(s.AddressBookLocation(), err)
		}
		if err := ab.AddPerson(p); err != nil {
			return nil, storage.NewDataLoadingError(s.AddressBookLocation(), err)
		}
	}

	if err := ab.SetJobRoles(nil); err != nil {
		return nil, err
	}
	for i, raw := range roles {
		role, err := domain.NewJobTitle(raw)
		if err != nil {
			if s.skip("job role", i, err) {
				continue
			}
			return nil, storage.NewDataLoadingError(s.AddressBookLocation(), err)
		}
		if err := ab.AddJobRole(role); err != nil {
			return nil, storage.NewDataLoadingError(s.AddressBookLocation(), err)
		}
	}
	return ab, nil
}

func (s *Store) readPersonRows(ctx context.Context) ([]*personRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, phone, email, address FROM persons ORDER BY position`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var persons []*personRow
	byID := make(map[uuid.UUID]*personRow)
	for rows.Next() {
		p := &personRow{}
		if err := rows.Scan(&p.id, &p.name, &p.phone, &p.email, &p.address); err != nil {
			return nil, MapError(err)
		}
		persons = append(persons, p)
		byID[p.id] = p
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	tagRows, err := s.db.QueryContext(ctx, `SELECT person_id, tag FROM person_tags ORDER BY tag`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = tagRows.Close() }()
	for tagRows.Next() {
		var personID uuid.UUID
		var tag string
		if err := tagRows.Scan(&personID, &tag); err != nil {
			return nil, MapError(err)
		}
		if p, ok := byID[personID]; ok {
			p.tags = append(p.tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return nil, MapError(err)
	}

	appRows, err := s.db.QueryContext(ctx, `
		SELECT person_id, job_title, scheduled_at, label, remark
		FROM job_applications
		ORDER BY person_id, position`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = appRows.Close() }()
	for appRows.Next() {
		var personID uuid.UUID
		var app applicationRow
		if err := appRows.Scan(&personID, &app.jobTitle, &app.scheduledAt, &app.label, &app.remark); err != nil {
			return nil, MapError(err)
		}
		if p, ok := byID[personID]; ok {
			p.applications = append(p.applications, app)
		}
	}
	if err := appRows.Err(); err != nil {
		return nil, MapError(err)
	}

	return persons, nil
}

func (r *personRow) toModel() (*domain.Person, error) {
	name, err := domain.NewName(r.name)
	if err != nil {
		return nil, err
	}
	phone, err := domain.NewPhone(r.phone)
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmail(r.email)
	if err != nil {
		return nil, err
	}
	address, err := domain.NewAddress(r.address)
	if err != nil {
		return nil, err
	}
	tags, err := domain.NewTags(r.tags...)
	if err != nil {
		return nil, err
	}

	templates := make([]*domain.JobApplication, 0, len(r.applications))
	for _, app := range r.applications {
		title, err := domain.NewJobTitle(app.jobTitle)
		if err != nil {
			return nil, err
		}
		label, err := domain.NewLabel(app.label)
		if err != nil {
			return nil, err
		}
		template, err := domain.NewJobApplication(
			title, domain.ScheduleAt(app.scheduledAt), label, domain.NewRemark(app.remark))
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}

	return domain.NewPersonWithApplications(name, phone, email, address, tags, templates)
}

func (s *Store) readStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, MapError(err)
		}
		out = append(out, v)
	}
	return out, MapError(rows.Err())
}

// skip reports whether an invalid row should be dropped, logging it if so.
func (s *Store) skip(kind string, index int, err error) bool {
	if !s.skipInvalid {
		return false
	}
	s.logger.Warn("skipping invalid record",
		slog.String("location", s.location),
		slog.String("record", kind),
		slog.Int("index", index),
		slog.String("error", redact.Error(err)))
	return true
}

// SaveAddressBook implements storage.AddressBookStorage. The stored address book
// is replaced in a single transaction.
func (s *Store) SaveAddressBook(ctx context.Context, ab model.ReadOnlyAddressBook) error {
	ctx = logger.WithLogger(ctx, s.logger)

	err := RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		for _, stmt := range []string{
			`DELETE FROM job_applications`,
			`DELETE FROM person_tags`,
			`DELETE FROM persons`,
			`DELETE FROM job_roles`,
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return MapError(err)
			}
		}

		for i, p := range ab.Persons().All() {
			if err := insertPerson(ctx, tx, i, p); err != nil {
				return err
			}
		}
		for i, role := range ab.JobRoles().All() {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO job_roles (title, position) VALUES ($1, $2)`, role.String(), i)
			if err != nil {
				return MapUniqueViolation(err, store.ErrDuplicateJobRole)
			}
		}
		return markSnapshot(ctx, tx, addressBookSnapshot)
	})
	if err != nil {
		return fmt.Errorf("failed to save address book: %w", err)
	}

	s.logger.Info("address book saved",
		slog.String("location", s.location),
		slog.Int("persons", ab.Persons().Len()))
	return nil
}

func insertPerson(ctx context.Context, tx *sql.Tx, position int, p *domain.Person) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO persons (id, position, name, phone, email, address)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID(), position, p.Name().String(), p.Phone().String(), p.Email().String(), p.Address().String())
	if err != nil {
		return MapUniqueViolation(err, store.ErrDuplicatePerson)
	}

	for _, tag := range p.Tags() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO person_tags (person_id, tag) VALUES ($1, $2)`, p.ID(), tag.Name())
		if err != nil {
			return MapError(err)
		}
	}

	for i, app := range p.JobApplications() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO job_applications (id, person_id, position, job_title, scheduled_at, label, remark)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			app.ID(), p.ID(), i, app.JobTitle().String(), app.Schedule().Time(),
			app.Label().String(), app.Remark().String())
		if err != nil {
			return MapUniqueViolation(err, store.ErrDuplicateJobApplication)
		}
	}
	return nil
}

func markSnapshot(ctx context.Context, tx *sql.Tx, name string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (name, saved_at) VALUES ($1, NOW())
		ON CONFLICT (name) DO UPDATE SET saved_at = EXCLUDED.saved_at`, name)
	return MapError(err)
}

// ReadScheduleBoard implements storage.ScheduleBoardStorage.
func (s *Store) ReadScheduleBoard(ctx context.Context) (*model.ScheduleBoard, error) {
	exists, err := s.hasSnapshot(ctx, scheduleBoardSnapshot)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, s.ScheduleBoardLocation())
	}

	rows, err := s.db.QueryContext(ctx, `SELECT scheduled_at FROM schedules ORDER BY position`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	sb := model.NewScheduleBoard(s.logger)
	for rows.Next() {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			return nil, MapError(err)
		}
		if err := sb.AddSchedule(domain.ScheduleAt(at)); err != nil {
			return nil, storage.NewDataLoadingError(s.ScheduleBoardLocation(), err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return sb, nil
}

// SaveScheduleBoard implements storage.ScheduleBoardStorage.
func (s *Store) SaveScheduleBoard(ctx context.Context, sb model.ReadOnlyScheduleBoard) error {
	ctx = logger.WithLogger(ctx, s.logger)

	err := RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM schedules`); err != nil {
			return MapError(err)
		}
		for i, schedule := range sb.Schedules().All() {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO schedules (scheduled_at, position) VALUES ($1, $2)`, schedule.Time(), i)
			if err != nil {
				return MapUniqueViolation(err, store.ErrDuplicateSchedule)
			}
		}
		return markSnapshot(ctx, tx, scheduleBoardSnapshot)
	})
	if err != nil {
		return fmt.Errorf("failed to save schedule board: %w", err)
	}

	s.logger.Info("schedule board saved",
		slog.String("location", s.location),
		slog.Int("schedules", sb.Schedules().Len()))
	return nil
}
