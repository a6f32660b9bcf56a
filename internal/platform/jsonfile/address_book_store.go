package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/model"
	"github.com/phrazzld/recruitbook/internal/redact"
	"github.com/phrazzld/recruitbook/internal/storage"
	"github.com/phrazzld/recruitbook/internal/store"
)

// Messages for duplicate records in a stored document.
const (
	MessageDuplicatePerson  = "Persons list contains duplicate person(s)."
	MessageDuplicateJobRole = "Job roles list contains duplicate job role(s)."
)

// Options configures the file stores.
type Options struct {
	// SkipInvalidRecords drops records that fail validation, logging a warning,
	// instead of rejecting the whole document.
	SkipInvalidRecords bool
	Logger             *slog.Logger
}

func (o Options) logger(component string) *slog.Logger {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}

// jsonSerializableAddressBook is the stored form of an address book.
// A nil JobRoles means the document predates the job-role catalogue.
type jsonSerializableAddressBook struct {
	Persons  []jsonAdaptedPerson `json:"persons"`
	JobRoles []string            `json:"jobRoles,omitempty"`
}

// AddressBookStore implements storage.AddressBookStorage on a JSON file.
type AddressBookStore struct {
	path        string
	skipInvalid bool
	logger      *slog.Logger
}

var (
	_ storage.AddressBookStorage  = (*AddressBookStore)(nil)
	_ storage.AddressBookArchiver = (*AddressBookStore)(nil)
)

// NewAddressBookStore creates a store for the address book at path.
func NewAddressBookStore(path string, opts Options) *AddressBookStore {
	return &AddressBookStore{
		path:        path,
		skipInvalid: opts.SkipInvalidRecords,
		logger:      opts.logger("jsonfile_address_book"),
	}
}

func (s *AddressBookStore) AddressBookLocation() string {
	return s.path
}

// ReadAddressBook implements storage.AddressBookStorage.
func (s *AddressBookStore) ReadAddressBook(ctx context.Context) (*model.AddressBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := readDocument(s.path, addressBookSchema)
	if err != nil {
		return nil, err
	}

	var doc jsonSerializableAddressBook
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, storage.NewDataLoadingError(s.path, err)
	}

	ab, err := s.toModel(doc)
	if err != nil {
		return nil, storage.NewDataLoadingError(s.path, err)
	}
	return ab, nil
}

func (s *AddressBookStore) toModel(doc jsonSerializableAddressBook) (*model.AddressBook, error) {
	ab := model.NewAddressBook(s.logger)

	for i, record := range doc.Persons {
		p, err := record.toModel()
		if err == nil && ab.HasPerson(p) {
			err = fmt.Errorf("%w: %s", store.ErrDuplicatePerson, MessageDuplicatePerson)
		}
		if err != nil {
			if s.skip("person", i, err) {
				continue
			}
			return nil, err
		}
		if err := ab.AddPerson(p); err != nil {
			return nil, err
		}
	}

	if doc.JobRoles == nil {
		return ab, nil
	}
	if err := ab.SetJobRoles(nil); err != nil {
		return nil, err
	}
	for i, raw := range doc.JobRoles {
		role, err := domain.NewJobTitle(raw)
		if err == nil && ab.HasJobRole(role) {
			err = fmt.Errorf("%w: %s", store.ErrDuplicateJobRole, MessageDuplicateJobRole)
		}
		if err != nil {
			if s.skip("job role", i, err) {
				continue
			}
			return nil, err
		}
		if err := ab.AddJobRole(role); err != nil {
			return nil, err
		}
	}
	return ab, nil
}

// skip reports whether an invalid record should be dropped, logging it if so.
func (s *AddressBookStore) skip(kind string, index int, err error) bool {
	if !s.skipInvalid {
		return false
	}
	s.logger.Warn("skipping invalid record",
		slog.String("path", s.path),
		slog.String("record", kind),
		slog.Int("index", index),
		slog.String("error", redact.Error(err)))
	return true
}

// SaveAddressBook implements storage.AddressBookStorage.
func (s *AddressBookStore) SaveAddressBook(ctx context.Context, ab model.ReadOnlyAddressBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := jsonSerializableAddressBook{
		Persons:  make([]jsonAdaptedPerson, 0, ab.Persons().Len()),
		JobRoles: make([]string, 0, ab.JobRoles().Len()),
	}
	for _, p := range ab.Persons().All() {
		doc.Persons = append(doc.Persons, adaptPerson(p))
	}
	for _, role := range ab.JobRoles().All() {
		doc.JobRoles = append(doc.JobRoles, role.String())
	}

	if err := writeDocument(s.path, doc); err != nil {
		return store.NewStoreError("address book", "save", s.path, err)
	}
	s.logger.Info("address book saved",
		slog.String("path", s.path),
		slog.Int("persons", len(doc.Persons)))
	return nil
}

// ArchiveAddressBook implements storage.AddressBookArchiver by renaming the file
// to a timestamped .bak file next to it.
func (s *AddressBookStore) ArchiveAddressBook(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	archived, err := archiveDocument(s.path, time.Now())
	if err != nil {
		return "", store.NewStoreError("address book", "archive", s.path, err)
	}
	if archived != "" {
		s.logger.Info("address book archived",
			slog.String("path", s.path),
			slog.String("archive", archived))
	}
	return archived, nil
}
