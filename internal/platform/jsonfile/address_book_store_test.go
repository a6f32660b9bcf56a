package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/recruitbook/internal/domain"
	"github.com/phrazzld/recruitbook/internal/model"
	"github.com/phrazzld/recruitbook/internal/storage"
	"github.com/phrazzld/recruitbook/internal/store"
	"github.com/phrazzld/recruitbook/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func personNames(ab model.ReadOnlyAddressBook) []string {
	names := make([]string, 0, ab.Persons().Len())
	for _, p := range ab.Persons().All() {
		names = append(names, p.Name().String())
	}
	return names
}

func TestReadAddressBook_MissingFile(t *testing.T) {
	s := NewAddressBookStore(filepath.Join(t.TempDir(), "absent.json"), Options{})

	_, err := s.ReadAddressBook(context.Background())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReadAddressBook_TypicalFile(t *testing.T) {
	s := NewAddressBookStore(testdata("typicalAddressBook.json"), Options{})

	ab, err := s.ReadAddressBook(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice Pauline", "Benson Meier", "Elle Meyer"}, personNames(ab))
	assert.Equal(t, 3, ab.JobRoles().Len(), "a stored catalogue replaces the defaults")
	assert.True(t, ab.HasJobRole(testutils.MustJobTitle(t, testutils.JobRoleNotInDefaultList)))

	alice := ab.Persons().At(0)
	require.Len(t, alice.JobApplications(), 1)
	app := alice.JobApplications()[0]
	assert.Equal(t, alice.ID(), app.OwnerID(), "applications are bound to their owner")
	assert.True(t, app.OwnerName().Equal(alice.Name()))
	assert.Equal(t, testutils.Schedule1, app.Schedule().String())

	assert.True(t, alice.Equal(testutils.Alice(t)))
}

func TestReadAddressBook_WithoutJobRolesKeepsDefaults(t *testing.T) {
	s := NewAddressBookStore(testdata("invalidPersonAddressBook.json"), Options{SkipInvalidRecords: true})

	ab, err := s.ReadAddressBook(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(model.DefaultJobRoles), ab.JobRoles().Len())
}

func TestReadAddressBook_InvalidRecords(t *testing.T) {
	tests := []struct {
		file    string
		message string
		target  error
	}{
		{"invalidPersonAddressBook.json", domain.EmailConstraints, domain.ErrInvalidFormat},
		{"duplicatePersonAddressBook.json", MessageDuplicatePerson, store.ErrDuplicatePerson},
		{"missingRemarkAddressBook.json", "Job application's Remark field is missing!", domain.ErrMissingField},
	}

	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			s := NewAddressBookStore(testdata(tc.file), Options{})

			_, err := s.ReadAddressBook(context.Background())
			require.Error(t, err)

			var loadErr *storage.DataLoadingError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, testdata(tc.file), loadErr.Location)
			assert.ErrorIs(t, err, tc.target)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestReadAddressBook_SkipInvalidRecords(t *testing.T) {
	logger, logs := testutils.NewTestLogger()

	s := NewAddressBookStore(testdata("invalidPersonAddressBook.json"),
		Options{SkipInvalidRecords: true, Logger: logger})
	ab, err := s.ReadAddressBook(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Fiona Kunz"}, personNames(ab))

	entry, found := logs.Find("skipping invalid record")
	require.True(t, found)
	assert.Equal(t, "person", entry["record"])
	assert.EqualValues(t, 0, entry["index"])

	s = NewAddressBookStore(testdata("duplicatePersonAddressBook.json"), Options{SkipInvalidRecords: true})
	ab, err = s.ReadAddressBook(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, ab.Persons().Len(), "the first occurrence wins")
	assert.Equal(t, "alice@example.com", ab.Persons().At(0).Email().String())
}

func TestReadAddressBook_MalformedDocuments(t *testing.T) {
	for _, file := range []string{"wrongShapeAddressBook.json", "notJsonAddressBook.json"} {
		t.Run(file, func(t *testing.T) {
			s := NewAddressBookStore(testdata(file), Options{SkipInvalidRecords: true})

			_, err := s.ReadAddressBook(context.Background())
			var loadErr *storage.DataLoadingError
			assert.ErrorAs(t, err, &loadErr, "shape errors are never skipped")
		})
	}

	s := NewAddressBookStore(testdata("wrongShapeAddressBook.json"), Options{})
	_, err := s.ReadAddressBook(context.Background())
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "addressbook", schemaErr.Schema)
}

func TestAddressBookStore_SaveAndRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "addressbook.json")
	s := NewAddressBookStore(path, Options{})

	original := model.NewAddressBook(nil)
	require.NoError(t, original.SetPersons(testutils.TypicalPersons(t)))
	require.NoError(t, original.AddJobRole(testutils.MustJobTitle(t, testutils.JobRoleNotInDefaultList)))

	require.NoError(t, s.SaveAddressBook(ctx, original))
	read, err := s.ReadAddressBook(ctx)
	require.NoError(t, err)
	assert.True(t, original.Equal(read))

	// Modify data, overwrite exiting file, and read back
	hoon := testutils.MustCreatePersonForTest(t, testutils.WithName("Hoon Meier"), testutils.WithPhone("8482424"))
	require.NoError(t, original.AddPerson(hoon))
	require.NoError(t, original.RemovePerson(original.Persons().At(0)))
	require.NoError(t, s.SaveAddressBook(ctx, original))
	read, err = s.ReadAddressBook(ctx)
	require.NoError(t, err)
	assert.True(t, original.Equal(read))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestAddressBookStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewAddressBookStore(testdata("typicalAddressBook.json"), Options{})
	_, err := s.ReadAddressBook(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.SaveAddressBook(ctx, model.NewAddressBook(nil)), context.Canceled)
}

func TestAddressBookStore_Archive(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "addressbook.json")
	s := NewAddressBookStore(path, Options{})

	archived, err := s.ArchiveAddressBook(ctx)
	require.NoError(t, err)
	assert.Empty(t, archived, "nothing to archive")

	content := []byte(`{"persons": [{"name": "Bad*Name"}]}`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	archived, err = s.ArchiveAddressBook(ctx)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(archived))
	assert.Regexp(t, `^addressbook\.json\.\d{8}T\d{6}\.bak$`, filepath.Base(archived))
	assert.NoFileExists(t, path)

	moved, err := os.ReadFile(archived)
	require.NoError(t, err)
	assert.Equal(t, content, moved)
}
