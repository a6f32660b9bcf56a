package jsonfile

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/phrazzld/recruitbook/internal/model"
	"github.com/phrazzld/recruitbook/internal/storage"
	"github.com/phrazzld/recruitbook/internal/store"
)

// UserPrefsStore implements storage.UserPrefsStorage on a JSON file.
// Fields absent from the file keep their default values.
type UserPrefsStore struct {
	path   string
	logger *slog.Logger
}

var _ storage.UserPrefsStorage = (*UserPrefsStore)(nil)

// NewUserPrefsStore creates a store for the preferences file at path.
func NewUserPrefsStore(path string, opts Options) *UserPrefsStore {
	return &UserPrefsStore{
		path:   path,
		logger: opts.logger("jsonfile_user_prefs"),
	}
}

func (s *UserPrefsStore) UserPrefsLocation() string {
	return s.path
}

// ReadUserPrefs implements storage.UserPrefsStorage.
func (s *UserPrefsStore) ReadUserPrefs(ctx context.Context) (model.UserPrefs, error) {
	if err := ctx.Err(); err != nil {
		return model.UserPrefs{}, err
	}

	data, err := readDocument(s.path, userPrefsSchema)
	if err != nil {
		return model.UserPrefs{}, err
	}

	prefs := model.DefaultUserPrefs()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return model.UserPrefs{}, storage.NewDataLoadingError(s.path, err)
	}
	theme, err := model.ParseTheme(string(prefs.GuiSettings.Theme))
	if err != nil {
		return model.UserPrefs{}, storage.NewDataLoadingError(s.path, err)
	}
	prefs.GuiSettings.Theme = theme
	if err := prefs.Validate(); err != nil {
		return model.UserPrefs{}, storage.NewDataLoadingError(s.path, err)
	}
	return prefs, nil
}

// SaveUserPrefs implements storage.UserPrefsStorage.
func (s *UserPrefsStore) SaveUserPrefs(ctx context.Context, prefs model.UserPrefs) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeDocument(s.path, prefs); err != nil {
		return store.NewStoreError("user prefs", "save", s.path, err)
	}
	s.logger.Debug("user prefs saved", slog.String("path", s.path))
	return nil
}
