package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// Storage backends.
const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
)

// StorageConfig selects where the address book, schedule board and preferences live.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=json postgres"`
	// PrefsPath is the JSON file holding user preferences, including the data
	// file locations used by the json backend.
	PrefsPath string `mapstructure:"prefs_path" validate:"required"`
	// SkipInvalidRecords makes loading drop records that fail validation instead
	// of rejecting the whole file.
	SkipInvalidRecords bool `mapstructure:"skip_invalid_records"`
}

// DatabaseConfig contains all database-related configuration settings.
// URL is required when the postgres backend is selected.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}
