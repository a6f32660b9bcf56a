package logger_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/recruitbook/internal/config"
	"github.com/phrazzld/recruitbook/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{" error ", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		level, ok := logger.ParseLevel(tt.name)
		assert.Equal(t, tt.want, level, tt.name)
		assert.Equal(t, tt.valid, ok, tt.name)
	}
}

func TestNew_JSONFormatFiltersByLevel(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	log := logger.New(config.LogConfig{Level: "warn", Format: "json"}, buf)

	log.Info("hidden")
	log.Warn("shown", "person_id", "abc")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "abc", entries[0]["person_id"])
}

func TestNew_TextFormat(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	log := logger.New(config.LogConfig{Level: "debug", Format: "text"}, buf)

	log.Debug("loading address book", "path", "data/addressbook.json")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, `msg="loading address book"`)
	assert.False(t, strings.HasPrefix(out, "{"), "text output is not JSON")
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	log := logger.New(config.LogConfig{Level: "invalid_level", Format: "json"}, buf)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1, "the fallback is reported once")
	assert.Equal(t, "invalid log level configured, using default level", entries[0]["msg"])
	assert.Equal(t, "invalid_level", entries[0]["configured_level"])

	buf.Reset()
	log.Debug("hidden")
	log.Info("shown")
	entries, err = buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
}

func TestSetup_InstallsDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	log, err := logger.Setup(config.LogConfig{Level: "error", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Same(t, log, slog.Default())
	assert.False(t, log.Enabled(context.Background(), slog.LevelWarn))
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(&logger.TestLogBuffer{}, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger) //nolint:staticcheck // nil ctx is part of the contract
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(&logger.TestLogBuffer{}, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)

		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestCaptureLogs(t *testing.T) {
	out := logger.CaptureLogs(t, func(l *slog.Logger) {
		l.Debug("captured", "component", "test")
	})
	assert.Contains(t, out, `"msg":"captured"`)
	assert.Contains(t, out, `"component":"test"`)
}
