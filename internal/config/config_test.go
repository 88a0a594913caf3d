package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
database:
  path: "/tmp/fit/track.db"
log:
  level: "debug"
  file: "/tmp/fit/fittrack.log"
clock:
  timezone: "Europe/Berlin"
defaults:
  maxes:
    pullups: 12
    squats: 60
    abs: 45
    pushups: 40
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolateHome points the default config location at an empty temp dir.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoad_ValidFile(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/fit/track.db", cfg.Database.Path)
	assert.Equal(t, "/tmp/fit/fittrack.log", cfg.Log.File)
	assert.Equal(t, domain.UserMaxes{Pullups: 12, Squats: 60, Abs: 45, Pushups: 40}, cfg.DefaultMaxes())

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".fittrack", "fittrack.db"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(home, ".fittrack", "fittrack.log"), cfg.Log.File)
	assert.Equal(t, domain.DefaultMaxes, cfg.DefaultMaxes())
	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	isolateHome(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_PartialFileKeepsOtherDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(writeTemp(t, "defaults:\n  maxes:\n    pullups: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Defaults.Maxes.Pullups)
	assert.Equal(t, domain.DefaultMaxes.Squats, cfg.Defaults.Maxes.Squats)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolateHome(t)
	t.Setenv("FITTRACK_DB", "/override/fittrack.db")
	t.Setenv("FITTRACK_LOG_LEVEL", "error")
	t.Setenv("FITTRACK_TZ", "UTC")
	t.Setenv("FITTRACK_DEFAULT_PULLUPS", "20")

	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "/override/fittrack.db", cfg.Database.Path)
	assert.Equal(t, 20, cfg.Defaults.Maxes.Pullups)
	assert.Equal(t, 60, cfg.Defaults.Maxes.Squats, "unset env keeps file value")

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_InvalidEnvNumber(t *testing.T) {
	isolateHome(t)
	t.Setenv("FITTRACK_DEFAULT_SQUATS", "lots")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing environment")
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolateHome(t)

	_, err := Load(writeTemp(t, "database: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad timezone", "clock:\n  timezone: Mars/Olympus\n", "clock.timezone"},
		{"negative max", "defaults:\n  maxes:\n    abs: -1\n", "defaults.maxes"},
		{"empty db path", "database:\n  path: \"\"\n", "database.path is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateHome(t)

			_, err := Load(writeTemp(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
