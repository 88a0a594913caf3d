// Package config loads fittrack settings from an optional YAML file with
// FITTRACK_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Clock    ClockConfig    `yaml:"clock"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" env:"FITTRACK_DB"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"FITTRACK_LOG_LEVEL"`
	// File receives log output; empty means stderr.
	// Defaults to ~/.fittrack/fittrack.log.
	File string `yaml:"file" env:"FITTRACK_LOG_FILE"`
}

type ClockConfig struct {
	// Timezone is an IANA name ("Europe/Berlin"); empty means the system zone.
	Timezone string `yaml:"timezone" env:"FITTRACK_TZ"`
}

// DefaultsConfig seeds progress before the user has run init.
type DefaultsConfig struct {
	Maxes MaxesConfig `yaml:"maxes"`
}

type MaxesConfig struct {
	Pullups int `yaml:"pullups" env:"FITTRACK_DEFAULT_PULLUPS"`
	Squats  int `yaml:"squats"  env:"FITTRACK_DEFAULT_SQUATS"`
	Abs     int `yaml:"abs"     env:"FITTRACK_DEFAULT_ABS"`
	Pushups int `yaml:"pushups" env:"FITTRACK_DEFAULT_PUSHUPS"`
}

// Dir returns ~/.fittrack.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".fittrack"), nil
}

// DefaultPath returns ~/.fittrack/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return &Config{
		Database: DatabaseConfig{Path: filepath.Join(dir, "fittrack.db")},
		Log:      LogConfig{Level: "warn", File: filepath.Join(dir, "fittrack.log")},
		Defaults: DefaultsConfig{Maxes: MaxesConfig{
			Pullups: domain.DefaultMaxes.Pullups,
			Squats:  domain.DefaultMaxes.Squats,
			Abs:     domain.DefaultMaxes.Abs,
			Pushups: domain.DefaultMaxes.Pushups,
		}},
	}, nil
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides:
//
//	FITTRACK_DB, FITTRACK_LOG_LEVEL, FITTRACK_LOG_FILE, FITTRACK_TZ,
//	FITTRACK_DEFAULT_PULLUPS, FITTRACK_DEFAULT_SQUATS,
//	FITTRACK_DEFAULT_ABS, FITTRACK_DEFAULT_PUSHUPS
//
// An empty path means the default location, which may be absent.
// An explicit path must exist.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	optional := path == ""
	if optional {
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	m := c.Defaults.Maxes
	if m.Pullups < 0 || m.Squats < 0 || m.Abs < 0 || m.Pushups < 0 {
		return fmt.Errorf("defaults.maxes must be >= 0")
	}
	return nil
}

// LogLevel parses log.level ("debug", "info", "warn", "error").
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Location resolves clock.timezone. An empty timezone is time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Clock.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Clock.Timezone)
	if err != nil {
		return nil, fmt.Errorf("clock.timezone: %w", err)
	}
	return loc, nil
}

func (c *Config) DefaultMaxes() domain.UserMaxes {
	m := c.Defaults.Maxes
	return domain.UserMaxes{Pullups: m.Pullups, Squats: m.Squats, Abs: m.Abs, Pushups: m.Pushups}
}
