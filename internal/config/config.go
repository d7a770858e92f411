// Package config loads studyd runtime settings from STUDYD_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/sandeepkv93/studyd/internal/storage"
)

const envPrefix = "STUDYD"

type Config struct {
	Backend  string `envconfig:"BACKEND" default:"sqlite"`
	DataDir  string `envconfig:"DATA_DIR" default:""`
	LogFile  string `envconfig:"LOG_FILE" default:""`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// Timezone names the IANA zone dates are shown in. Empty means local time.
	Timezone string `envconfig:"TIMEZONE" default:""`

	UpcomingDays     int `envconfig:"UPCOMING_DAYS" default:"3"`
	AlertLeadMinutes int `envconfig:"ALERT_LEAD_MINUTES" default:"60"`
	AlertBuffer      int `envconfig:"ALERT_BUFFER" default:"64"`

	DesktopNotifications bool `envconfig:"DESKTOP_NOTIFICATIONS" default:"false"`
}

func Default() Config {
	return Config{
		Backend:          string(storage.BackendSQLite),
		LogLevel:         "info",
		UpcomingDays:     3,
		AlertLeadMinutes: 60,
		AlertBuffer:      64,
	}
}

// Load reads the environment, fills derived paths and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveDefaults derives DataDir and LogFile when they are empty.
func (c *Config) ResolveDefaults() error {
	if strings.TrimSpace(c.DataDir) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		c.DataDir = filepath.Join(home, ".studyd")
	} else if strings.HasPrefix(c.DataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		c.DataDir = filepath.Join(home, c.DataDir[2:])
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = filepath.Join(c.DataDir, "studyd.log")
	}
	return nil
}

func (c Config) Validate() error {
	if !storage.BackendKind(c.Backend).IsValid() {
		return fmt.Errorf("unsupported BACKEND: %s", c.Backend)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unsupported LOG_LEVEL: %s", c.LogLevel)
	}
	if c.UpcomingDays <= 0 {
		return errors.New("UPCOMING_DAYS must be positive")
	}
	if c.AlertLeadMinutes <= 0 {
		return errors.New("ALERT_LEAD_MINUTES must be positive")
	}
	if c.AlertBuffer <= 0 {
		return errors.New("ALERT_BUFFER must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// StoragePath is the database file for sqlite and the slot directory for
// the file backend.
func (c Config) StoragePath() string {
	switch storage.BackendKind(c.Backend) {
	case storage.BackendFile:
		return filepath.Join(c.DataDir, "slots")
	case storage.BackendSQLite:
		return filepath.Join(c.DataDir, "studyd.db")
	default:
		return ""
	}
}

func (c Config) AlertLead() time.Duration {
	return time.Duration(c.AlertLeadMinutes) * time.Minute
}

func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unsupported TIMEZONE: %w", err)
	}
	return loc, nil
}

// Log writes a one-line summary of the effective configuration.
func (c Config) Log(logger zerolog.Logger) {
	logger.Info().
		Str("backend", c.Backend).
		Str("data_dir", c.DataDir).
		Str("storage_path", c.StoragePath()).
		Str("log_level", c.LogLevel).
		Str("timezone", c.Timezone).
		Int("upcoming_days", c.UpcomingDays).
		Int("alert_lead_minutes", c.AlertLeadMinutes).
		Int("alert_buffer", c.AlertBuffer).
		Bool("desktop_notifications", c.DesktopNotifications).
		Msg("Configuration loaded")
}
