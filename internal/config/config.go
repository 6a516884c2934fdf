// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable read by the diary.
const EnvPrefix = "DIARY_"

// Defaults applied before any other configuration source.
const (
	DefaultDSN             = "diary.db"
	DefaultLogFile         = "diary.log"
	DefaultLogLevel        = "info"
	DefaultMaxImageSize    = int64(5 * 1024 * 1024)
	DefaultNotificationTTL = 3 * time.Second
)

// StructuredConfig is the top-level configuration container of the diary.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// All names are additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// App holds behavioural settings of the diary itself.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local key-value storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the log file location and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the DIARY_CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// MaxImageSize is the largest accepted image attachment in bytes.
	// It can only lower the 5 MiB ceiling, never raise it.
	// Env: DIARY_APP_MAX_IMAGE_SIZE
	MaxImageSize int64 `env:"MAX_IMAGE_SIZE"`

	// NotificationTTL is how long save/delete notifications stay on screen.
	// Env: DIARY_APP_NOTIFICATION_TTL
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL"`
}

// Storage groups the configuration of storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings of the SQLite key-value storage.
type DB struct {
	// DSN is the SQLite database file path (e.g. "diary.db" or
	// "file:diary.db?_busy_timeout=5000").
	// Env: DIARY_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the file log lines are appended to.
	// Env: DIARY_LOG_FILE
	FilePath string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: DIARY_LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MaxImageSize:    DefaultMaxImageSize,
			NotificationTTL: DefaultNotificationTTL,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Log: Log{
			FilePath: DefaultLogFile,
			Level:    DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
