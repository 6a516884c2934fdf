// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the configuration flags bound to a command.
// Zero values mean "not set" and never override other sources.
type Flags struct {
	dsn             string
	logFile         string
	logLevel        string
	jsonConfigPath  string
	maxImageSize    int64
	notificationTTL time.Duration
}

// BindFlags registers all configuration flags on fs and returns the holder
// their values are parsed into.
//
// Flags:
//
//	-d/--db              SQLite database path
//	-c/--config          JSON file path with configs
//	--log-file           log file path
//	--log-level          log level (debug, info, warn, error)
//	--max-image-size     image attachment limit in bytes (at most 5 MiB)
//	--notification-ttl   how long notifications stay visible (e.g. 3s)
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.dsn, "db", "d", "", "SQLite database path")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.Int64Var(&f.maxImageSize, "max-image-size", 0, "Image attachment limit in bytes")
	fs.DurationVar(&f.notificationTTL, "notification-ttl", 0, "Notification lifetime (e.g. 3s)")

	return f
}

func (f *Flags) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MaxImageSize:    f.maxImageSize,
			NotificationTTL: f.notificationTTL,
		},
		Storage: Storage{
			DB: DB{DSN: f.dsn},
		},
		Log: Log{
			FilePath: f.logFile,
			Level:    f.logLevel,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}
