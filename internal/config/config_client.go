// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the diary behaviour settings.
type ClientApp struct {
	MaxImageSize    int64
	NotificationTTL time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientLog holds logging settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientConfig is the validated configuration view used by the diary
// runtime, assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Log     ClientLog
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			MaxImageSize:    cfg.App.MaxImageSize,
			NotificationTTL: cfg.App.NotificationTTL,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}
