// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// validate checks the merged [StructuredConfig]. Field-level rules live in
// [ClientConfig.validate]; nothing spans the whole structure yet.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.MaxImageSize <= 0 || cfg.App.MaxImageSize > DefaultMaxImageSize {
		return ErrInvalidAppConfigs
	}

	if cfg.App.NotificationTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil || cfg.Log.Level == "" {
		return ErrInvalidLogConfigs
	}

	return nil
}
