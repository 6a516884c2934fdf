// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/tui"
	"github.com/MKhiriev/go-diary/models"
)

// App owns the storage connection and the services built on it.
// Close must be called when the App is no longer needed.
type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	storages *store.ClientStorages
	services *service.ClientServices
}

// NewApp opens the storage named by cfg and wires the client services.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return &App{
		cfg:      cfg,
		logger:   log,
		storages: storages,
		services: service.NewClientServices(storages.KeyValueStorage, log),
	}, nil
}

// Services returns the services wired to the local storage.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// RunTUI starts the interactive diary and blocks until the user quits.
func (a *App) RunTUI(ctx context.Context, buildInfo models.AppBuildInfo) error {
	a.logger.Info().Str("dsn", a.cfg.Storage.DB.DSN).Msg("starting diary")

	ui := tui.New(a.services, a.logger, tui.Options{
		BuildInfo:       buildInfo,
		NotificationTTL: a.cfg.App.NotificationTTL,
		MaxImageSize:    a.cfg.App.MaxImageSize,
	})
	if err := ui.Run(ctx); err != nil {
		return fmt.Errorf("client run error: %w", err)
	}

	a.logger.Info().Msg("diary closed")
	return nil
}

// Close locks the gate and releases the storage.
func (a *App) Close() error {
	a.services.GateService.Lock()
	return a.storages.Close()
}
