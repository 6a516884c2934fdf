// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the diary: a login screen guarding
// a list of entries with an editor beside it.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diary/internal/attachment"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/models"
)

const (
	pageLogin = "login"
	pageDiary = "diary"
)

const defaultNotificationTTL = 3 * time.Second

// Options tunes the TUI. Zero values fall back to defaults.
type Options struct {
	BuildInfo       models.AppBuildInfo
	NotificationTTL time.Duration
	MaxImageSize    int64
}

func (o Options) withDefaults() Options {
	if o.NotificationTTL <= 0 {
		o.NotificationTTL = defaultNotificationTTL
	}
	if o.MaxImageSize <= 0 {
		o.MaxImageSize = attachment.MaxImageSize
	}
	return o
}

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
	opts     Options
}

func New(services *service.ClientServices, logger *logger.Logger, opts Options) *TUI {
	return &TUI{services: services, logger: logger, opts: opts.withDefaults()}
}

// Run shows the login screen and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui stopped with error")
		return err
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageLogin: NewLoginModel(ctx, t.services.GateService, t.services, t.logger, t.opts.BuildInfo),
		pageDiary: newDiaryModel(t.services.GateService, t.opts),
	}
	return NewRootModel(pages, pageLogin, t.opts.BuildInfo)
}
