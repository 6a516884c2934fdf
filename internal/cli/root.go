// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-diary/internal/client"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

const appRole = "go-diary"

// RootOptions holds state shared by all commands.
type RootOptions struct {
	flags     *config.Flags
	buildInfo models.AppBuildInfo
}

// NewRootCommand creates the go-diary command tree.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &RootOptions{buildInfo: buildInfo}

	cmd := &cobra.Command{
		Use:   "go-diary",
		Short: "A passphrase-gated diary for the terminal",
		Long: `go-diary keeps a personal journal in a local SQLite file.

Running it without a subcommand opens the interactive diary. The first
password entered becomes the diary password.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	opts.flags = config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

func runTUI(ctx context.Context, opts *RootOptions) error {
	app, ctx, err := openApp(ctx, opts)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.RunTUI(ctx, opts.buildInfo)
}

// openApp loads the configuration, opens the log file and wires the client
// app. The returned context carries the logger.
func openApp(ctx context.Context, opts *RootOptions) (*client.App, context.Context, error) {
	cfg, err := config.GetClientConfig(opts.flags)
	if err != nil {
		return nil, ctx, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(appRole, cfg.Log.FilePath, cfg.Log.Level)
	ctx = log.WithContext(ctx)

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Err(err).Str("func", "openApp").Msg("init client app error")
		return nil, ctx, err
	}
	return app, ctx, nil
}
