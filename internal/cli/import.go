// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-diary/internal/store"
)

// ImportOptions holds the flags of the import command.
type ImportOptions struct {
	Force bool
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{}

	cmd := &cobra.Command{
		Use:   "import <dump.json>",
		Short: "Import a browser diary dump",
		Long: `Copy the password and the entries of the browser diary into the local store.

The dump is a flat JSON object of local storage keys, as saved from the
browser developer tools. An existing local password is never replaced
unless --force is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "replace an existing diary password")

	return cmd
}

func runImport(cmd *cobra.Command, rootOpts *RootOptions, opts *ImportOptions, dumpPath string) error {
	info, err := os.Stat(dumpPath)
	if err != nil {
		return fmt.Errorf("open dump: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("open dump: %s is not a file", dumpPath)
	}

	src, err := store.NewFileKeyValueStorage(dumpPath)
	if err != nil {
		return fmt.Errorf("open dump: %w", err)
	}

	app, ctx, err := openApp(cmd.Context(), rootOpts)
	if err != nil {
		return err
	}
	defer app.Close()

	summary, err := app.Services().TransferService.Import(ctx, src, opts.Force)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	password := "kept"
	if summary.CredentialImported {
		password = "imported"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries, password %s.\n", summary.Entries, password)
	return err
}
