// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-diary/models"
)

// Export output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidExportFormats lists the accepted values of export --format.
var ValidExportFormats = []string{FormatJSON, FormatYAML}

// ExportOptions holds the flags of the export command.
type ExportOptions struct {
	Format string
}

// entryView is the YAML shape of an exported entry. Field names match the
// JSON export.
type entryView struct {
	ID        int64   `yaml:"id"`
	Title     string  `yaml:"title"`
	Content   string  `yaml:"content"`
	Mood      string  `yaml:"mood"`
	Image     *string `yaml:"image"`
	CreatedAt string  `yaml:"createdAt"`
	UpdatedAt string  `yaml:"updatedAt"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print all diary entries",
		Long: `Print every diary entry, newest first.

The diary password is asked for before anything is printed. The prompt goes
to stderr so the output can be redirected to a file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", FormatJSON, "output format (json|yaml)")

	return cmd
}

func runExport(cmd *cobra.Command, rootOpts *RootOptions, opts *ExportOptions) error {
	if !isValidFormat(opts.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidExportFormats)
	}

	app, ctx, err := openApp(cmd.Context(), rootOpts)
	if err != nil {
		return err
	}
	defer app.Close()

	passphrase, err := readPassphrase(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	entries, err := app.Services().TransferService.Export(ctx, passphrase)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return writeEntries(cmd.OutOrStdout(), opts.Format, entries)
}

func writeEntries(w io.Writer, format string, entries []models.DiaryEntry) error {
	var (
		out []byte
		err error
	)

	switch format {
	case FormatYAML:
		views := make([]entryView, 0, len(entries))
		for _, e := range entries {
			views = append(views, entryView{
				ID:        e.ID,
				Title:     e.Title,
				Content:   e.Content,
				Mood:      string(e.Mood),
				Image:     e.Image,
				CreatedAt: models.FormatTimestamp(e.CreatedAt),
				UpdatedAt: models.FormatTimestamp(e.UpdatedAt),
			})
		}
		out, err = yaml.Marshal(views)
	default:
		out, err = json.MarshalIndent(entries, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}

	_, err = w.Write(out)
	return err
}

func isValidFormat(format string) bool {
	for _, f := range ValidExportFormats {
		if f == format {
			return true
		}
	}
	return false
}
