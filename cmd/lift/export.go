// ABOUTME: CLI commands for exporting and importing the movement library.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <format>",
		Short: "Export the movement library",
		Long: `Export the movement library in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown table (for documentation/sharing)

EXAMPLES:

  lift export json                  # Export all movements as JSON
  lift export json -o backup.json   # Save to file
  lift export markdown`,
		Args:      positional("format"),
		ValidArgs: []string{"json", "yaml", "markdown"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			format := args[0]

			repo, err := a.storage(ctx)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "json":
				data, err = storage.ExportJSON(ctx, repo)
			case "yaml":
				data, err = storage.ExportYAML(ctx, repo)
			case "markdown", "md":
				var md string
				md, err = storage.ExportMarkdown(ctx, repo)
				data = []byte(md)
			default:
				return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
			}
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0600); err != nil {
					return fmt.Errorf("failed to write file: %w", err)
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported to %s\n", output)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import movements from a JSON export",
		Long: `Import movements from a JSON file written by 'lift export json'.

Exported ids are kept. A movement whose id or name is already stored stops
the import; movements imported before it stay in the database.`,
		Args: positional("file"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			filename := args[0]

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			repo, err := a.storage(ctx)
			if err != nil {
				return err
			}
			n, err := storage.ImportJSON(ctx, repo, data)
			if err != nil {
				return fmt.Errorf("import failed after %d movements: %w", n, err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Imported %d movements from %s\n", n, filename)
			return nil
		},
	}
}
