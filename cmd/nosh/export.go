// ABOUTME: CLI commands for exporting and importing journal snapshots.
// ABOUTME: Snapshots carry units, foods, nutritables, and entries.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full journal as JSON or YAML",
	Long: `Export the full journal (foods, nutritional tables, entries) as a
snapshot, including soft-deleted rows so history keeps resolving.

JSON and YAML snapshots can be re-imported with 'nosh import'; markdown is
a read-only rendering for humans.

Examples:
  nosh export > journal.json
  nosh export --format yaml -o journal.yaml
  nosh export --format markdown -o journal.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		raw, err := storage.MarshalExport(data, exportFormat)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Println(string(raw))
			return nil
		}

		if err := os.WriteFile(exportOutput, raw, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported %d foods, %d tables, %d entries to %s",
			len(data.Foods), len(data.Nutritables), len(data.Entries), exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a journal snapshot",
	Long: `Import a snapshot produced by 'nosh export'. The journal should be empty;
imported rows keep their original ids.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		data, err := storage.UnmarshalExport(raw)
		if err != nil {
			return err
		}

		if err := repo.ImportData(data); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		color.Green("✓ Imported %d foods, %d tables, %d entries",
			len(data.Foods), len(data.Nutritables), len(data.Entries))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format: json, yaml, or markdown")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
