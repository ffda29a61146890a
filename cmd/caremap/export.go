// ABOUTME: CLI command for exporting patient tracking data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export patient data",
	Long: `Export the patient's tracking data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup)
  yaml       YAML export, responses grouped by question
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include responses since this date (markdown only)

EXAMPLES:

  caremap export json                       # Export all data as JSON
  caremap export json -o backup.json        # Save to file
  caremap export markdown --since 2024-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		pid := patientID()
		if pid == "" {
			return fmt.Errorf("no patient selected: pass --patient or set a default with 'caremap config set-patient'")
		}

		var data []byte
		var err error
		switch args[0] {
		case "json":
			data, err = repo.ExportJSON(pid)
		case "yaml":
			data, err = repo.ExportYAML(pid)
		case "markdown":
			if exportSince != "" {
				if _, derr := resolveDate(exportSince); derr != nil {
					return derr
				}
			}
			var md string
			md, err = repo.ExportMarkdown(pid, exportSince)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			color.Green("Exported to %s", exportOutput)
			return nil
		}

		fmt.Print(string(data))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include responses since this date (YYYY-MM-DD)")
	rootCmd.AddCommand(exportCmd)
}
