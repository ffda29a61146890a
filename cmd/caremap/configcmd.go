// ABOUTME: CLI commands for viewing and updating caremap configuration.
// ABOUTME: Manages the default patient and data directory settings.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		patient := cfg.Patient
		if patient == "" {
			patient = faint.Sprint("(not set)")
		}
		fmt.Printf("patient:  %s\n", patient)
		fmt.Printf("data dir: %s\n", cfg.GetDataDir())
		return nil
	},
}

var configSetPatientCmd = &cobra.Command{
	Use:   "set-patient <id>",
	Short: "Set the default patient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Patient = args[0]
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		color.Green("Default patient set to %s", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetPatientCmd)
	rootCmd.AddCommand(configCmd)
}
