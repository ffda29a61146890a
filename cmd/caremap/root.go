// ABOUTME: Root Cobra command for caremap CLI.
// ABOUTME: Handles storage lifecycle and patient resolution via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/caremap/caremap/internal/catalog"
	"github.com/caremap/caremap/internal/config"
	"github.com/caremap/caremap/internal/insights"
	"github.com/caremap/caremap/internal/storage"
	"github.com/spf13/cobra"
)

var (
	repo   storage.Repository
	engine *insights.Engine
	cfg    *config.Config

	flagDB      string
	flagPatient string
)

var rootCmd = &cobra.Command{
	Use:   "caremap",
	Short: "Personal health tracking and insights",
	Long: `CareMap tracks daily health answers and derives time-series insights.

WHAT IT TRACKS:

  Patients opt into track items (medications, exercise, sleep, nutrition,
  mental_health, symptoms) and log answers to each item's questions. Logged
  answers feed weekly charts and date-based insights.

QUICK START:

  $ caremap select exercise                # Opt into an item for today
  $ caremap log rescue_med_count 2         # Log an answer
  $ caremap log mood_score 7 --date 2024-03-05
  $ caremap chart                          # Weekly rescue medication chart
  $ caremap insights                       # Insights available to you
  $ caremap insights --date 2024-03-07     # All insights for a date

PATIENT SELECTION:

  Most commands need a patient id. Pass --patient, or set a default once:

  $ caremap config set-patient alice

EXPORT:

  $ caremap export json                    # Full data export
  $ caremap export markdown -o report.md   # Shareable report

MCP INTEGRATION:

  Run 'caremap mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Data lives in a SQLite database at ~/.local/share/caremap/caremap.db
  (override with --db or the data_dir config field).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if flagDB != "" {
			repo, err = storage.Open(flagDB)
		} else {
			repo, err = cfg.OpenStorage()
		}
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}

		engine = insights.New(repo, catalog.Default())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// patientID resolves the patient identifier from the --patient flag or the
// config default. An empty result is handled by the engine's ErrMissingPatient.
func patientID() string {
	if flagPatient != "" {
		return flagPatient
	}
	if cfg != nil {
		return cfg.Patient
	}
	return ""
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to SQLite database (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagPatient, "patient", "p", "", "patient identifier (overrides config default)")
}
