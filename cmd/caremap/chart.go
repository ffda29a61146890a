// ABOUTME: CLI command for the weekly rescue medication chart.
// ABOUTME: Renders engine chart points as ASCII bars with weekday labels.
package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caremap/caremap/internal/insights"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var chartEndDate string

var chartCmd = &cobra.Command{
	Use:     "chart",
	Aliases: []string{"c"},
	Short:   "Weekly rescue medication chart",
	Long: `Show the weekly rescue medication usage chart.

The chart covers the 7 days ending at --end-date (default today). Days with
no logged answer show as zero; the chart renders even with no data at all.

Examples:
  caremap chart
  caremap chart --end-date 2024-03-07`,
	RunE: func(cmd *cobra.Command, args []string) error {
		endDate, err := resolveDate(chartEndDate)
		if err != nil {
			return err
		}

		points, err := engine.RescueMedicationChartData(patientID(), endDate)
		if err != nil {
			if errors.Is(err, insights.ErrMissingPatient) {
				return fmt.Errorf("no patient selected: pass --patient or set a default with 'caremap config set-patient'")
			}
			return fmt.Errorf("failed to load chart data: %w", err)
		}

		fmt.Printf("Rescue Medication Usage (%s)\n\n", weekRange(endDate))

		max := 0.0
		for _, p := range points {
			if p.Value > max {
				max = p.Value
			}
		}
		if max == 0 {
			for _, p := range points {
				fmt.Printf("  %s  %s\n", p.Label, color.New(color.Faint).Sprint("0"))
			}
			fmt.Println("\nNo rescue medication data for this week.")
			return nil
		}

		bar := color.New(color.FgCyan)
		for _, p := range points {
			width := int(p.Value / max * 40)
			fmt.Printf("  %s  %s %g\n", p.Label, bar.Sprint(strings.Repeat("█", width)), p.Value)
		}
		return nil
	},
}

// weekRange formats the 7-day window ending at endDate for the chart header,
// collapsing shared months and years ("Mar 1 - 7, 2024").
func weekRange(endDate string) string {
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return endDate
	}
	start := end.AddDate(0, 0, -6)

	switch {
	case start.Year() != end.Year():
		return fmt.Sprintf("%s %d, %d - %s %d, %d",
			start.Format("Jan"), start.Day(), start.Year(),
			end.Format("Jan"), end.Day(), end.Year())
	case start.Month() != end.Month():
		return fmt.Sprintf("%s %d - %s %d, %d",
			start.Format("Jan"), start.Day(), end.Format("Jan"), end.Day(), end.Year())
	default:
		return fmt.Sprintf("%s %d - %d, %d", start.Format("Jan"), start.Day(), end.Day(), end.Year())
	}
}

func init() {
	chartCmd.Flags().StringVar(&chartEndDate, "end-date", "", "last day of the week (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(chartCmd)
}
