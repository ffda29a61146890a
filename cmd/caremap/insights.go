// ABOUTME: CLI commands for insight topics and date-based insight tables.
// ABOUTME: Topics are eligibility-gated; --date fetches the full catalog.
package main

import (
	"errors"
	"fmt"

	"github.com/caremap/caremap/internal/insights"
	"github.com/caremap/caremap/internal/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	insightsDate string
	insightsKey  string
)

var insightsCmd = &cobra.Command{
	Use:     "insights",
	Aliases: []string{"in"},
	Short:   "Show insights",
	Long: `Show insights derived from your logged answers.

Without flags, lists the insights you are eligible for: those whose track
item is active and selected, with a numeric or boolean question behind it.

With --date, fetches EVERY catalog insight for that date, eligible or not;
insights with no data show an explicit empty state. Use --key to fetch a
single insight.

Examples:
  caremap insights
  caremap insights --date 2024-03-07
  caremap insights --date 2024-03-07 --key mood_rating`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pid := patientID()

		if insightsDate == "" {
			return showTopics(pid)
		}
		date, err := resolveDate(insightsDate)
		if err != nil {
			return err
		}
		if insightsKey != "" {
			return showSingleInsight(pid, date, insightsKey)
		}
		return showAllInsights(pid, date)
	},
}

func showTopics(pid string) error {
	topics, err := engine.InsightTopics(pid)
	if err != nil {
		return insightErr("failed to load insight topics", err)
	}

	if len(topics) == 0 {
		fmt.Println("No insights available yet. Select track items and log answers first.")
		return nil
	}

	faint := color.New(color.Faint)
	for _, t := range topics {
		fmt.Printf("%s %s\n", padRight(t.InsightName, 28), faint.Sprint(t.InsightKey))
	}
	return nil
}

func showAllInsights(pid, date string) error {
	results, err := engine.AllDateBasedInsights(pid, date)
	if err != nil && results == nil {
		return insightErr("failed to load insights", err)
	}

	for i := range results {
		printInsight(&results[i])
	}
	if err != nil {
		// Partial results: some insights failed to load but the rest rendered.
		color.Yellow("\nSome insights could not be loaded:\n%v", err)
	}
	return nil
}

func showSingleInsight(pid, date, key string) error {
	result, err := engine.DateBasedInsight(insights.DateInsightRequest{
		PatientID:    pid,
		SelectedDate: date,
		InsightKey:   key,
	})
	if err != nil {
		return insightErr("failed to load insight", err)
	}
	printInsight(result)
	return nil
}

func printInsight(r *models.InsightResult) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Printf("\n%s\n", r.InsightName)
	faint.Printf("%s to %s\n", r.StartDate, r.EndDate)

	if len(r.Series) == 0 {
		fmt.Println("  No data available for this insight.")
		return
	}

	for _, s := range r.Series {
		fmt.Printf("  %s\n", s.Topic)
		for _, p := range s.Data {
			unit := ""
			if p.Unit != "" {
				unit = " " + p.Unit
			}
			fmt.Printf("    %s  %g%s\n", p.Label, p.Value, unit)
		}
	}
}

func insightErr(msg string, err error) error {
	if errors.Is(err, insights.ErrMissingPatient) {
		return fmt.Errorf("no patient selected: pass --patient or set a default with 'caremap config set-patient'")
	}
	var dae *insights.DataAccessError
	if errors.As(err, &dae) {
		return fmt.Errorf("%s: %w (try again)", msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func init() {
	insightsCmd.Flags().StringVar(&insightsDate, "date", "", "fetch date-based insights for this date (YYYY-MM-DD)")
	insightsCmd.Flags().StringVar(&insightsKey, "key", "", "fetch a single insight by key (requires --date)")
	rootCmd.AddCommand(insightsCmd)
}
