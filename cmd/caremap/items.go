// ABOUTME: CLI commands for listing track items and opting into them.
// ABOUTME: Selection creates the per-day entry that gates insight eligibility.
package main

import (
	"fmt"

	"github.com/caremap/caremap/internal/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var selectDate string

var itemsCmd = &cobra.Command{
	Use:     "items",
	Aliases: []string{"i"},
	Short:   "List track items",
	Long: `List all track items with their status and your selection state.

Selected items (marked with *) are the ones you have opted into on at least
one day; only selected, active items can produce insights.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := repo.ListItems()
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}

		selected := map[string]bool{}
		if pid := patientID(); pid != "" {
			mine, err := repo.SelectedActiveItems(pid)
			if err != nil {
				return fmt.Errorf("failed to load selections: %w", err)
			}
			for _, item := range mine {
				selected[item.Code] = true
			}
		}

		faint := color.New(color.Faint)
		for _, item := range items {
			mark := " "
			if selected[item.Code] {
				mark = color.GreenString("*")
			}
			status := ""
			if item.Status != models.ItemActive {
				status = faint.Sprintf(" (%s)", item.Status)
			}
			fmt.Printf("%s %s %s%s\n", mark, padRight(item.Code, 16), item.Name, status)
		}
		return nil
	},
}

var selectCmd = &cobra.Command{
	Use:   "select <item-code>",
	Short: "Opt into a track item",
	Long: `Opt the patient into a track item for a given day.

Selection is per-day: each selection creates (or re-activates) that day's
entry for the item. Logged answers imply selection automatically, so explicit
selection is only needed for days you track without answering.

Examples:
  caremap select exercise
  caremap select sleep --date 2024-03-05`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid := patientID()
		if pid == "" {
			return fmt.Errorf("no patient selected: pass --patient or set a default with 'caremap config set-patient'")
		}

		date, err := resolveDate(selectDate)
		if err != nil {
			return err
		}

		entry, err := repo.SelectItem(pid, args[0], date)
		if err != nil {
			return fmt.Errorf("failed to select item: %w", err)
		}

		color.Green("Selected %s for %s", args[0], entry.Date)
		return nil
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions [item-code]",
	Short: "List questions",
	Long: `List the questions patients answer, optionally for one track item.

Numeric and boolean questions can back insights; text questions cannot.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemCode := ""
		if len(args) > 0 {
			itemCode = args[0]
		}

		questions, err := repo.ListQuestions(itemCode)
		if err != nil {
			return fmt.Errorf("failed to list questions: %w", err)
		}

		faint := color.New(color.Faint)
		for _, q := range questions {
			fmt.Printf("%s %s %s\n    %s\n",
				padRight(q.ItemCode, 14),
				padRight(q.Code, 20),
				faint.Sprint(q.Type),
				faint.Sprint(q.Text))
		}
		return nil
	},
}

func init() {
	selectCmd.Flags().StringVar(&selectDate, "date", "", "selection date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(questionsCmd)
}
