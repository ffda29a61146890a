// ABOUTME: CLI commands for logging answers and listing logged responses.
// ABOUTME: Answers are stored raw; the insights engine interprets them later.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	logDate        string
	responsesLimit int
)

var logCmd = &cobra.Command{
	Use:     "log <question-code> <answer>",
	Aliases: []string{"l"},
	Short:   "Log an answer to a question",
	Long: `Log an answer to a tracked question for a given day.

The answer is stored as-is. Numeric questions expect counts ("2"), boolean
questions expect true/false, text questions take anything. Logging an answer
automatically selects the question's track item for that day.

Examples:
  caremap log rescue_med_count 2
  caremap log mood_score 7 --date 2024-03-05
  caremap log symptom_flare true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid := patientID()
		if pid == "" {
			return fmt.Errorf("no patient selected: pass --patient or set a default with 'caremap config set-patient'")
		}

		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}

		r, err := repo.RecordResponse(pid, args[0], args[1], date)
		if err != nil {
			return fmt.Errorf("failed to record response: %w", err)
		}

		color.Green("Logged %s = %s for %s (ID: %s)", args[0], args[1], date, r.ID.String()[:8])
		return nil
	},
}

var responsesCmd = &cobra.Command{
	Use:     "responses",
	Aliases: []string{"r"},
	Short:   "List logged responses",
	Long: `List recent logged responses for the patient, newest first.

Each line shows: ID  DATE  ITEM  QUESTION  ANSWER`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pid := patientID()
		if pid == "" {
			return fmt.Errorf("no patient selected: pass --patient or set a default with 'caremap config set-patient'")
		}

		responses, err := repo.ListResponses(pid, responsesLimit)
		if err != nil {
			return fmt.Errorf("failed to list responses: %w", err)
		}

		if len(responses) == 0 {
			fmt.Println("No responses logged.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range responses {
			fmt.Printf("%s %s %s %s %s\n",
				faint.Sprint(r.ID[:8]),
				faint.Sprint(r.Date),
				padRight(r.ItemCode, 14),
				padRight(r.QuestionCode, 20),
				truncate(r.Answer, 30))
		}
		return nil
	},
}

// resolveDate validates a --date flag value, defaulting to today.
func resolveDate(flag string) (string, error) {
	if flag == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", flag); err != nil {
		return "", fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", flag)
	}
	return flag, nil
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "entry date (YYYY-MM-DD, default today)")
	responsesCmd.Flags().IntVarP(&responsesLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(responsesCmd)
}
