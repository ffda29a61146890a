// ABOUTME: Weekly rescue medication series builder and chart projection.
// ABOUTME: Joins logged entries to a dense calendar window, missing days default to 0.
package insights

import (
	"fmt"
	"time"

	"github.com/caremap/caremap/internal/models"
)

// RescueMedicationWeek reconstructs the 7-day daily series of rescue
// medication uses ending at endDate (YYYY-MM-DD). Duplicate answers for one
// date overwrite (last write wins); days with no answer carry count 0. The
// result always has exactly WindowDays entries in ascending date order.
func (e *Engine) RescueMedicationWeek(patientID, endDate string) ([]models.DailyDatum, error) {
	if patientID == "" {
		return nil, ErrMissingPatient
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	rows, err := e.store.QuestionResponses(patientID, RescueQuestionCode)
	if err != nil {
		return nil, &DataAccessError{Op: "load rescue medication responses", Err: err}
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[NormalizeDateKey(row.Date)] = ParseAnswerCount(row.Answer)
	}

	week := make([]models.DailyDatum, 0, WindowDays)
	for i := WindowDays - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i).Format(dateLayout)
		week = append(week, models.DailyDatum{Date: day, Count: counts[day]})
	}
	return week, nil
}

// RescueMedicationChartData projects the weekly series into chart-ready
// points labelled with short weekday names.
func (e *Engine) RescueMedicationChartData(patientID, endDate string) ([]models.ChartPoint, error) {
	week, err := e.RescueMedicationWeek(patientID, endDate)
	if err != nil {
		return nil, err
	}

	points := make([]models.ChartPoint, len(week))
	for i, day := range week {
		label, err := WeekdayLabel(day.Date)
		if err != nil {
			return nil, fmt.Errorf("label %s: %w", day.Date, err)
		}
		points[i] = models.ChartPoint{Value: float64(day.Count), Label: label}
	}
	return points, nil
}
