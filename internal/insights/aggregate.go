// ABOUTME: Date-based insight aggregation: single-key fetch and full-catalog walk.
// ABOUTME: Per-key failures are isolated; partial results return with a joined error.
package insights

import (
	"errors"
	"fmt"
	"time"

	"github.com/caremap/caremap/internal/models"
)

// UnknownInsightName is the display name for keys absent from the catalog.
const UnknownInsightName = "Unknown Insight"

// DateInsightRequest identifies one date-based insight fetch.
// QuestionCode overrides the catalog's question when set; this supports
// callers that pair an ad-hoc question with a known key.
type DateInsightRequest struct {
	PatientID    string
	SelectedDate string
	InsightKey   string
	QuestionCode string
}

// DateBasedInsight fetches one insight's series over the 7-day window ending
// at the selected date. An insight with no logged data in the window returns
// an empty Series slice, never a nil result, so callers can render an
// explicit "no data" state.
func (e *Engine) DateBasedInsight(req DateInsightRequest) (*models.InsightResult, error) {
	if req.PatientID == "" {
		return nil, ErrMissingPatient
	}

	end, err := time.Parse(dateLayout, req.SelectedDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.SelectedDate, err)
	}
	start := end.AddDate(0, 0, -(WindowDays - 1))

	name := UnknownInsightName
	topic := req.InsightKey
	unit := ""
	questionCode := req.QuestionCode
	if entry, ok := e.catalog.Lookup(req.InsightKey); ok {
		name = entry.InsightName
		topic = entry.Topic
		unit = entry.Unit
		if questionCode == "" {
			questionCode = entry.QuestionCode
		}
	}

	result := &models.InsightResult{
		InsightKey:  req.InsightKey,
		InsightName: name,
		StartDate:   start.Format(dateLayout),
		EndDate:     end.Format(dateLayout),
		Series:      []models.InsightSeries{},
	}
	if questionCode == "" {
		// Unknown key with no question to query: explicit no-data entry.
		return result, nil
	}

	rows, err := e.store.QuestionResponses(req.PatientID, questionCode)
	if err != nil {
		return nil, &DataAccessError{Op: fmt.Sprintf("load %s responses", questionCode), Err: err}
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[NormalizeDateKey(row.Date)] = ParseAnswerCount(row.Answer)
	}

	points := make([]models.ChartPoint, 0, WindowDays)
	hasData := false
	for i := WindowDays - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i).Format(dateLayout)
		count, logged := counts[day]
		if logged {
			hasData = true
		}
		points = append(points, models.ChartPoint{
			Value: float64(count),
			Label: day,
			Unit:  unit,
		})
	}
	if !hasData {
		return result, nil
	}

	result.Series = append(result.Series, models.InsightSeries{Topic: topic, Data: points})
	return result, nil
}

// AllDateBasedInsights fetches every catalog insight for the given date, in
// catalog order. This path is deliberately not gated by eligibility: the
// catalog is the universe, and ineligible or empty insights appear with an
// empty series so diagnostic views can show every possible insight.
//
// Per-key failures are isolated: a failed fetch still contributes its entry
// (with an empty series) and the result slice always has one entry per
// catalog key. The returned error, when non-nil, is the join of the per-key
// failures; callers get the partial results either way.
func (e *Engine) AllDateBasedInsights(patientID, date string) ([]models.InsightResult, error) {
	if patientID == "" {
		return nil, ErrMissingPatient
	}

	end, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	start := end.AddDate(0, 0, -(WindowDays - 1))

	results := make([]models.InsightResult, 0, len(e.catalog))
	var errs []error
	for _, entry := range e.catalog {
		r, err := e.DateBasedInsight(DateInsightRequest{
			PatientID:    patientID,
			SelectedDate: date,
			InsightKey:   entry.InsightKey,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.InsightKey, err))
			results = append(results, models.InsightResult{
				InsightKey:  entry.InsightKey,
				InsightName: entry.InsightName,
				StartDate:   start.Format(dateLayout),
				EndDate:     end.Format(dateLayout),
				Series:      []models.InsightSeries{},
			})
			continue
		}
		results = append(results, *r)
	}
	return results, errors.Join(errs...)
}
