// ABOUTME: Insight eligibility resolution for a patient.
// ABOUTME: Intersects the static catalog with selected items and typed questions.
package insights

import (
	"github.com/caremap/caremap/internal/models"
)

// InsightTopics returns the insights legitimately displayable for a patient,
// in catalog order. An insight is eligible when its track item is active and
// selected by the patient, and its question code exists among the
// numeric/boolean questions belonging to that item.
func (e *Engine) InsightTopics(patientID string) ([]models.InsightTopic, error) {
	if patientID == "" {
		return nil, ErrMissingPatient
	}

	items, err := e.store.SelectedActiveItems(patientID)
	if err != nil {
		return nil, &DataAccessError{Op: "load selected items", Err: err}
	}

	topics := []models.InsightTopic{}
	if len(items) == 0 {
		return topics, nil
	}

	questions, err := e.store.InsightQuestions()
	if err != nil {
		return nil, &DataAccessError{Op: "load insight questions", Err: err}
	}

	selected := make(map[string]bool, len(items))
	for _, item := range items {
		selected[item.Code] = true
	}

	// Question codes eligible per item code; only selected items retained.
	eligible := make(map[string]map[string]bool)
	for _, q := range questions {
		if !selected[q.ItemCode] {
			continue
		}
		if eligible[q.ItemCode] == nil {
			eligible[q.ItemCode] = make(map[string]bool)
		}
		eligible[q.ItemCode][q.Code] = true
	}

	for _, entry := range e.catalog {
		itemQuestions, ok := eligible[entry.ItemCode]
		if !ok || !itemQuestions[entry.QuestionCode] {
			continue
		}
		topics = append(topics, models.InsightTopic{
			InsightName: entry.InsightName,
			InsightKey:  entry.InsightKey,
		})
	}
	return topics, nil
}
