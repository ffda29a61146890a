// ABOUTME: Test fixtures for the insights engine: in-memory fake store.
// ABOUTME: Provides canned responses per question plus injectable failures.
package insights

import (
	"errors"

	"github.com/caremap/caremap/internal/catalog"
	"github.com/caremap/caremap/internal/models"
)

type fakeStore struct {
	responses map[string][]models.DatedAnswer // question code -> rows
	items     []*models.TrackItem
	questions []*models.Question

	failQuestions map[string]error // question code -> error to return
	itemsErr      error
	questionsErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		responses:     map[string][]models.DatedAnswer{},
		failQuestions: map[string]error{},
	}
}

func (f *fakeStore) QuestionResponses(patientID, questionCode string) ([]models.DatedAnswer, error) {
	if err := f.failQuestions[questionCode]; err != nil {
		return nil, err
	}
	return f.responses[questionCode], nil
}

func (f *fakeStore) SelectedActiveItems(patientID string) ([]*models.TrackItem, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.items, nil
}

func (f *fakeStore) InsightQuestions() ([]*models.Question, error) {
	if f.questionsErr != nil {
		return nil, f.questionsErr
	}
	return f.questions, nil
}

var errStore = errors.New("db locked")

// testCatalog is a two-entry catalog used across engine tests.
var testCatalog = catalog.Catalog{
	{
		InsightKey:   "rescue_medication_usage",
		InsightName:  "Rescue Medication Usage",
		ItemCode:     "medications",
		QuestionCode: "rescue_med_count",
		Topic:        "Daily Uses",
		Unit:         "uses",
	},
	{
		InsightKey:   "mood_rating",
		InsightName:  "Mood",
		ItemCode:     "mental_health",
		QuestionCode: "mood_score",
		Topic:        "Mood Score",
		Unit:         "scale",
	},
}
