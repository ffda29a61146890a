// ABOUTME: Insight derivation engine: turns raw logged answers into typed series.
// ABOUTME: Reads through a narrow Store interface; catalog injected at construction.
package insights

import (
	"github.com/caremap/caremap/internal/catalog"
	"github.com/caremap/caremap/internal/models"
)

const (
	// RescueQuestionCode identifies the rescue medication question backing
	// the weekly usage chart.
	RescueQuestionCode = "rescue_med_count"

	// WindowDays is the fixed series window length, inclusive of the end date.
	WindowDays = 7
)

// Store is the read-only slice of the repository the engine needs. The engine
// only ever issues parameterized reads; it never mutates tracking data.
type Store interface {
	QuestionResponses(patientID, questionCode string) ([]models.DatedAnswer, error)
	SelectedActiveItems(patientID string) ([]*models.TrackItem, error)
	InsightQuestions() ([]*models.Question, error)
}

// Engine derives insight series and eligibility from logged responses.
// Safe for concurrent use: the catalog is immutable and all methods are
// read-only over the store.
type Engine struct {
	store   Store
	catalog catalog.Catalog
}

// New creates an Engine over the given store and insight catalog.
func New(store Store, cat catalog.Catalog) *Engine {
	return &Engine{store: store, catalog: cat}
}

// Catalog returns the engine's insight catalog.
func (e *Engine) Catalog() catalog.Catalog {
	return e.catalog
}
