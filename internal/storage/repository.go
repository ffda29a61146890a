// ABOUTME: Repository interface for patient tracking data storage.
// ABOUTME: Defines contract for item, entry, and response operations plus engine reads.
package storage

import (
	"github.com/caremap/caremap/internal/models"
)

// Repository defines the storage interface for tracking data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Track item operations
	ListItems() ([]*models.TrackItem, error)
	GetItemByCode(code string) (*models.TrackItem, error)
	SetItemStatus(code string, status models.ItemStatus) error

	// Question operations
	GetQuestionByCode(code string) (*models.Question, error)
	ListQuestions(itemCode string) ([]*models.Question, error)

	// Entry and response operations
	SelectItem(patientID, itemCode, date string) (*models.TrackItemEntry, error)
	RecordResponse(patientID, questionCode, answer, date string) (*models.TrackResponse, error)
	ListResponses(patientID string, limit int) ([]*ResponseRow, error)

	// Engine reads (parameterized SELECTs; never mutate)
	QuestionResponses(patientID, questionCode string) ([]models.DatedAnswer, error)
	SelectedActiveItems(patientID string) ([]*models.TrackItem, error)
	InsightQuestions() ([]*models.Question, error)

	// Export
	GetPatientData(patientID string) (*ExportData, error)
	ExportJSON(patientID string) ([]byte, error)
	ExportYAML(patientID string) ([]byte, error)
	ExportMarkdown(patientID, since string) (string, error)

	// Lifecycle
	Close() error
}

// ResponseRow is a response joined to its question and item for display.
type ResponseRow struct {
	ID           string `json:"id" yaml:"id"`
	Date         string `json:"date" yaml:"date"`
	ItemCode     string `json:"item_code" yaml:"item_code"`
	QuestionCode string `json:"question_code" yaml:"question_code"`
	Answer       string `json:"answer" yaml:"answer"`
}
