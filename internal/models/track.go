// ABOUTME: Track item, question, entry, and response models for patient logging.
// ABOUTME: Items are trackable categories; questions belong to exactly one item.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemStatus represents the lifecycle state of a track item.
type ItemStatus string

const (
	ItemActive   ItemStatus = "active"
	ItemInactive ItemStatus = "inactive"
)

// QuestionType represents the answer shape a question expects.
// Only numeric and boolean questions feed insights.
type QuestionType string

const (
	QuestionNumeric QuestionType = "numeric"
	QuestionBoolean QuestionType = "boolean"
	QuestionText    QuestionType = "text"
)

// InsightEligibleTypes lists the question types that can back an insight.
var InsightEligibleTypes = []QuestionType{QuestionNumeric, QuestionBoolean}

// IsInsightEligible reports whether a question type can back an insight.
func IsInsightEligible(qt QuestionType) bool {
	return qt == QuestionNumeric || qt == QuestionBoolean
}

// TrackItem is a category of patient-trackable behavior (e.g. "exercise").
// Patients opt in by selecting an item on a given day.
type TrackItem struct {
	ID     uuid.UUID
	Code   string
	Name   string
	Status ItemStatus
}

// NewTrackItem creates an active TrackItem with a generated UUID.
func NewTrackItem(code, name string) *TrackItem {
	return &TrackItem{
		ID:     uuid.New(),
		Code:   code,
		Name:   name,
		Status: ItemActive,
	}
}

// Question is a single prompt a patient answers, owned by one track item.
type Question struct {
	ID          uuid.UUID
	Code        string
	Text        string
	Type        QuestionType
	TrackItemID uuid.UUID

	// ItemCode is populated when questions are read joined to their item.
	ItemCode string
}

// NewQuestion creates a Question with a generated UUID.
func NewQuestion(code, text string, qt QuestionType, itemID uuid.UUID) *Question {
	return &Question{
		ID:          uuid.New(),
		Code:        code,
		Text:        text,
		Type:        qt,
		TrackItemID: itemID,
	}
}

// TrackItemEntry records a patient's selection of a track item on one day.
type TrackItemEntry struct {
	ID          uuid.UUID
	PatientID   string
	TrackItemID uuid.UUID
	Date        string
	Selected    bool
}

// NewTrackItemEntry creates a selected entry for the given patient, item, and day.
func NewTrackItemEntry(patientID string, itemID uuid.UUID, date string) *TrackItemEntry {
	return &TrackItemEntry{
		ID:          uuid.New(),
		PatientID:   patientID,
		TrackItemID: itemID,
		Date:        date,
		Selected:    true,
	}
}

// TrackResponse is a single logged answer to a question. Answer is kept raw;
// historical data may hold JSON-encoded strings, bare numbers, or junk, so
// interpretation is deferred to the insights engine.
type TrackResponse struct {
	ID         uuid.UUID
	PatientID  string
	QuestionID uuid.UUID
	EntryID    uuid.UUID
	Answer     string
	CreatedAt  time.Time
}

// NewTrackResponse creates a TrackResponse with a generated UUID and current timestamp.
func NewTrackResponse(patientID string, questionID, entryID uuid.UUID, answer string) *TrackResponse {
	return &TrackResponse{
		ID:         uuid.New(),
		PatientID:  patientID,
		QuestionID: questionID,
		EntryID:    entryID,
		Answer:     answer,
		CreatedAt:  time.Now(),
	}
}

// DatedAnswer is the typed row shape for response reads: the entry's date
// alongside the raw answer. Decoding happens at the storage boundary so the
// rest of the engine never touches sql.Rows.
type DatedAnswer struct {
	Date   string
	Answer string
}
