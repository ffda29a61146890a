// ABOUTME: Response logging and engine read queries for SQLite storage.
// ABOUTME: Responses join to their day's entry; reads decode into typed rows.
package storage

import (
	"fmt"
	"time"

	"github.com/caremap/caremap/internal/models"
)

// RecordResponse logs an answer to a question for the given patient and day.
// The day's entry for the question's track item is created (and selected) if
// absent, so a logged answer always implies item selection.
func (d *DB) RecordResponse(patientID, questionCode, answer, date string) (*models.TrackResponse, error) {
	q, err := d.GetQuestionByCode(questionCode)
	if err != nil {
		return nil, err
	}

	entry, err := d.SelectItem(patientID, q.ItemCode, date)
	if err != nil {
		return nil, err
	}

	r := models.NewTrackResponse(patientID, q.ID, entry.ID, answer)
	_, err = d.db.Exec(`
		INSERT INTO track_response (id, patient_id, question_id, track_item_entry_id, answer, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.ID.String(), r.PatientID, r.QuestionID.String(), r.EntryID.String(), r.Answer,
		r.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("record response: %w", err)
	}
	return r, nil
}

// ListResponses retrieves a patient's responses joined to question and item
// codes, most recent entry date first.
func (d *DB) ListResponses(patientID string, limit int) ([]*ResponseRow, error) {
	query := `
		SELECT tr.id, tie.date, ti.code, q.code, tr.answer
		FROM track_response tr
		INNER JOIN track_item_entry tie ON tr.track_item_entry_id = tie.id
		INNER JOIN track_item ti ON tie.track_item_id = ti.id
		INNER JOIN question q ON tr.question_id = q.id
		WHERE tr.patient_id = ?
		ORDER BY tie.date DESC, tr.created_at DESC
	`
	args := []interface{}{patientID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	defer rows.Close()

	var result []*ResponseRow
	for rows.Next() {
		var r ResponseRow
		if err := rows.Scan(&r.ID, &r.Date, &r.ItemCode, &r.QuestionCode, &r.Answer); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		result = append(result, &r)
	}
	return result, rows.Err()
}

// QuestionResponses returns all of a patient's answers to one question,
// ordered by underlying entry date ascending. Rows are decoded into typed
// DatedAnswer records at this boundary; raw answer interpretation is left to
// the insights engine.
func (d *DB) QuestionResponses(patientID, questionCode string) ([]models.DatedAnswer, error) {
	rows, err := d.db.Query(`
		SELECT tie.date, tr.answer
		FROM track_response tr
		INNER JOIN track_item_entry tie ON tr.track_item_entry_id = tie.id
		INNER JOIN question q ON tr.question_id = q.id
		WHERE tr.patient_id = ? AND q.code = ?
		ORDER BY tie.date ASC, tr.created_at ASC
	`, patientID, questionCode)
	if err != nil {
		return nil, fmt.Errorf("question responses: %w", err)
	}
	defer rows.Close()

	var answers []models.DatedAnswer
	for rows.Next() {
		var a models.DatedAnswer
		if err := rows.Scan(&a.Date, &a.Answer); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}
