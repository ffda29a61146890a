// ABOUTME: Track item and question read/write operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for items, questions, and selection.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/caremap/caremap/internal/models"
	"github.com/google/uuid"
)

// ListItems retrieves all track items ordered by code.
func (d *DB) ListItems() ([]*models.TrackItem, error) {
	rows, err := d.db.Query(`
		SELECT id, code, name, status
		FROM track_item
		ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// GetItemByCode retrieves a track item by its code.
func (d *DB) GetItemByCode(code string) (*models.TrackItem, error) {
	row := d.db.QueryRow(`
		SELECT id, code, name, status
		FROM track_item
		WHERE code = ?
	`, code)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("unknown track item: %s", code)
		}
		return nil, fmt.Errorf("get item %s: %w", code, err)
	}
	return item, nil
}

// SetItemStatus marks a track item active or inactive.
func (d *DB) SetItemStatus(code string, status models.ItemStatus) error {
	result, err := d.db.Exec("UPDATE track_item SET status = ? WHERE code = ?", string(status), code)
	if err != nil {
		return fmt.Errorf("set item status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set item status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("unknown track item: %s", code)
	}
	return nil
}

// GetQuestionByCode retrieves a question by its code, with item code populated.
func (d *DB) GetQuestionByCode(code string) (*models.Question, error) {
	row := d.db.QueryRow(`
		SELECT q.id, q.code, q.text, q.type, q.track_item_id, ti.code
		FROM question q
		INNER JOIN track_item ti ON q.track_item_id = ti.id
		WHERE q.code = ?
	`, code)

	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("unknown question: %s", code)
		}
		return nil, fmt.Errorf("get question %s: %w", code, err)
	}
	return q, nil
}

// ListQuestions retrieves questions, optionally filtered by item code.
func (d *DB) ListQuestions(itemCode string) ([]*models.Question, error) {
	query := `
		SELECT q.id, q.code, q.text, q.type, q.track_item_id, ti.code
		FROM question q
		INNER JOIN track_item ti ON q.track_item_id = ti.id
	`
	var args []interface{}
	if itemCode != "" {
		query += " WHERE ti.code = ?"
		args = append(args, itemCode)
	}
	query += " ORDER BY ti.code, q.code"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// SelectItem opts a patient into a track item for the given day.
// The entry is created if absent and re-selected if previously deselected.
func (d *DB) SelectItem(patientID, itemCode, date string) (*models.TrackItemEntry, error) {
	item, err := d.GetItemByCode(itemCode)
	if err != nil {
		return nil, err
	}

	entry, err := d.getEntry(patientID, item.ID, date)
	if err == nil {
		if !entry.Selected {
			if _, err := d.db.Exec("UPDATE track_item_entry SET selected = 1 WHERE id = ?", entry.ID.String()); err != nil {
				return nil, fmt.Errorf("reselect item: %w", err)
			}
			entry.Selected = true
		}
		return entry, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("select item: %w", err)
	}

	entry = models.NewTrackItemEntry(patientID, item.ID, date)
	_, err = d.db.Exec(`
		INSERT INTO track_item_entry (id, patient_id, track_item_id, date, selected)
		VALUES (?, ?, ?, ?, 1)
	`, entry.ID.String(), entry.PatientID, entry.TrackItemID.String(), entry.Date)
	if err != nil {
		return nil, fmt.Errorf("select item: %w", err)
	}
	return entry, nil
}

// SelectedActiveItems returns the active track items the patient has selected
// on at least one entry.
func (d *DB) SelectedActiveItems(patientID string) ([]*models.TrackItem, error) {
	rows, err := d.db.Query(`
		SELECT DISTINCT ti.id, ti.code, ti.name, ti.status
		FROM track_item ti
		INNER JOIN track_item_entry tie ON tie.track_item_id = ti.id
		WHERE tie.patient_id = ? AND tie.selected = 1 AND ti.status = 'active'
		ORDER BY ti.code
	`, patientID)
	if err != nil {
		return nil, fmt.Errorf("selected items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// InsightQuestions returns all numeric and boolean questions system-wide,
// with their owning item codes populated.
func (d *DB) InsightQuestions() ([]*models.Question, error) {
	rows, err := d.db.Query(`
		SELECT q.id, q.code, q.text, q.type, q.track_item_id, ti.code
		FROM question q
		INNER JOIN track_item ti ON q.track_item_id = ti.id
		WHERE q.type IN ('numeric', 'boolean')
		ORDER BY ti.code, q.code
	`)
	if err != nil {
		return nil, fmt.Errorf("insight questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// getEntry fetches the entry for (patient, item, date). Returns sql.ErrNoRows
// when none exists.
func (d *DB) getEntry(patientID string, itemID uuid.UUID, date string) (*models.TrackItemEntry, error) {
	var e models.TrackItemEntry
	var idStr, itemIDStr string
	var selected int

	err := d.db.QueryRow(`
		SELECT id, patient_id, track_item_id, date, selected
		FROM track_item_entry
		WHERE patient_id = ? AND track_item_id = ? AND date = ?
	`, patientID, itemID.String(), date).Scan(&idStr, &e.PatientID, &itemIDStr, &e.Date, &selected)
	if err != nil {
		return nil, err
	}

	e.ID, _ = uuid.Parse(idStr)
	e.TrackItemID, _ = uuid.Parse(itemIDStr)
	e.Selected = selected != 0
	return &e, nil
}

// scanItem scans a single row into a TrackItem struct.
func scanItem(row *sql.Row) (*models.TrackItem, error) {
	var item models.TrackItem
	var idStr, status string

	if err := row.Scan(&idStr, &item.Code, &item.Name, &status); err != nil {
		return nil, err
	}

	item.ID, _ = uuid.Parse(idStr)
	item.Status = models.ItemStatus(status)
	return &item, nil
}

// scanItems scans multiple rows into a slice of TrackItems.
func scanItems(rows *sql.Rows) ([]*models.TrackItem, error) {
	var items []*models.TrackItem

	for rows.Next() {
		var item models.TrackItem
		var idStr, status string

		if err := rows.Scan(&idStr, &item.Code, &item.Name, &status); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}

		item.ID, _ = uuid.Parse(idStr)
		item.Status = models.ItemStatus(status)
		items = append(items, &item)
	}

	return items, rows.Err()
}

// scanQuestion scans a single joined row into a Question struct.
func scanQuestion(row *sql.Row) (*models.Question, error) {
	var q models.Question
	var idStr, typ, itemIDStr string

	if err := row.Scan(&idStr, &q.Code, &q.Text, &typ, &itemIDStr, &q.ItemCode); err != nil {
		return nil, err
	}

	q.ID, _ = uuid.Parse(idStr)
	q.Type = models.QuestionType(typ)
	q.TrackItemID, _ = uuid.Parse(itemIDStr)
	return &q, nil
}

// scanQuestions scans multiple joined rows into a slice of Questions.
func scanQuestions(rows *sql.Rows) ([]*models.Question, error) {
	var questions []*models.Question

	for rows.Next() {
		var q models.Question
		var idStr, typ, itemIDStr string

		if err := rows.Scan(&idStr, &q.Code, &q.Text, &typ, &itemIDStr, &q.ItemCode); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}

		q.ID, _ = uuid.Parse(idStr)
		q.Type = models.QuestionType(typ)
		q.TrackItemID, _ = uuid.Parse(itemIDStr)
		questions = append(questions, &q)
	}

	return questions, rows.Err()
}
