// ABOUTME: SQLite schema definition, initialization, and catalog seeding.
// ABOUTME: Defines tables for track items, questions, entries, and responses.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/caremap/caremap/internal/models"
	"github.com/google/uuid"
)

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS track_item (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active'
	);

	CREATE TABLE IF NOT EXISTS question (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		text TEXT NOT NULL,
		type TEXT NOT NULL,
		track_item_id TEXT NOT NULL,
		FOREIGN KEY (track_item_id) REFERENCES track_item(id)
	);

	CREATE TABLE IF NOT EXISTS track_item_entry (
		id TEXT PRIMARY KEY,
		patient_id TEXT NOT NULL,
		track_item_id TEXT NOT NULL,
		date TEXT NOT NULL,
		selected INTEGER NOT NULL DEFAULT 1,
		FOREIGN KEY (track_item_id) REFERENCES track_item(id),
		UNIQUE(patient_id, track_item_id, date)
	);

	CREATE TABLE IF NOT EXISTS track_response (
		id TEXT PRIMARY KEY,
		patient_id TEXT NOT NULL,
		question_id TEXT NOT NULL,
		track_item_entry_id TEXT NOT NULL,
		answer TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (question_id) REFERENCES question(id),
		FOREIGN KEY (track_item_entry_id) REFERENCES track_item_entry(id)
	);

	CREATE INDEX IF NOT EXISTS idx_question_item ON question(track_item_id);
	CREATE INDEX IF NOT EXISTS idx_question_type ON question(type);
	CREATE INDEX IF NOT EXISTS idx_entry_patient ON track_item_entry(patient_id, track_item_id);
	CREATE INDEX IF NOT EXISTS idx_entry_date ON track_item_entry(date);
	CREATE INDEX IF NOT EXISTS idx_response_patient ON track_response(patient_id, question_id);
	CREATE INDEX IF NOT EXISTS idx_response_entry ON track_response(track_item_entry_id);
	`

	_, err := d.db.Exec(schema)
	return err
}

// seedItem describes one default track item and its questions.
type seedItem struct {
	code      string
	name      string
	questions []seedQuestion
}

type seedQuestion struct {
	code string
	text string
	typ  models.QuestionType
}

// defaultItems is the built-in tracking catalog. Question codes here line up
// with the insight catalog in internal/catalog/insights.json.
var defaultItems = []seedItem{
	{code: "medications", name: "Medications", questions: []seedQuestion{
		{"rescue_med_count", "How many times did you need to take a rescue/as-needed medication?", models.QuestionNumeric},
		{"med_notes", "Any notes about your medications today?", models.QuestionText},
	}},
	{code: "exercise", name: "Exercise", questions: []seedQuestion{
		{"exercise_minutes", "How many minutes were you physically active today?", models.QuestionNumeric},
	}},
	{code: "sleep", name: "Sleep", questions: []seedQuestion{
		{"sleep_quality_score", "How would you rate last night's sleep? (1-10)", models.QuestionNumeric},
	}},
	{code: "nutrition", name: "Nutrition", questions: []seedQuestion{
		{"water_glasses", "How many glasses of water did you drink today?", models.QuestionNumeric},
	}},
	{code: "mental_health", name: "Mental Health", questions: []seedQuestion{
		{"mood_score", "How is your mood today? (1-10)", models.QuestionNumeric},
		{"mood_notes", "Anything affecting your mood today?", models.QuestionText},
	}},
	{code: "symptoms", name: "Symptoms", questions: []seedQuestion{
		{"symptom_flare", "Did you have a symptom flare-up today?", models.QuestionBoolean},
	}},
}

// seedCatalogItems inserts the default track items and questions if absent.
// Seeding is idempotent: existing rows (matched by code) are left untouched.
func (d *DB) seedCatalogItems() error {
	for _, si := range defaultItems {
		itemID, err := d.ensureItem(si.code, si.name)
		if err != nil {
			return err
		}
		for _, sq := range si.questions {
			if err := d.ensureQuestion(sq.code, sq.text, sq.typ, itemID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *DB) ensureItem(code, name string) (uuid.UUID, error) {
	var idStr string
	err := d.db.QueryRow("SELECT id FROM track_item WHERE code = ?", code).Scan(&idStr)
	if err == nil {
		id, parseErr := uuid.Parse(idStr)
		if parseErr != nil {
			return uuid.Nil, fmt.Errorf("parse item id for %s: %w", code, parseErr)
		}
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("look up item %s: %w", code, err)
	}

	item := models.NewTrackItem(code, name)
	_, err = d.db.Exec(
		"INSERT INTO track_item (id, code, name, status) VALUES (?, ?, ?, ?)",
		item.ID.String(), item.Code, item.Name, string(item.Status))
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert item %s: %w", code, err)
	}
	return item.ID, nil
}

func (d *DB) ensureQuestion(code, text string, qt models.QuestionType, itemID uuid.UUID) error {
	var exists int
	err := d.db.QueryRow("SELECT COUNT(*) FROM question WHERE code = ?", code).Scan(&exists)
	if err != nil {
		return fmt.Errorf("look up question %s: %w", code, err)
	}
	if exists > 0 {
		return nil
	}

	q := models.NewQuestion(code, text, qt, itemID)
	_, err = d.db.Exec(
		"INSERT INTO question (id, code, text, type, track_item_id) VALUES (?, ?, ?, ?, ?)",
		q.ID.String(), q.Code, q.Text, string(q.Type), q.TrackItemID.String())
	if err != nil {
		return fmt.Errorf("insert question %s: %w", code, err)
	}
	return nil
}
