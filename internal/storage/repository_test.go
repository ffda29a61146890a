// ABOUTME: Tests for Repository interface implementation over SQLite.
// ABOUTME: Verifies seeding, selection, response logging, and engine reads.
package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/caremap/caremap/internal/models"
)

func TestSeededItemsAndQuestions(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	items, err := db.ListItems()
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != len(defaultItems) {
		t.Errorf("expected %d seeded items, got %d", len(defaultItems), len(items))
	}

	q, err := db.GetQuestionByCode("rescue_med_count")
	if err != nil {
		t.Fatalf("GetQuestionByCode failed: %v", err)
	}
	if q.Type != models.QuestionNumeric {
		t.Errorf("type = %s, want numeric", q.Type)
	}
	if q.ItemCode != "medications" {
		t.Errorf("item code = %s, want medications", q.ItemCode)
	}
}

func TestSeedingIsIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "caremap.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	db.Close()

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer db.Close()

	items, err := db.ListItems()
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != len(defaultItems) {
		t.Errorf("reopening duplicated seeds: %d items", len(items))
	}
}

func TestSelectItem(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	entry, err := db.SelectItem("patient-1", "exercise", "2024-03-07")
	if err != nil {
		t.Fatalf("SelectItem failed: %v", err)
	}
	if !entry.Selected {
		t.Error("entry must be selected")
	}

	// Selecting again returns the same entry
	again, err := db.SelectItem("patient-1", "exercise", "2024-03-07")
	if err != nil {
		t.Fatalf("second SelectItem failed: %v", err)
	}
	if again.ID != entry.ID {
		t.Errorf("expected same entry, got %s and %s", entry.ID, again.ID)
	}
}

func TestSelectItemUnknownCode(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.SelectItem("patient-1", "nope", "2024-03-07"); err == nil {
		t.Error("expected error for unknown item code")
	}
}

func TestRecordResponseAutoSelects(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	r, err := db.RecordResponse("patient-1", "mood_score", "7", "2024-03-07")
	if err != nil {
		t.Fatalf("RecordResponse failed: %v", err)
	}
	if r.Answer != "7" {
		t.Errorf("answer = %q, want 7", r.Answer)
	}

	items, err := db.SelectedActiveItems("patient-1")
	if err != nil {
		t.Fatalf("SelectedActiveItems failed: %v", err)
	}
	if len(items) != 1 || items[0].Code != "mental_health" {
		t.Errorf("expected mental_health selected via logging, got %v", items)
	}
}

func TestQuestionResponsesOrderedByDate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	dates := []string{"2024-03-05", "2024-03-01", "2024-03-03"}
	for i, date := range dates {
		if _, err := db.RecordResponse("patient-1", "rescue_med_count", strconv.Itoa(i+1), date); err != nil {
			t.Fatalf("RecordResponse failed: %v", err)
		}
	}

	rows, err := db.QuestionResponses("patient-1", "rescue_med_count")
	if err != nil {
		t.Fatalf("QuestionResponses failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"2024-03-01", "2024-03-03", "2024-03-05"}
	for i, row := range rows {
		if row.Date != want[i] {
			t.Errorf("row %d: date = %s, want %s", i, row.Date, want[i])
		}
	}
}

func TestQuestionResponsesScopedToPatient(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.RecordResponse("patient-1", "rescue_med_count", "2", "2024-03-07"); err != nil {
		t.Fatalf("RecordResponse failed: %v", err)
	}
	if _, err := db.RecordResponse("patient-2", "rescue_med_count", "9", "2024-03-07"); err != nil {
		t.Fatalf("RecordResponse failed: %v", err)
	}

	rows, err := db.QuestionResponses("patient-1", "rescue_med_count")
	if err != nil {
		t.Fatalf("QuestionResponses failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Answer != "2" {
		t.Errorf("expected only patient-1's answer, got %v", rows)
	}
}

func TestSelectedActiveItemsExcludesInactive(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.SelectItem("patient-1", "sleep", "2024-03-07"); err != nil {
		t.Fatalf("SelectItem failed: %v", err)
	}
	if err := db.SetItemStatus("sleep", models.ItemInactive); err != nil {
		t.Fatalf("SetItemStatus failed: %v", err)
	}

	items, err := db.SelectedActiveItems("patient-1")
	if err != nil {
		t.Fatalf("SelectedActiveItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("inactive item must not appear, got %v", items)
	}
}

func TestInsightQuestionsExcludesText(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	questions, err := db.InsightQuestions()
	if err != nil {
		t.Fatalf("InsightQuestions failed: %v", err)
	}
	for _, q := range questions {
		if q.Type != models.QuestionNumeric && q.Type != models.QuestionBoolean {
			t.Errorf("question %s has ineligible type %s", q.Code, q.Type)
		}
		if q.ItemCode == "" {
			t.Errorf("question %s missing item code", q.Code)
		}
	}
}

func TestListResponses(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.RecordResponse("patient-1", "mood_score", "7", "2024-03-06"); err != nil {
		t.Fatalf("RecordResponse failed: %v", err)
	}
	if _, err := db.RecordResponse("patient-1", "water_glasses", "8", "2024-03-07"); err != nil {
		t.Fatalf("RecordResponse failed: %v", err)
	}

	responses, err := db.ListResponses("patient-1", 10)
	if err != nil {
		t.Fatalf("ListResponses failed: %v", err)
	}
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	// Newest entry date first
	if responses[0].QuestionCode != "water_glasses" {
		t.Errorf("first = %s, want water_glasses", responses[0].QuestionCode)
	}
	if responses[1].ItemCode != "mental_health" {
		t.Errorf("second item = %s, want mental_health", responses[1].ItemCode)
	}
}

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "caremap-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "caremap.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}
