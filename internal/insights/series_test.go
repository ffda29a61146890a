// ABOUTME: Tests for the weekly series builder and chart projection.
// ABOUTME: Verifies dense 7-day windows, last-write-wins, and error taxonomy.
package insights

import (
	"errors"
	"testing"

	"github.com/caremap/caremap/internal/models"
)

func TestRescueMedicationWeekDenseWindow(t *testing.T) {
	store := newFakeStore()
	e := New(store, testCatalog)

	week, err := e.RescueMedicationWeek("patient-1", "2024-03-07")
	if err != nil {
		t.Fatalf("RescueMedicationWeek failed: %v", err)
	}

	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}

	wantDates := []string{
		"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04",
		"2024-03-05", "2024-03-06", "2024-03-07",
	}
	for i, day := range week {
		if day.Date != wantDates[i] {
			t.Errorf("day %d: date = %s, want %s", i, day.Date, wantDates[i])
		}
		if day.Count != 0 {
			t.Errorf("day %d: count = %d, want 0", i, day.Count)
		}
	}
}

func TestRescueMedicationWeekLastWriteWins(t *testing.T) {
	store := newFakeStore()
	store.responses[RescueQuestionCode] = []models.DatedAnswer{
		{Date: "03-01-2024", Answer: "2"},
		{Date: "03-01-2024", Answer: "5"},
	}
	e := New(store, testCatalog)

	week, err := e.RescueMedicationWeek("patient-1", "2024-03-07")
	if err != nil {
		t.Fatalf("RescueMedicationWeek failed: %v", err)
	}

	for _, day := range week {
		want := 0
		if day.Date == "2024-03-01" {
			want = 5
		}
		if day.Count != want {
			t.Errorf("%s: count = %d, want %d", day.Date, day.Count, want)
		}
	}
}

func TestRescueMedicationWeekWindowCrossesMonth(t *testing.T) {
	store := newFakeStore()
	e := New(store, testCatalog)

	week, err := e.RescueMedicationWeek("patient-1", "2024-03-02")
	if err != nil {
		t.Fatalf("RescueMedicationWeek failed: %v", err)
	}

	if week[0].Date != "2024-02-25" {
		t.Errorf("first day = %s, want 2024-02-25", week[0].Date)
	}
	if week[6].Date != "2024-03-02" {
		t.Errorf("last day = %s, want 2024-03-02", week[6].Date)
	}
}

func TestRescueMedicationWeekMixedDateFormats(t *testing.T) {
	store := newFakeStore()
	store.responses[RescueQuestionCode] = []models.DatedAnswer{
		{Date: "03-04-2024", Answer: `"3"`},
		{Date: "2024-03-06", Answer: "1"},
		{Date: "03-05-2024", Answer: "garbage"},
	}
	e := New(store, testCatalog)

	week, err := e.RescueMedicationWeek("patient-1", "2024-03-07")
	if err != nil {
		t.Fatalf("RescueMedicationWeek failed: %v", err)
	}

	byDate := map[string]int{}
	for _, day := range week {
		byDate[day.Date] = day.Count
	}
	if byDate["2024-03-04"] != 3 {
		t.Errorf("2024-03-04 count = %d, want 3", byDate["2024-03-04"])
	}
	if byDate["2024-03-05"] != 0 {
		t.Errorf("2024-03-05 count = %d, want 0 (malformed answer)", byDate["2024-03-05"])
	}
	if byDate["2024-03-06"] != 1 {
		t.Errorf("2024-03-06 count = %d, want 1", byDate["2024-03-06"])
	}
}

func TestRescueMedicationWeekMissingPatient(t *testing.T) {
	e := New(newFakeStore(), testCatalog)

	_, err := e.RescueMedicationWeek("", "2024-03-07")
	if !errors.Is(err, ErrMissingPatient) {
		t.Errorf("expected ErrMissingPatient, got %v", err)
	}
}

func TestRescueMedicationWeekInvalidEndDate(t *testing.T) {
	e := New(newFakeStore(), testCatalog)

	if _, err := e.RescueMedicationWeek("patient-1", "garbage"); err == nil {
		t.Error("expected error for invalid end date")
	}
}

func TestRescueMedicationWeekStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failQuestions[RescueQuestionCode] = errStore
	e := New(store, testCatalog)

	_, err := e.RescueMedicationWeek("patient-1", "2024-03-07")

	var dae *DataAccessError
	if !errors.As(err, &dae) {
		t.Fatalf("expected DataAccessError, got %v", err)
	}
	if !errors.Is(err, errStore) {
		t.Error("expected wrapped store error")
	}
}

func TestRescueMedicationChartDataLabels(t *testing.T) {
	store := newFakeStore()
	e := New(store, testCatalog)

	// 2024-03-10 is a Sunday
	points, err := e.RescueMedicationChartData("patient-1", "2024-03-10")
	if err != nil {
		t.Fatalf("RescueMedicationChartData failed: %v", err)
	}

	wantLabels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	for i, p := range points {
		if p.Label != wantLabels[i] {
			t.Errorf("point %d: label = %s, want %s", i, p.Label, wantLabels[i])
		}
		if p.Value != 0 {
			t.Errorf("point %d: value = %g, want 0", i, p.Value)
		}
	}
}
