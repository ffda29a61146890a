// ABOUTME: Tests for date key normalization and weekday labels.
// ABOUTME: Verifies idempotence on canonical input and MM-DD-YYYY reordering.
package insights

import (
	"testing"
)

func TestNormalizeDateKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"display format", "03-07-2024", "2024-03-07"},
		{"display format single digits", "3-7-2024", "3-7-2024"},
		{"display format short day", "03-7-2024", "2024-03-07"},
		{"already canonical", "2024-03-07", "2024-03-07"},
		{"no dashes", "20240307", "20240307"},
		{"too few segments", "03-2024", "03-2024"},
		{"too many segments", "03-07-2024-extra", "03-07-2024-extra"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDateKey(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeDateKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDateKeyIdempotent(t *testing.T) {
	once := NormalizeDateKey("12-25-2023")
	twice := NormalizeDateKey(once)
	if once != twice {
		t.Errorf("not idempotent: first %q, second %q", once, twice)
	}
}

func TestWeekdayLabel(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-03-04", "Mon"},
		{"2024-03-07", "Thu"},
		{"2024-03-10", "Sun"},
	}

	for _, tt := range tests {
		got, err := WeekdayLabel(tt.date)
		if err != nil {
			t.Fatalf("WeekdayLabel(%q) failed: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("WeekdayLabel(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestWeekdayLabelInvalidDate(t *testing.T) {
	if _, err := WeekdayLabel("not-a-date"); err == nil {
		t.Error("expected error for invalid date")
	}
}
