// ABOUTME: Integration tests for caremap CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	caremapBinary := filepath.Join(projectRoot, "caremap")

	buildCmd := exec.Command("go", "build", "-o", caremapBinary, "./cmd/caremap")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(caremapBinary)

	// Use temp database
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--db", dbPath, "--patient", "alice"}, args...)
		cmd := exec.Command(caremapBinary, fullArgs...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Test selecting a track item
	output, err := run("select", "exercise", "--date", "2024-03-04")
	if err != nil {
		t.Fatalf("Failed to select item: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Selected exercise") {
		t.Errorf("Expected 'Selected exercise' in output, got: %s", output)
	}

	// Test logging answers
	output, err = run("log", "rescue_med_count", "2", "--date", "2024-03-05")
	if err != nil {
		t.Fatalf("Failed to log answer: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged rescue_med_count = 2") {
		t.Errorf("Expected 'Logged rescue_med_count = 2' in output, got: %s", output)
	}

	output, err = run("log", "mood_score", "7", "--date", "2024-03-06")
	if err != nil {
		t.Fatalf("Failed to log mood: %v\n%s", err, output)
	}

	// Test listing items (selections marked)
	output, err = run("items")
	if err != nil {
		t.Fatalf("Failed to list items: %v\n%s", err, output)
	}
	if !strings.Contains(output, "medications") {
		t.Errorf("Expected 'medications' in items output, got: %s", output)
	}

	// Test listing responses
	output, err = run("responses")
	if err != nil {
		t.Fatalf("Failed to list responses: %v\n%s", err, output)
	}
	if !strings.Contains(output, "rescue_med_count") {
		t.Errorf("Expected 'rescue_med_count' in responses output, got: %s", output)
	}

	// Test the weekly chart
	output, err = run("chart", "--end-date", "2024-03-07")
	if err != nil {
		t.Fatalf("Failed to render chart: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Rescue Medication Usage") {
		t.Errorf("Expected chart header in output, got: %s", output)
	}

	// Test insight topics (gated by selection and logged answers)
	output, err = run("insights")
	if err != nil {
		t.Fatalf("Failed to list insight topics: %v\n%s", err, output)
	}
	if !strings.Contains(output, "rescue_medication_usage") {
		t.Errorf("Expected 'rescue_medication_usage' in topics output, got: %s", output)
	}

	// Test date-based insights (full catalog, empty states included)
	output, err = run("insights", "--date", "2024-03-07")
	if err != nil {
		t.Fatalf("Failed to fetch date insights: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Rescue Medication Usage") {
		t.Errorf("Expected 'Rescue Medication Usage' in insights output, got: %s", output)
	}
	if !strings.Contains(output, "No data available") {
		t.Errorf("Expected an empty-state insight in output, got: %s", output)
	}

	// Test export
	output, err = run("export", "json")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "\"tool\": \"caremap\"") {
		t.Errorf("Expected JSON export header in output, got: %s", output)
	}
}
