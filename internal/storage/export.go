// ABOUTME: Export functionality for patient tracking data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for one patient's tracking data.
type ExportData struct {
	Version    string         `json:"version" yaml:"version"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Tool       string         `json:"tool" yaml:"tool"`
	PatientID  string         `json:"patient_id" yaml:"patient_id"`
	Items      []exportItem   `json:"items" yaml:"items"`
	Responses  []*ResponseRow `json:"responses" yaml:"responses"`
}

type exportItem struct {
	Code   string `json:"code" yaml:"code"`
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
}

// GetPatientData retrieves one patient's selected items and responses for export.
func (d *DB) GetPatientData(patientID string) (*ExportData, error) {
	items, err := d.SelectedActiveItems(patientID)
	if err != nil {
		return nil, fmt.Errorf("selected items: %w", err)
	}

	responses, err := d.ListResponses(patientID, 0)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}

	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "caremap",
		PatientID:  patientID,
		Responses:  responses,
	}
	for _, item := range items {
		data.Items = append(data.Items, exportItem{
			Code:   item.Code,
			Name:   item.Name,
			Status: string(item.Status),
		})
	}
	return data, nil
}

// ExportJSON exports a patient's data as JSON.
func (d *DB) ExportJSON(patientID string) ([]byte, error) {
	data, err := d.GetPatientData(patientID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports a patient's data as YAML, responses grouped by question.
func (d *DB) ExportYAML(patientID string) ([]byte, error) {
	data, err := d.GetPatientData(patientID)
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                    `yaml:"version"`
		ExportedAt string                    `yaml:"exported_at"`
		Tool       string                    `yaml:"tool"`
		PatientID  string                    `yaml:"patient_id"`
		Items      []exportItem              `yaml:"items"`
		Responses  map[string][]yamlResponse `yaml:"responses"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		PatientID:  data.PatientID,
		Items:      data.Items,
		Responses:  make(map[string][]yamlResponse),
	}

	for _, r := range data.Responses {
		yamlData.Responses[r.QuestionCode] = append(yamlData.Responses[r.QuestionCode], yamlResponse{
			Date:   r.Date,
			Answer: r.Answer,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlResponse struct {
	Date   string `yaml:"date"`
	Answer string `yaml:"answer"`
}

// ExportMarkdown exports a patient's data as Markdown tables.
func (d *DB) ExportMarkdown(patientID string, since string) (string, error) {
	data, err := d.GetPatientData(patientID)
	if err != nil {
		return "", err
	}

	responses := data.Responses
	if since != "" {
		var filtered []*ResponseRow
		for _, r := range responses {
			if r.Date >= since {
				filtered = append(filtered, r)
			}
		}
		responses = filtered
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# CareMap Export\n\nPatient: %s\nExported: %s\n\n",
		data.PatientID, data.ExportedAt.Format("2006-01-02 15:04")))

	sb.WriteString("## Tracked Items\n\n")
	if len(data.Items) == 0 {
		sb.WriteString("No items selected.\n\n")
	} else {
		sb.WriteString("| Code | Name | Status |\n|------|------|--------|\n")
		for _, item := range data.Items {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", item.Code, item.Name, item.Status))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Responses\n\n")
	if len(responses) == 0 {
		sb.WriteString("No responses logged.\n")
	} else {
		sb.WriteString("| Date | Item | Question | Answer |\n|------|------|----------|--------|\n")
		for _, r := range responses {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				r.Date, r.ItemCode, r.QuestionCode, r.Answer))
		}
	}

	return sb.String(), nil
}
