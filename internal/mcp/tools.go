// ABOUTME: MCP tool implementations for patient tracking and insights.
// ABOUTME: Exposes logging, selection, and every engine query as a tool.
package mcp

import (
	"context"
	"fmt"

	"github.com/caremap/caremap/internal/insights"
	"github.com/caremap/caremap/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_response
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_response",
		Description: "Log an answer to a tracked question for a patient and date",
	}, s.handleLogResponse)

	// select_item
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "select_item",
		Description: "Opt a patient into a track item for a day",
	}, s.handleSelectItem)

	// list_items
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_items",
		Description: "List track items, with the patient's selection state",
	}, s.handleListItems)

	// get_rescue_chart
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_rescue_chart",
		Description: "Weekly rescue medication chart points ending at a date",
	}, s.handleRescueChart)

	// get_insight_topics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_insight_topics",
		Description: "List the insights a patient is eligible to see",
	}, s.handleInsightTopics)

	// get_date_insights
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_date_insights",
		Description: "Date-based insight series for a date; all insights, or one by key",
	}, s.handleDateInsights)
}

// Tool input/output types

type logResponseInput struct {
	PatientID    string `json:"patient_id,omitempty" jsonschema:"Patient identifier (defaults to the configured patient)"`
	QuestionCode string `json:"question_code" jsonschema:"Code of the question being answered"`
	Answer       string `json:"answer" jsonschema:"Raw answer value"`
	Date         string `json:"date,omitempty" jsonschema:"Entry date (YYYY-MM-DD), defaults to today"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type selectItemInput struct {
	PatientID string `json:"patient_id,omitempty" jsonschema:"Patient identifier (defaults to the configured patient)"`
	ItemCode  string `json:"item_code" jsonschema:"Code of the track item (medications, exercise, sleep, nutrition, mental_health, symptoms)"`
	Date      string `json:"date,omitempty" jsonschema:"Selection date (YYYY-MM-DD), defaults to today"`
}

type listItemsInput struct {
	PatientID string `json:"patient_id,omitempty" jsonschema:"Patient identifier for selection state"`
}

type itemsOutput struct {
	Items []itemInfo `json:"items"`
}

type itemInfo struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Selected bool   `json:"selected"`
}

type rescueChartInput struct {
	PatientID string `json:"patient_id,omitempty" jsonschema:"Patient identifier (defaults to the configured patient)"`
	EndDate   string `json:"end_date" jsonschema:"Last day of the 7-day window (YYYY-MM-DD)"`
}

type rescueChartOutput struct {
	Points []models.ChartPoint `json:"points"`
}

type insightTopicsInput struct {
	PatientID string `json:"patient_id,omitempty" jsonschema:"Patient identifier (defaults to the configured patient)"`
}

type insightTopicsOutput struct {
	Topics []models.InsightTopic `json:"topics"`
}

type dateInsightsInput struct {
	PatientID  string `json:"patient_id,omitempty" jsonschema:"Patient identifier (defaults to the configured patient)"`
	Date       string `json:"date" jsonschema:"Target date (YYYY-MM-DD)"`
	InsightKey string `json:"insight_key,omitempty" jsonschema:"Fetch a single insight by key; omit for all"`
}

type dateInsightsOutput struct {
	Insights []models.InsightResult `json:"insights"`
	Warning  string                 `json:"warning,omitempty"`
}

// Tool handlers

func (s *Server) handleLogResponse(ctx context.Context, req *mcp.CallToolRequest, input logResponseInput) (*mcp.CallToolResult, simpleOutput, error) {
	pid := s.patient(input.PatientID)
	if pid == "" {
		return nil, simpleOutput{}, insights.ErrMissingPatient
	}

	date := input.Date
	if date == "" {
		date = today()
	}

	r, err := s.repo.RecordResponse(pid, input.QuestionCode, input.Answer, date)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to record response: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s = %s for %s (ID: %s)", input.QuestionCode, input.Answer, date, r.ID.String()[:8]),
	}, nil
}

func (s *Server) handleSelectItem(ctx context.Context, req *mcp.CallToolRequest, input selectItemInput) (*mcp.CallToolResult, simpleOutput, error) {
	pid := s.patient(input.PatientID)
	if pid == "" {
		return nil, simpleOutput{}, insights.ErrMissingPatient
	}

	date := input.Date
	if date == "" {
		date = today()
	}

	entry, err := s.repo.SelectItem(pid, input.ItemCode, date)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to select item: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Selected %s for %s", input.ItemCode, entry.Date),
	}, nil
}

func (s *Server) handleListItems(ctx context.Context, req *mcp.CallToolRequest, input listItemsInput) (*mcp.CallToolResult, itemsOutput, error) {
	items, err := s.repo.ListItems()
	if err != nil {
		return nil, itemsOutput{}, fmt.Errorf("failed to list items: %w", err)
	}

	selected := map[string]bool{}
	if pid := s.patient(input.PatientID); pid != "" {
		mine, err := s.repo.SelectedActiveItems(pid)
		if err != nil {
			return nil, itemsOutput{}, fmt.Errorf("failed to load selections: %w", err)
		}
		for _, item := range mine {
			selected[item.Code] = true
		}
	}

	out := itemsOutput{}
	for _, item := range items {
		out.Items = append(out.Items, itemInfo{
			Code:     item.Code,
			Name:     item.Name,
			Status:   string(item.Status),
			Selected: selected[item.Code],
		})
	}
	return nil, out, nil
}

func (s *Server) handleRescueChart(ctx context.Context, req *mcp.CallToolRequest, input rescueChartInput) (*mcp.CallToolResult, rescueChartOutput, error) {
	points, err := s.engine.RescueMedicationChartData(s.patient(input.PatientID), input.EndDate)
	if err != nil {
		return nil, rescueChartOutput{}, fmt.Errorf("failed to load chart data: %w", err)
	}
	return nil, rescueChartOutput{Points: points}, nil
}

func (s *Server) handleInsightTopics(ctx context.Context, req *mcp.CallToolRequest, input insightTopicsInput) (*mcp.CallToolResult, insightTopicsOutput, error) {
	topics, err := s.engine.InsightTopics(s.patient(input.PatientID))
	if err != nil {
		return nil, insightTopicsOutput{}, fmt.Errorf("failed to load insight topics: %w", err)
	}
	return nil, insightTopicsOutput{Topics: topics}, nil
}

func (s *Server) handleDateInsights(ctx context.Context, req *mcp.CallToolRequest, input dateInsightsInput) (*mcp.CallToolResult, dateInsightsOutput, error) {
	pid := s.patient(input.PatientID)

	if input.InsightKey != "" {
		result, err := s.engine.DateBasedInsight(insights.DateInsightRequest{
			PatientID:    pid,
			SelectedDate: input.Date,
			InsightKey:   input.InsightKey,
		})
		if err != nil {
			return nil, dateInsightsOutput{}, fmt.Errorf("failed to load insight: %w", err)
		}
		return nil, dateInsightsOutput{Insights: []models.InsightResult{*result}}, nil
	}

	results, err := s.engine.AllDateBasedInsights(pid, input.Date)
	if err != nil && results == nil {
		return nil, dateInsightsOutput{}, fmt.Errorf("failed to load insights: %w", err)
	}

	out := dateInsightsOutput{Insights: results}
	if err != nil {
		// Partial results: surface per-key failures without dropping the rest.
		out.Warning = err.Error()
	}
	return nil, out, nil
}
