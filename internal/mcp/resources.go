// ABOUTME: MCP resource implementations for tracking data.
// ABOUTME: Provides caremap://catalog and caremap://responses/recent resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// caremap://catalog - The static insight catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "caremap://catalog",
		Name:        "Insight Catalog",
		Description: "The ordered catalog of possible insights",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	// caremap://responses/recent - Recent logged responses
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "caremap://responses/recent",
		Name:        "Recent Responses",
		Description: "Last 20 logged responses for the configured patient",
		MIMEType:    "application/json",
	}, s.handleRecentResponsesResource)
}

// Resource handlers

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.engine.Catalog(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "caremap://catalog",
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

func (s *Server) handleRecentResponsesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if s.defaultPatient == "" {
		return nil, fmt.Errorf("no default patient configured")
	}

	responses, err := s.repo.ListResponses(s.defaultPatient, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	result := map[string]interface{}{
		"patient_id": s.defaultPatient,
		"responses":  responses,
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal responses: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "caremap://responses/recent",
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// today returns the current date in ISO form.
func today() string {
	return time.Now().Format("2006-01-02")
}
