// ABOUTME: MCP server setup for patient tracking data.
// ABOUTME: Wraps MCP server with storage Repository and insights Engine.
package mcp

import (
	"context"

	"github.com/caremap/caremap/internal/insights"
	"github.com/caremap/caremap/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage and engine access.
type Server struct {
	mcpServer      *mcp.Server
	repo           storage.Repository
	engine         *insights.Engine
	defaultPatient string
}

// NewServer creates a new MCP server over the given storage and engine.
// defaultPatient is used when a tool call omits patient_id; it may be empty.
func NewServer(repo storage.Repository, engine *insights.Engine, defaultPatient string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "caremap",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer:      mcpServer,
		repo:           repo,
		engine:         engine,
		defaultPatient: defaultPatient,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// patient resolves a tool's patient id, falling back to the server default.
func (s *Server) patient(fromInput string) string {
	if fromInput != "" {
		return fromInput
	}
	return s.defaultPatient
}
