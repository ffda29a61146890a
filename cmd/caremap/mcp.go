// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/caremap/caremap/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your tracking data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "caremap": {
        "command": "caremap",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_response        Log an answer to a tracked question
  select_item         Opt a patient into a track item for a day
  list_items          List track items with selection state
  get_rescue_chart    Weekly rescue medication chart points
  get_insight_topics  Insights the patient is eligible for
  get_date_insights   Date-based insights (all, or one by key)

AVAILABLE RESOURCES:

  caremap://catalog            The static insight catalog
  caremap://responses/recent   Recent logged responses`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, engine, patientID())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
