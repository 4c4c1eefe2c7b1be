// ABOUTME: CLI command for running the MCP server.
// ABOUTME: Exposes the journal to MCP-compatible AI assistants over stdio.
package main

import (
	"fmt"

	"github.com/harperreed/nosh/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server",
	Long: `Start the MCP server on stdio for use with Claude Desktop or other
MCP-compatible AI assistants.

Add to your Claude config:

  {
    "mcpServers": {
      "nosh": { "command": "nosh", "args": ["mcp"] }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
