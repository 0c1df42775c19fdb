package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	tweetmcp "github.com/gorewood/tweetnotes/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run tweetnotes as a Model Context Protocol (MCP) server over stdio.

This exposes read-only archive operations as MCP tools so an agent can
inspect an archive and preview notes without writing files.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "tweetnotes": {
        "command": "tweetnotes",
        "args": ["serve"]
      }
    }
  }

Available tools: list_months, render_month`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			// stdout carries the protocol; logs stay on stderr.
			server := tweetmcp.NewServer(buildVersion(), newLogger(cmd, settings))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
