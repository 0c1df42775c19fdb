// Package mcp provides a Model Context Protocol server for tweetnotes.
// It exposes read-only archive operations as MCP tools so an agent can
// inspect a tweet archive and preview monthly notes without writing files.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

// NewServer creates an MCP server with all tweetnotes tools registered.
func NewServer(version string, log logrus.FieldLogger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "tweetnotes",
		Version: version,
	}, nil)
	registerTools(server, log)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all tweetnotes tools to the server.
func registerTools(server *mcp.Server, log logrus.FieldLogger) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_months",
		Description: "List the months in a tweet archive with tweet, retweet and reply counts and the note file each month would be written to. Optional start/end (YYYY-MM) limit the range.",
		Annotations: readOnlyAnnotations(),
	}, handleListMonths(log))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_month",
		Description: "Render the monthly markdown note for one month (YYYY-MM) of a tweet archive and return it without writing any file.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderMonth(log))
}
