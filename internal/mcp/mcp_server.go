// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/logbook/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Logbook MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Logbook Summary Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: summarize_log ---
	s.AddTool(mcp.NewTool("summarize_log",
		mcp.WithDescription("Summarize a discipline log export into incident metrics, district-wide or for one building."),
		mcp.WithString("input_path", mcp.Description("Path to the discipline log CSV export."), mcp.Required()),
		mcp.WithString("building", mcp.Description("Restrict the summary to one building (defaults to district-wide).")),
		mcp.WithNumber("top_students", mcp.Description("Number of students in the top-students ranking.")),
		mcp.WithNumber("top_authors", mcp.Description("Number of staff members in the top-authors ranking.")),
	), h.handleSummarizeLog)

	// --- 2. Tool: list_buildings ---
	s.AddTool(mcp.NewTool("list_buildings",
		mcp.WithDescription("List the buildings present in a discipline log export with their record counts."),
		mcp.WithString("input_path", mcp.Description("Path to the discipline log CSV export."), mcp.Required()),
	), h.handleListBuildings)

	// --- 3. Tool: check_quality ---
	s.AddTool(mcp.NewTool("check_quality",
		mcp.WithDescription("Report data quality problems in a discipline log export (unparseable times and dates, missing dates)."),
		mcp.WithString("input_path", mcp.Description("Path to the discipline log CSV export."), mcp.Required()),
	), h.handleCheckQuality)

	return s
}

// StartMCPServer starts the Logbook MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
