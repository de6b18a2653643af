package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/logbook/core"
	"github.com/huangsam/logbook/internal/contract"
	"github.com/huangsam/logbook/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// loadRecords loads the normalized incident records behind a tool request.
func (h *toolHandler) loadRecords(ctx context.Context, path string) ([]schema.IncidentRecord, error) {
	loader := contract.NewCSVLoader(path)
	return loader.Load(ctx)
}

// buildingSummary is the JSON shape returned by list_buildings.
type buildingSummary struct {
	Building string `json:"building"`
	Records  int    `json:"records"`
}

// logSummary is the JSON shape returned by summarize_log.
type logSummary struct {
	Label   string            `json:"label"`
	Records int               `json:"records"`
	Metrics schema.MetricsSet `json:"metrics"`
}

func (h *toolHandler) handleSummarizeLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath := request.GetString("input_path", "")
	if inputPath == "" {
		return mcp.NewToolResultError("input_path is required"), nil
	}

	cfg := h.baseCfg.Clone()
	if n := request.GetInt("top_students", 0); n > 0 {
		cfg.TopStudents = n
	}
	if n := request.GetInt("top_authors", 0); n > 0 {
		cfg.TopAuthors = n
	}

	records, err := h.loadRecords(ctx, inputPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	label := schema.DistrictLabel
	if building := request.GetString("building", ""); building != "" {
		order, partitions := core.GroupByBuilding(records)
		subset, ok := partitions[building]
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("building %q not found. Available: %s", building, strings.Join(order, ", "))), nil
		}
		label = building
		records = subset
	}

	summary := logSummary{
		Label:   label,
		Records: len(records),
		Metrics: core.CalculateSummaryMetrics(records, cfg.TopStudents, cfg.TopAuthors),
	}
	jsonData, _ := json.MarshalIndent(summary, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListBuildings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath := request.GetString("input_path", "")
	if inputPath == "" {
		return mcp.NewToolResultError("input_path is required"), nil
	}

	records, err := h.loadRecords(ctx, inputPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	order, partitions := core.GroupByBuilding(records)
	summaries := make([]buildingSummary, 0, len(order))
	for _, building := range order {
		summaries = append(summaries, buildingSummary{
			Building: building,
			Records:  len(partitions[building]),
		})
	}
	jsonData, _ := json.MarshalIndent(summaries, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCheckQuality(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath := request.GetString("input_path", "")
	if inputPath == "" {
		return mcp.NewToolResultError("input_path is required"), nil
	}

	records, err := h.loadRecords(ctx, inputPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	stats := core.AuditQuality(records)
	jsonData, _ := json.MarshalIndent(stats, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
