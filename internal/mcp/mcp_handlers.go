package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/rangemerge/core"
	"github.com/mark3labs/mcp-go/mcp"
)

func handleMergeTimeRanges(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	ranges, ok := args["ranges"]
	if !ok {
		return mcp.NewToolResultError("ranges is required"), nil
	}

	var result any
	if threshold, ok := args["threshold"]; ok {
		result = core.MergeWithReport(ranges, threshold)
	} else {
		result = core.MergeWithReport(ranges)
	}
	return jsonResult(result)
}

func handleNormalizeRanges(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ranges, ok := request.GetArguments()["ranges"]
	if !ok {
		return mcp.NewToolResultError("ranges is required"), nil
	}

	normalized := core.NormalizeRanges(core.ResolveInput(ranges))
	return jsonResult(normalized)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
