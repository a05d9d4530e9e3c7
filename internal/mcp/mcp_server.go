// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names exposed by the server.
const (
	MergeToolName     = "merge_time_ranges"
	NormalizeToolName = "normalize_ranges"
)

// RangesDescription documents the ranges argument shared by both tools.
const RangesDescription = `JSON string holding an array of [start, end] pairs, e.g. "[[1,3],[2,4]]".`

// NewMCPServer initializes and configures the rangemerge MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Range Merge Server",
		version,
		server.WithLogging(),
	)

	// --- 1. Tool: merge_time_ranges ---
	s.AddTool(mcp.NewTool(MergeToolName,
		mcp.WithDescription("Merge time ranges into a minimal sorted set of non-overlapping intervals. Gaps up to the threshold are bridged."),
		mcp.WithString("ranges", mcp.Description(RangesDescription+" Malformed pairs are dropped."), mcp.Required()),
		mcp.WithNumber("threshold", mcp.Description("Largest gap to bridge. Missing, negative or non-numeric values mean 0.")),
	), handleMergeTimeRanges)

	// --- 2. Tool: normalize_ranges ---
	s.AddTool(mcp.NewTool(NormalizeToolName,
		mcp.WithDescription("Validate and sort time ranges without merging them. Reversed pairs are swapped and malformed pairs are dropped."),
		mcp.WithString("ranges", mcp.Description(RangesDescription), mcp.Required()),
	), handleNormalizeRanges)

	return s
}

// StartMCPServer starts the rangemerge MCP server on stdio.
func StartMCPServer(_ context.Context, version string) error {
	s := NewMCPServer(version)
	return server.ServeStdio(s)
}
