package tools

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/models"
)

// --- Helpers ---

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

// toolResults returns the readable table first and the context outputs,
// keyed by their prefix, as JSON second.
func toolResults(res models.CommandResults) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(res.ContextOutput(), "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: res.ReadableOutput},
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}
