package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/backend"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/tools"
)

// ToolName is the name the relationship search is registered under.
const ToolName = "search_indicator_relationships"

// New creates a fully configured MCP server with the relationship tool registered.
func New(searcher backend.Searcher, logger *zap.SugaredLogger) *mcp.Server {
	rt := &tools.RelationshipTools{Searcher: searcher, Logger: logger}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "relationships-mcp",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name: ToolName,
		Description: "Search indicator relationships by entity values, entity types and relationship names. " +
			"Returns a markdown table and the Relationships context keyed by ID",
	}, rt.SearchRelationships)

	return srv
}
