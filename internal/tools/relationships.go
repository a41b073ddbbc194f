package tools

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/backend"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/markdown"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/models"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/query"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/relcontext"
)

const (
	// AutomationName is how failures name this action to the user.
	AutomationName = "SearchIndicatorRelationships"
	// OutputsPrefix is the context key the results are written under.
	OutputsPrefix = "Relationships"
	// OutputsKeyField identifies a context entry.
	OutputsKeyField = "ID"
)

// tableHeaders are the columns shown in the readable output.
var tableHeaders = []string{"EntityA", "EntityAType", "EntityB", "EntityBType", "Relationship"}

// RelationshipTools holds references needed by the relationship tool handler.
type RelationshipTools struct {
	Searcher backend.Searcher
	Logger   *zap.SugaredLogger
}

// --- Input types ---

// SearchRelationshipsInput mirrors the automation's arguments. Values may be
// strings, booleans, numbers or lists.
type SearchRelationshipsInput struct {
	Entities      any `json:"entities,omitempty" jsonschema:"Comma-separated entity values to search relationships for"`
	EntitiesTypes any `json:"entities_types,omitempty" jsonschema:"Comma-separated indicator types of the entities (e.g., IP, Domain, Malware)"`
	Relationships any `json:"relationships,omitempty" jsonschema:"Comma-separated relationship names (e.g., uses, resolves-to)"`
	Limit         any `json:"limit,omitempty" jsonschema:"Maximum number of relationships to return (default 20)"`
	Revoked       any `json:"revoked,omitempty" jsonschema:"true to return revoked relationships instead of active ones (default false)"`
	Verbose       any `json:"verbose,omitempty" jsonschema:"true to include type, source and custom fields in the context (default false)"`
}

// Args converts the tool input to automation arguments.
func (in SearchRelationshipsInput) Args() query.Args {
	return query.Args{
		Entities:      in.Entities,
		EntitiesTypes: in.EntitiesTypes,
		Relationships: in.Relationships,
		Limit:         in.Limit,
		Revoked:       in.Revoked,
		Verbose:       in.Verbose,
	}
}

// --- Handlers ---

func (t *RelationshipTools) SearchRelationships(ctx context.Context, _ *mcp.CallToolRequest, input SearchRelationshipsInput) (*mcp.CallToolResult, any, error) {
	reqID := uuid.New().String()
	ctx = backend.WithRequestID(ctx, reqID)
	log := t.logger().With("request_id", reqID)

	log.Debugw("search relationships",
		"entities", input.Entities,
		"entities_types", input.EntitiesTypes,
		"relationships", input.Relationships,
	)

	res, err := Run(ctx, t.Searcher, input.Args())
	if err != nil {
		log.Errorw("automation failed", "automation", AutomationName, "error", err)
		return toolError("Failed to execute %s automation. Error: %v", AutomationName, err), nil, nil
	}
	log.Infow("search relationships done", "results", len(res.Outputs))

	return toolResults(res)
}

func (t *RelationshipTools) logger() *zap.SugaredLogger {
	if t.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return t.Logger
}

// Run executes one invocation: build the filter, search, project the
// results and render them.
func Run(ctx context.Context, s backend.Searcher, args query.Args) (models.CommandResults, error) {
	verbose, err := args.IsVerbose()
	if err != nil {
		return models.CommandResults{}, err
	}
	filter, err := query.BuildFilter(args)
	if err != nil {
		return models.CommandResults{}, err
	}

	rels, err := s.SearchRelationships(ctx, filter)
	if err != nil {
		return models.CommandResults{}, err
	}

	ctxList := relcontext.ToContext(rels, verbose)
	rows := make([]map[string]any, len(ctxList))
	for i, c := range ctxList {
		rows[i] = c.Row()
	}

	return models.CommandResults{
		ReadableOutput:  markdown.Table(OutputsPrefix, tableHeaders, rows, markdown.HumanizeHeader),
		OutputsPrefix:   OutputsPrefix,
		OutputsKeyField: OutputsKeyField,
		Outputs:         ctxList,
	}, nil
}
