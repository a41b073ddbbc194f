package query

import (
	"fmt"

	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/indicator"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/models"
)

// DefaultLimit is the page size used when no limit is given.
const DefaultLimit = 20

// Query clauses selecting revoked or active relationships.
const (
	RevokedQuery    = "revoked:T"
	NotRevokedQuery = "revoked:F"
)

// Args are the raw invocation arguments. Each field may hold a string, a
// bool, a number or a list, as the platform passes them.
type Args struct {
	Entities      any
	EntitiesTypes any
	Relationships any
	Limit         any
	Revoked       any
	Verbose       any
}

// BuildFilter turns invocation arguments into a searchRelationships filter.
func BuildFilter(args Args) (models.Filter, error) {
	limit, err := ArgToInt(args.Limit, DefaultLimit)
	if err != nil {
		return models.Filter{}, fmt.Errorf("limit: %w", err)
	}

	revoked, err := boolOrDefault(args.Revoked)
	if err != nil {
		return models.Filter{}, fmt.Errorf("revoked: %w", err)
	}

	types, err := indicator.Validate(ArgToList(args.EntitiesTypes))
	if err != nil {
		return models.Filter{}, fmt.Errorf("entities_types: %w", err)
	}

	return models.Filter{
		Entities:          ArgToList(args.Entities),
		EntityTypes:       types,
		RelationshipNames: ArgToList(args.Relationships),
		Size:              limit,
		Query:             RevokedClause(revoked),
	}, nil
}

// IsVerbose reports whether the extended context was requested.
func (a Args) IsVerbose() (bool, error) {
	v, err := boolOrDefault(a.Verbose)
	if err != nil {
		return false, fmt.Errorf("verbose: %w", err)
	}
	return v, nil
}

// RevokedClause returns the query clause for the revoked flag.
func RevokedClause(revoked bool) string {
	if revoked {
		return RevokedQuery
	}
	return NotRevokedQuery
}

func boolOrDefault(v any) (bool, error) {
	if v == nil {
		return false, nil
	}
	if s, ok := v.(string); ok && s == "" {
		return false, nil
	}
	return ArgToBoolean(v)
}
