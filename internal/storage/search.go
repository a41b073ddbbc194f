package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/models"
)

// SearchRelationships returns the relationships matching filter, in the
// order they were loaded. An entity matches either side of a relationship,
// a type matches either side's type and a name matches the forward or the
// reverse name.
func (s *ExportStore) SearchRelationships(ctx context.Context, filter models.Filter) ([]models.Relationship, error) {
	var (
		where []string
		args  []any
	)

	if len(filter.Entities) > 0 {
		in, inArgs := placeholders(filter.Entities)
		where = append(where, "(entity_a IN "+in+" OR entity_b IN "+in+")")
		args = append(args, inArgs...)
		args = append(args, inArgs...)
	}
	if len(filter.EntityTypes) > 0 {
		in, inArgs := placeholders(filter.EntityTypes)
		where = append(where, "(entity_a_type IN "+in+" OR entity_b_type IN "+in+")")
		args = append(args, inArgs...)
		args = append(args, inArgs...)
	}
	if len(filter.RelationshipNames) > 0 {
		in, inArgs := placeholders(filter.RelationshipNames)
		where = append(where, "(name IN "+in+" OR reverse_name IN "+in+")")
		args = append(args, inArgs...)
		args = append(args, inArgs...)
	}

	switch filter.Query {
	case "":
	case "revoked:T":
		where = append(where, "revoked = 1")
	case "revoked:F":
		where = append(where, "revoked = 0")
	default:
		return nil, fmt.Errorf("unsupported query %q", filter.Query)
	}

	q := `SELECT id, entity_a, entity_a_type, entity_b, entity_b_type, name, reverse_name, type, sources, custom_fields
	      FROM relationships`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY seq"
	if filter.Size > 0 {
		q += " LIMIT ?"
		args = append(args, filter.Size)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search relationships: %w", err)
	}
	defer rows.Close()

	var rels []models.Relationship
	for rows.Next() {
		var (
			r              models.Relationship
			sources, field string
		)
		if err := rows.Scan(&r.ID, &r.EntityA, &r.EntityAType, &r.EntityB, &r.EntityBType,
			&r.Name, &r.ReverseName, &r.Type, &sources, &field); err != nil {
			return nil, fmt.Errorf("scan relationship: %w", err)
		}
		if err := json.Unmarshal([]byte(sources), &r.Sources); err != nil {
			return nil, fmt.Errorf("decode sources of %q: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(field), &r.CustomFields); err != nil {
			return nil, fmt.Errorf("decode custom fields of %q: %w", r.ID, err)
		}
		if len(r.Sources) == 0 {
			r.Sources = nil
		}
		if len(r.CustomFields) == 0 {
			r.CustomFields = nil
		}
		rels = append(rels, r)
	}
	return rels, rows.Err()
}

func placeholders(values []string) (string, []any) {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return "(" + strings.TrimSuffix(strings.Repeat("?,", len(values)), ",") + ")", args
}
