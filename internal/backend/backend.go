package backend

import (
	"context"
	"fmt"

	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/models"
)

// Searcher runs the searchRelationships command.
type Searcher interface {
	SearchRelationships(ctx context.Context, filter models.Filter) ([]models.Relationship, error)
}

// CommandError is a failure reported by the searchRelationships command.
type CommandError struct {
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("Error in searchRelationships command - %s", e.Message)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
