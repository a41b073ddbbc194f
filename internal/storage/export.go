package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/models"
)

// ExportStore answers relationship searches from a SQLite export of the
// platform's relationships.
type ExportStore struct {
	db   *sql.DB
	path string
}

// OpenExport opens (or creates) an export file and applies the schema.
func OpenExport(path string) (*ExportStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create export dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("open export db: %w", err)
	}
	if _, err := db.Exec(ExportSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate export db: %w", err)
	}
	return &ExportStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *ExportStore) Close() error {
	return s.db.Close()
}

// Path returns the export file location.
func (s *ExportStore) Path() string {
	return s.path
}

// Load writes relationship records into the export in one transaction.
// Records without an id get a generated one; an existing id is overwritten
// in place so it keeps its position.
func (s *ExportStore) Load(ctx context.Context, rels []models.Relationship) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO relationships
		    (id, entity_a, entity_a_type, entity_b, entity_b_type, name, reverse_name, type, revoked, sources, custom_fields)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		    entity_a = excluded.entity_a,
		    entity_a_type = excluded.entity_a_type,
		    entity_b = excluded.entity_b,
		    entity_b_type = excluded.entity_b_type,
		    name = excluded.name,
		    reverse_name = excluded.reverse_name,
		    type = excluded.type,
		    revoked = excluded.revoked,
		    sources = excluded.sources,
		    custom_fields = excluded.custom_fields,
		    loaded_at = datetime('now')`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rels {
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		sources, err := json.Marshal(nonNilSources(r.Sources))
		if err != nil {
			return 0, fmt.Errorf("encode sources of %q: %w", id, err)
		}
		fields, err := json.Marshal(nonNilFields(r.CustomFields))
		if err != nil {
			return 0, fmt.Errorf("encode custom fields of %q: %w", id, err)
		}

		if _, err := stmt.ExecContext(ctx,
			id, r.EntityA, r.EntityAType, r.EntityB, r.EntityBType,
			r.Name, r.ReverseName, r.Type, isRevoked(r.CustomFields),
			string(sources), string(fields),
		); err != nil {
			return 0, fmt.Errorf("insert relationship %q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(rels), nil
}

// isRevoked reads the revoked custom field, which exports carry either as a
// bool or as a string.
func isRevoked(fields map[string]any) bool {
	switch v := fields["revoked"].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(v) {
		case "true", "t", "yes", "1":
			return true
		}
	}
	return false
}

func nonNilSources(s []models.Source) []models.Source {
	if s == nil {
		return []models.Source{}
	}
	return s
}

func nonNilFields(f map[string]any) map[string]any {
	if f == nil {
		return map[string]any{}
	}
	return f
}
