package storage

// ExportSchema is the SQL schema of a relationships export file.
const ExportSchema = `
CREATE TABLE IF NOT EXISTS relationships (
    seq             INTEGER PRIMARY KEY AUTOINCREMENT,
    id              TEXT NOT NULL UNIQUE,
    entity_a        TEXT NOT NULL,
    entity_a_type   TEXT NOT NULL DEFAULT '',
    entity_b        TEXT NOT NULL,
    entity_b_type   TEXT NOT NULL DEFAULT '',
    name            TEXT NOT NULL,
    reverse_name    TEXT NOT NULL DEFAULT '',
    type            TEXT NOT NULL DEFAULT '',
    revoked         INTEGER NOT NULL DEFAULT 0
                    CHECK(revoked IN (0, 1)),
    sources         TEXT NOT NULL DEFAULT '[]',
    custom_fields   TEXT NOT NULL DEFAULT '{}',
    loaded_at       TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_relationships_a ON relationships(entity_a, revoked);
CREATE INDEX IF NOT EXISTS idx_relationships_b ON relationships(entity_b, revoked);
CREATE INDEX IF NOT EXISTS idx_relationships_name ON relationships(name);
CREATE INDEX IF NOT EXISTS idx_relationships_reverse ON relationships(reverse_name);
`

// dsnPragmas configures each connection the way the export is read: WAL so
// a loader and readers can share the file.
const dsnPragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
