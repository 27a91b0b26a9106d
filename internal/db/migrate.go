package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the whole
// list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		status       TEXT NOT NULL DEFAULT 'active'
		             CHECK(status IN ('active','complete')),
		action_count INTEGER NOT NULL DEFAULT 0 CHECK(action_count >= 0),
		state        TEXT NOT NULL DEFAULT '{}',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS cards (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		role       TEXT NOT NULL CHECK(role IN ('outline','settings')),
		title      TEXT NOT NULL,
		entry      TEXT NOT NULL DEFAULT '',
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE(session_id, role)
	)`,

	`CREATE TABLE IF NOT EXISTS turns (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL CHECK(seq >= 0),
		kind       TEXT NOT NULL CHECK(kind IN ('opening','input','continue','output')),
		text       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		UNIQUE(session_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_cards_session ON cards(session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at)`,

	// Added columns. Migrate skips them once they exist.
	`ALTER TABLE sessions ADD COLUMN exported_at TEXT`,
}
