package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS batches (
		id          TEXT PRIMARY KEY,
		source_file TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		row_count   INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS predictions (
		id             TEXT PRIMARY KEY,
		batch_id       TEXT NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
		row_index      INTEGER NOT NULL,
		priority       TEXT NOT NULL
		               CHECK(priority IN ('critical','high','medium','low')),
		story_points   INTEGER NOT NULL
		               CHECK(story_points IN (1,2,3,5,8,13)),
		estimate_hours INTEGER NOT NULL CHECK(estimate_hours >= 1),
		confidence     REAL NOT NULL CHECK(confidence >= 0.4 AND confidence <= 0.99),
		rationale      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_predictions_batch_row
		ON predictions(batch_id, row_index)`,
}

// Migrate runs all schema migrations. Statements are idempotent, so the
// full list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
