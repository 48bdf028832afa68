package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are run in order on every open. Statements must be
// re-runnable; ALTER TABLE duplicates are tolerated below.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS trips (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		destination TEXT NOT NULL DEFAULT '',
		start_date TEXT,
		days INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS itinerary_items (
		id TEXT PRIMARY KEY,
		trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		day INTEGER NOT NULL DEFAULT 1,
		position INTEGER,
		start_time TEXT NOT NULL DEFAULT '',
		duration_min INTEGER NOT NULL DEFAULT 60,
		name TEXT NOT NULL,
		kind TEXT NOT NULL DEFAULT 'other',
		lat REAL NOT NULL DEFAULT 0,
		lng REAL NOT NULL DEFAULT 0,
		tags TEXT NOT NULL DEFAULT '',
		favorite INTEGER NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_items_trip_day_position
		ON itinerary_items(trip_id, day, position)`,

	`ALTER TABLE itinerary_items ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}

// Migrate runs all schema migrations.
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
	if err := migrateBackfillDays(db); err != nil {
		return fmt.Errorf("backfilling item days: %w", err)
	}
	return nil
}

// migrateBackfillDays floors pre-normalization rows to day 1 so every
// persisted item satisfies the day >= 1 invariant.
func migrateBackfillDays(db *sql.DB) error {
	_, err := db.Exec(`UPDATE itinerary_items SET day = 1 WHERE day < 1`)
	return err
}
