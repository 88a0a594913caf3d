package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Statements are idempotent and re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is not idempotent in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_progress (
		id                TEXT PRIMARY KEY DEFAULT 'default',
		max_pullups       INTEGER NOT NULL CHECK(max_pullups >= 0),
		max_squats        INTEGER NOT NULL CHECK(max_squats >= 0),
		max_abs           INTEGER NOT NULL CHECK(max_abs >= 0),
		max_pushups       INTEGER NOT NULL CHECK(max_pushups >= 0),
		total_xp          INTEGER NOT NULL DEFAULT 0,
		level             INTEGER NOT NULL DEFAULT 1 CHECK(level >= 1),
		streak_days       INTEGER NOT NULL DEFAULT 0,
		last_workout_date TEXT,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS completed_workouts (
		id           TEXT PRIMARY KEY,
		seq          INTEGER NOT NULL UNIQUE CHECK(seq >= 0),
		workout_id   TEXT NOT NULL,
		date         TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		xp_earned    INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completed_workouts_date ON completed_workouts(date)`,

	`CREATE TABLE IF NOT EXISTS completed_sets (
		completed_workout_id TEXT NOT NULL REFERENCES completed_workouts(id) ON DELETE CASCADE,
		position             INTEGER NOT NULL,
		exercise             TEXT NOT NULL,
		set_index            INTEGER NOT NULL,
		reps                 INTEGER NOT NULL,
		completed_at         TEXT NOT NULL,
		PRIMARY KEY (completed_workout_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS unlocked_achievements (
		achievement_id TEXT PRIMARY KEY,
		position       INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS training_profile (
		id              TEXT PRIMARY KEY DEFAULT 'default',
		plan_start_date TEXT NOT NULL,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
}
