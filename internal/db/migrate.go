package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS habits (
		id                    TEXT PRIMARY KEY,
		user_id               TEXT NOT NULL,
		name                  TEXT NOT NULL,
		description           TEXT NOT NULL DEFAULT '',
		category              TEXT NOT NULL
		                      CHECK(category IN ('mental','physical','hybrid')),
		duration_minutes      INTEGER NOT NULL DEFAULT 0,
		frequency             TEXT NOT NULL DEFAULT 'daily',
		priority              TEXT NOT NULL DEFAULT 'medium'
		                      CHECK(priority IN ('high','medium','low')),
		notifications_enabled INTEGER NOT NULL DEFAULT 0,
		notification_time     TEXT,
		completed_dates       TEXT NOT NULL DEFAULT '[]',
		ai_generated          INTEGER NOT NULL DEFAULT 0,
		created_at            TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_habits_user ON habits(user_id)`,

	`CREATE TABLE IF NOT EXISTS daily_routines (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		time_of_day      TEXT NOT NULL
		                 CHECK(time_of_day IN ('morning','afternoon','evening')),
		activities       TEXT NOT NULL DEFAULT '[]',
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_routines_user ON daily_routines(user_id)`,

	`CREATE TABLE IF NOT EXISTS user_progress (
		user_id         TEXT PRIMARY KEY,
		total_habits    INTEGER NOT NULL DEFAULT 0,
		completed_today INTEGER NOT NULL DEFAULT 0,
		streak          INTEGER NOT NULL DEFAULT 0,
		completion_rate INTEGER NOT NULL DEFAULT 0,
		last_updated    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS psychology_profiles (
		user_id    TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS behavior_analyses (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		payload         TEXT NOT NULL,
		timeframe_start TEXT NOT NULL,
		timeframe_end   TEXT NOT NULL,
		days_tracked    INTEGER NOT NULL DEFAULT 0,
		viewed          INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_analyses_user_created
		ON behavior_analyses(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		role       TEXT NOT NULL CHECK(role IN ('user','assistant')),
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_chat_user_created
		ON chat_messages(user_id, created_at)`,
}
