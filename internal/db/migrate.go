package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are executed in order on every open. Statements must be
// idempotent (CREATE ... IF NOT EXISTS) or produce a tolerated error.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                      TEXT PRIMARY KEY,
		email                   TEXT NOT NULL DEFAULT '',
		display_name            TEXT NOT NULL DEFAULT '',
		language                TEXT NOT NULL DEFAULT 'en',
		alloc_work_study        REAL NOT NULL DEFAULT 6,
		alloc_social_friends    REAL NOT NULL DEFAULT 1.5,
		alloc_social_partner    REAL NOT NULL DEFAULT 2,
		alloc_entertainment     REAL NOT NULL DEFAULT 8,
		alloc_sleep             REAL NOT NULL DEFAULT 8,
		tasks_created           INTEGER NOT NULL DEFAULT 0,
		tasks_completed         INTEGER NOT NULL DEFAULT 0,
		total_time_tracked_sec  INTEGER NOT NULL DEFAULT 0,
		created_at              TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                   TEXT PRIMARY KEY,
		user_id              TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		category             TEXT NOT NULL
		                     CHECK(category IN ('work','study','entertainment','socialFriends','socialPartner')),
		timeframe            TEXT NOT NULL
		                     CHECK(timeframe IN ('today','thisWeek','thisMonth')),
		difficulty           TEXT NOT NULL
		                     CHECK(difficulty IN ('regular','challenging','difficult')),
		name                 TEXT NOT NULL,
		description          TEXT NOT NULL DEFAULT '',
		estimated_min        INTEGER NOT NULL,
		status               TEXT NOT NULL DEFAULT 'pending'
		                     CHECK(status IN ('pending','in-progress','completed')),
		is_ai_generated      INTEGER NOT NULL DEFAULT 0,
		active_session_start TEXT,
		total_time_spent_sec INTEGER NOT NULL DEFAULT 0,
		created_at           TEXT NOT NULL,
		completed_at         TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status)`,

	`CREATE TABLE IF NOT EXISTS task_sessions (
		id           TEXT PRIMARY KEY,
		task_id      TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		started_at   TEXT NOT NULL,
		ended_at     TEXT NOT NULL,
		duration_sec INTEGER NOT NULL CHECK(duration_sec >= 0)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_sessions_task ON task_sessions(task_id)`,

	`CREATE TABLE IF NOT EXISTS task_emotions (
		id          TEXT PRIMARY KEY,
		task_id     TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		phase       TEXT NOT NULL CHECK(phase IN ('before','during','after')),
		level       REAL NOT NULL,
		note        TEXT NOT NULL DEFAULT '',
		recorded_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_emotions_task ON task_emotions(task_id)`,

	// before/after are write-once slots; the store enforces it too.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_task_emotions_once
		ON task_emotions(task_id, phase) WHERE phase != 'during'`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration list re-runs on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
