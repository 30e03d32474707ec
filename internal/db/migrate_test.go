package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"users", "tasks", "task_sessions", "task_emotions"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_EnumChecksEnforced(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO users (id, created_at) VALUES ('u1', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO tasks
		(id, user_id, category, timeframe, difficulty, name, estimated_min, created_at)
		VALUES ('t1', 'u1', 'chores', 'today', 'regular', 'X', 30, '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "illegal category values must be rejected at the store")
}

func TestMigrate_EmotionWriteOnceIndex(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO users (id, created_at) VALUES ('u1', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO tasks
		(id, user_id, category, timeframe, difficulty, name, estimated_min, created_at)
		VALUES ('t1', 'u1', 'work', 'today', 'regular', 'X', 30, '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	insert := `INSERT INTO task_emotions (id, task_id, phase, level, recorded_at)
		VALUES (?, 't1', ?, 5, '2025-01-01T00:00:00Z')`

	_, err = database.Exec(insert, "e1", "before")
	require.NoError(t, err)
	_, err = database.Exec(insert, "e2", "before")
	assert.Error(t, err, "second before sample must violate the unique index")

	// during samples are unrestricted
	_, err = database.Exec(insert, "e3", "during")
	require.NoError(t, err)
	_, err = database.Exec(insert, "e4", "during")
	assert.NoError(t, err)
}
