package repository

import (
	"context"
	"testing"

	"github.com/ramavi/balans/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	ctx := context.Background()

	u := testutil.NewTestUser(testutil.WithLanguage("zh"))
	require.NoError(t, users.Create(ctx, u))

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, "zh", got.Language)
	assert.Equal(t, 6.0, got.Allocation.WorkStudy)
	assert.Equal(t, 0, got.Stats.TasksCreated)
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)

	_, err := users.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_IncrementStat(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	ctx := context.Background()

	u := testutil.NewTestUser()
	require.NoError(t, users.Create(ctx, u))

	require.NoError(t, users.IncrementStat(ctx, u.ID, StatTasksCreated, 1))
	require.NoError(t, users.IncrementStat(ctx, u.ID, StatTasksCreated, 1))
	require.NoError(t, users.IncrementStat(ctx, u.ID, StatTotalTimeTracked, 1500))

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stats.TasksCreated)
	assert.Equal(t, int64(1500), got.Stats.TotalTimeTrackedSec)
}

func TestUserRepo_IncrementStat_UnknownColumn(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)

	err := users.IncrementStat(context.Background(), "u1", UserStat("evil; DROP TABLE users"), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown user stat")
}

func TestUserRepo_IncrementStat_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)

	err := users.IncrementStat(context.Background(), "missing", StatTasksCreated, 1)
	require.ErrorIs(t, err, ErrNotFound)
}
