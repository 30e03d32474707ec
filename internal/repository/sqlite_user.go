package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ramavi/balans/internal/db"
	"github.com/ramavi/balans/internal/domain"
)

// SQLiteUserRepo implements UserRepo against a SQLite database or
// transaction.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(db db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: db}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, email, display_name, language,
		alloc_work_study, alloc_social_friends, alloc_social_partner,
		alloc_entertainment, alloc_sleep,
		tasks_created, tasks_completed, total_time_tracked_sec, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Email,
		u.DisplayName,
		u.Language,
		u.Allocation.WorkStudy,
		u.Allocation.SocialFriends,
		u.Allocation.SocialPartner,
		u.Allocation.Entertainment,
		u.Allocation.Sleep,
		u.Stats.TasksCreated,
		u.Stats.TasksCompleted,
		u.Stats.TotalTimeTrackedSec,
		u.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, display_name, language,
		alloc_work_study, alloc_social_friends, alloc_social_partner,
		alloc_entertainment, alloc_sleep,
		tasks_created, tasks_completed, total_time_tracked_sec, created_at
		FROM users WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var u domain.User
	var createdAtStr string
	err := row.Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.Language,
		&u.Allocation.WorkStudy, &u.Allocation.SocialFriends, &u.Allocation.SocialPartner,
		&u.Allocation.Entertainment, &u.Allocation.Sleep,
		&u.Stats.TasksCreated, &u.Stats.TasksCompleted, &u.Stats.TotalTimeTrackedSec,
		&createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	if u.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &u, nil
}

func (r *SQLiteUserRepo) IncrementStat(ctx context.Context, id string, stat UserStat, delta int64) error {
	switch stat {
	case StatTasksCreated, StatTasksCompleted, StatTotalTimeTracked:
	default:
		return fmt.Errorf("unknown user stat %q", stat)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+string(stat)+` = `+string(stat)+` + ? WHERE id = ?`,
		delta, id,
	)
	if err != nil {
		return fmt.Errorf("incrementing %s: %w", stat, err)
	}
	return requireRow(res, "user")
}
