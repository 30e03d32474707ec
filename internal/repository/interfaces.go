package repository

import (
	"context"
	"time"

	"github.com/ramavi/balans/internal/domain"
)

// TaskFilter narrows a user's task listing. Supplied fields are combined
// with AND; a nil field imposes no constraint.
type TaskFilter struct {
	Category  *domain.Category
	Timeframe *domain.Timeframe
	Status    *domain.TaskStatus
}

// CompletedOnly is a convenience filter for analysis queries.
func CompletedOnly() TaskFilter {
	s := domain.StatusCompleted
	return TaskFilter{Status: &s}
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// ListByUser returns the user's tasks matching the filter, ordered by
	// creation time descending, with sessions and emotions loaded.
	ListByUser(ctx context.Context, userID string, f TaskFilter) ([]*domain.Task, error)
	// Update persists the editable and lifecycle columns of a task. It
	// never touches user_id or created_at.
	Update(ctx context.Context, t *domain.Task) error
	// OpenSession sets the active session start and moves the task to
	// in-progress in a single statement.
	OpenSession(ctx context.Context, taskID string, start time.Time) error
	// CloseSession clears the active session start and atomically adds
	// the closed session's duration to the task's running total.
	CloseSession(ctx context.Context, taskID string, deltaSec int64) error
	AppendSession(ctx context.Context, s *domain.Session) error
	AddEmotion(ctx context.Context, taskID string, phase domain.EmotionPhase, e domain.EmotionSample) error
	MarkCompleted(ctx context.Context, taskID string, completedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// UserStat names a per-user running counter column.
type UserStat string

const (
	StatTasksCreated     UserStat = "tasks_created"
	StatTasksCompleted   UserStat = "tasks_completed"
	StatTotalTimeTracked UserStat = "total_time_tracked_sec"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// IncrementStat applies a store-level atomic increment to one of the
	// user's running counters, avoiding read-modify-write races.
	IncrementStat(ctx context.Context, id string, stat UserStat, delta int64) error
}
