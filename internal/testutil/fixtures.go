package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/ramavi/balans/internal/domain"
)

// User options
type UserOption func(*domain.User)

func WithLanguage(lang string) UserOption {
	return func(u *domain.User) {
		u.Language = lang
	}
}

func WithStats(created, completed int, trackedSec int64) UserOption {
	return func(u *domain.User) {
		u.Stats = domain.UserStats{
			TasksCreated:        created,
			TasksCompleted:      completed,
			TotalTimeTrackedSec: trackedSec,
		}
	}
}

func NewTestUser(opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:          uuid.New().String(),
		Email:       "test@example.com",
		DisplayName: "Test User",
		Language:    "en",
		Allocation:  domain.DefaultTimeAllocation,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Task options
type TaskOption func(*domain.Task)

func WithCategory(c domain.Category) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithTimeframe(tf domain.Timeframe) TaskOption {
	return func(t *domain.Task) {
		t.Timeframe = tf
	}
}

func WithDifficulty(d domain.Difficulty) TaskOption {
	return func(t *domain.Task) {
		t.Difficulty = d
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
	}
}

// WithCompleted marks the task completed at the given time with the given
// accumulated tracked seconds.
func WithCompleted(at time.Time, totalSec int64) TaskOption {
	return func(t *domain.Task) {
		t.Status = domain.StatusCompleted
		completedAt := at
		t.CompletedAt = &completedAt
		t.TimeTracking.TotalTimeSpent = totalSec
	}
}

func WithEstimatedMin(m int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedMin = m
	}
}

func NewTestTask(userID, name string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:           uuid.New().String(),
		UserID:       userID,
		Category:     domain.CategoryWork,
		Timeframe:    domain.TimeframeToday,
		Difficulty:   domain.DifficultyRegular,
		Name:         name,
		EstimatedMin: 30,
		Status:       domain.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
