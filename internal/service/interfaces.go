package service

import (
	"context"
	"time"

	"github.com/ramavi/balans/internal/domain"
	"github.com/ramavi/balans/internal/repository"
)

// SessionResult reports the outcome of stopping a tracking session.
type SessionResult struct {
	EndedAt        time.Time
	DurationSec    int64
	TotalTimeSpent int64
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, userID string, f repository.TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	StartTracking(ctx context.Context, taskID string) (time.Time, error)
	StopTracking(ctx context.Context, taskID string) (*SessionResult, error)
	Complete(ctx context.Context, taskID string, final *domain.EmotionSample) (*domain.Task, error)
	RecordEmotion(ctx context.Context, taskID string, phase domain.EmotionPhase, sample domain.EmotionSample) error
	Delete(ctx context.Context, taskID string) error
}

// AnalysisRequest scopes an analytics query. A nil Now means the current
// time; tests pin it.
type AnalysisRequest struct {
	UserID string
	Window domain.Window
	Now    *time.Time
}

type AnalysisService interface {
	CategoryAnalysis(ctx context.Context, req AnalysisRequest) (domain.CategoryAnalysis, error)
	Balance(ctx context.Context, req AnalysisRequest) (domain.Balance, error)
}

type UserService interface {
	Register(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// EnsureUser fetches the user, registering a bare local profile if it
	// does not exist yet.
	EnsureUser(ctx context.Context, id string) (*domain.User, error)
}
