package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ramavi/balans/internal/db"
	"github.com/ramavi/balans/internal/domain"
	"github.com/ramavi/balans/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
	users repository.UserRepo
	uow   db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, users repository.UserRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, users: users, uow: uow}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.StatusPending
	}
	t.CreatedAt = time.Now().UTC()
	if err := t.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txUsers := repository.NewSQLiteUserRepo(tx)

		// Existence check so a bad user id surfaces as NotFound rather
		// than a foreign key violation.
		if _, err := txUsers.GetByID(ctx, t.UserID); err != nil {
			return err
		}
		if err := txTasks.Create(ctx, t); err != nil {
			return err
		}
		return txUsers.IncrementStat(ctx, t.UserID, repository.StatTasksCreated, 1)
	})
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, userID string, f repository.TaskFilter) ([]*domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID, f)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return s.tasks.Update(ctx, t)
}

func (s *taskService) StartTracking(ctx context.Context, taskID string) (time.Time, error) {
	now := time.Now().UTC().Truncate(time.Second)

	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return time.Time{}, err
	}
	if err := t.Start(now); err != nil {
		return time.Time{}, err
	}
	if err := s.tasks.OpenSession(ctx, taskID, now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}

func (s *taskService) StopTracking(ctx context.Context, taskID string) (*SessionResult, error) {
	now := time.Now().UTC().Truncate(time.Second)

	var result *SessionResult
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txUsers := repository.NewSQLiteUserRepo(tx)

		t, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		closed, err := t.Stop(now)
		if err != nil {
			return err
		}

		if err := txTasks.CloseSession(ctx, taskID, closed.DurationSec); err != nil {
			return err
		}
		if err := txTasks.AppendSession(ctx, &closed); err != nil {
			return err
		}
		if err := txUsers.IncrementStat(ctx, t.UserID, repository.StatTotalTimeTracked, closed.DurationSec); err != nil {
			return err
		}

		result = &SessionResult{
			EndedAt:        closed.EndedAt,
			DurationSec:    closed.DurationSec,
			TotalTimeSpent: t.TimeTracking.TotalTimeSpent,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *taskService) Complete(ctx context.Context, taskID string, final *domain.EmotionSample) (*domain.Task, error) {
	now := time.Now().UTC().Truncate(time.Second)

	var completed *domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txUsers := repository.NewSQLiteUserRepo(tx)

		t, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		closed, err := t.Complete(now, final)
		if err != nil {
			return err
		}

		if closed != nil {
			if err := txTasks.CloseSession(ctx, taskID, closed.DurationSec); err != nil {
				return err
			}
			if err := txTasks.AppendSession(ctx, closed); err != nil {
				return err
			}
			if err := txUsers.IncrementStat(ctx, t.UserID, repository.StatTotalTimeTracked, closed.DurationSec); err != nil {
				return err
			}
		}

		if err := txTasks.MarkCompleted(ctx, taskID, now); err != nil {
			return err
		}
		if t.EmotionTracking.After != nil {
			if err := txTasks.AddEmotion(ctx, taskID, domain.PhaseAfter, *t.EmotionTracking.After); err != nil {
				return err
			}
		}
		if err := txUsers.IncrementStat(ctx, t.UserID, repository.StatTasksCompleted, 1); err != nil {
			return err
		}

		completed = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

func (s *taskService) RecordEmotion(ctx context.Context, taskID string, phase domain.EmotionPhase, sample domain.EmotionSample) error {
	if sample.RecordedAt.IsZero() {
		sample.RecordedAt = time.Now().UTC().Truncate(time.Second)
	}

	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	// Lifecycle guard first so callers get the domain error, not a
	// constraint violation from the store.
	if err := t.RecordEmotion(phase, sample); err != nil {
		return err
	}
	return s.tasks.AddEmotion(ctx, taskID, phase, sample)
}

func (s *taskService) Delete(ctx context.Context, taskID string) error {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, taskID)
}
