package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ramavi/balans/internal/domain"
	"github.com/ramavi/balans/internal/repository"
)

type analysisService struct {
	tasks repository.TaskRepo
}

func NewAnalysisService(tasks repository.TaskRepo) AnalysisService {
	return &analysisService{tasks: tasks}
}

func (s *analysisService) CategoryAnalysis(ctx context.Context, req AnalysisRequest) (domain.CategoryAnalysis, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	if !req.Window.Valid() {
		return nil, fmt.Errorf("invalid window %q", req.Window)
	}

	// Same filter path as listing: completed tasks only.
	tasks, err := s.tasks.ListByUser(ctx, req.UserID, repository.CompletedOnly())
	if err != nil {
		return nil, fmt.Errorf("loading completed tasks: %w", err)
	}

	tasks = filterByWindow(tasks, req.Window, now)
	return aggregateByCategory(tasks), nil
}

func (s *analysisService) Balance(ctx context.Context, req AnalysisRequest) (domain.Balance, error) {
	analysis, err := s.CategoryAnalysis(ctx, req)
	if err != nil {
		return nil, err
	}
	return balanceFromAnalysis(analysis), nil
}
