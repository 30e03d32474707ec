package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ramavi/balans/internal/domain"
	"github.com/ramavi/balans/internal/repository"
)

type userService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) Register(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Language == "" {
		u.Language = "en"
	}
	if (u.Allocation == domain.TimeAllocation{}) {
		u.Allocation = domain.DefaultTimeAllocation
	}
	u.Stats = domain.UserStats{}
	u.CreatedAt = time.Now().UTC()
	return s.users.Create(ctx, u)
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) EnsureUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	u = &domain.User{ID: id, DisplayName: id}
	if err := s.Register(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
