package application

import (
	"context"

	"github.com/Apurer/action-repo-api/internal/domains/users/domain"
	"github.com/Apurer/action-repo-api/internal/domains/users/ports"
)

// Service exposes user bounded context use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the input before the repository assigns the next id.
func (s *Service) Create(ctx context.Context, name, email string) (*domain.User, error) {
	user, err := domain.NewUser(0, name, email)
	if err != nil {
		return nil, mapError(err)
	}
	return s.repo.Add(ctx, user)
}

var _ ports.Service = (*Service)(nil)
