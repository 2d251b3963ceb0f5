package ports

import (
	"context"

	"github.com/Apurer/action-repo-api/internal/domains/users/domain"
)

// Service exposes user bounded context use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, name, email string) (*domain.User, error)
}
