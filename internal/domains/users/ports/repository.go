package ports

import (
	"context"
	"errors"

	"github.com/Apurer/action-repo-api/internal/domains/users/domain"
)

var ErrNotFound = errors.New("user not found")

// Repository stores users in insertion order. Add assigns the identifier.
type Repository interface {
	Add(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
