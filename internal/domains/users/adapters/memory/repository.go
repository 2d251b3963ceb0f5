package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/action-repo-api/internal/domains/users/domain"
	"github.com/Apurer/action-repo-api/internal/domains/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory, insertion-ordered user store.
type Repository struct {
	mu    sync.RWMutex
	users []*domain.User
}

// NewRepository creates a store holding the given records in order.
func NewRepository(seed ...domain.User) *Repository {
	r := &Repository{users: make([]*domain.User, 0, len(seed))}
	for i := range seed {
		u := seed[i]
		r.users = append(r.users, &u)
	}
	return r
}

// NewSeededRepository creates a store pre-populated with the sample users.
func NewSeededRepository() *Repository {
	return NewRepository(SeedUsers()...)
}

// SeedUsers returns the fixed records every fresh process starts with.
func SeedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com"},
	}
}

// Add appends the user with id set to the current record count plus one.
// No delete exists, so the count never reuses an id.
func (r *Repository) Add(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	clone := *user
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone.ID = int64(len(r.users) + 1)
	r.users = append(r.users, &clone)
	out := clone
	return &out, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		list = append(list, &clone)
	}
	return list, nil
}

// Len reports the number of stored users.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
