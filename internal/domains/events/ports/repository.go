package ports

import (
	"context"

	"github.com/Apurer/action-repo-api/internal/domains/events/domain"
)

// Repository persists repository events.
type Repository interface {
	// EnsureSchema creates the events table and its indexes when missing.
	EnsureSchema(ctx context.Context) error
	// Reset removes every stored event.
	Reset(ctx context.Context) error
	InsertMany(ctx context.Context, events []*domain.Event) (int, error)
	Count(ctx context.Context) (int64, error)
}

// Reader serves the dashboard read side.
type Reader interface {
	// ListRecent returns up to limit events, newest timestamp first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Event, error)
	Count(ctx context.Context) (int64, error)
}
