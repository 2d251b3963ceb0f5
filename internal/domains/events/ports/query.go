package ports

import (
	"context"

	"github.com/Apurer/action-repo-api/internal/domains/events/domain"
)

// RecentLimit caps how many events the dashboard lists.
const RecentLimit = 50

// StoreStatus describes the events store as seen by the dashboard.
type StoreStatus struct {
	Database string
	Table    string
	Count    int64
}

// QueryService exposes the dashboard read use cases.
type QueryService interface {
	Recent(ctx context.Context) ([]*domain.Event, error)
	Status(ctx context.Context) (*StoreStatus, error)
}
