package application

import (
	"context"
	"fmt"

	"github.com/Apurer/action-repo-api/internal/domains/events/domain"
	"github.com/Apurer/action-repo-api/internal/domains/events/ports"
)

var _ ports.QueryService = (*QueryService)(nil)

// QueryService reads stored events for the dashboard endpoints.
type QueryService struct {
	reader   ports.Reader
	database string
	table    string
}

type QueryOption func(*QueryService)

// WithStoreName labels the backing store in status reports.
func WithStoreName(database, table string) QueryOption {
	return func(s *QueryService) {
		s.database = database
		s.table = table
	}
}

// NewQueryService accepts a nil reader; every call then fails with ErrRepositoryNotConfigured.
func NewQueryService(reader ports.Reader, opts ...QueryOption) *QueryService {
	s := &QueryService{reader: reader}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Recent returns the newest events, at most ports.RecentLimit.
func (s *QueryService) Recent(ctx context.Context) ([]*domain.Event, error) {
	if s == nil || s.reader == nil {
		return nil, ErrRepositoryNotConfigured
	}
	events, err := s.reader.ListRecent(ctx, ports.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	return events, nil
}

func (s *QueryService) Status(ctx context.Context) (*ports.StoreStatus, error) {
	if s == nil || s.reader == nil {
		return nil, ErrRepositoryNotConfigured
	}
	count, err := s.reader.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	return &ports.StoreStatus{Database: s.database, Table: s.table, Count: count}, nil
}
