package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Apurer/action-repo-api/internal/domains/events/domain"
	"github.com/Apurer/action-repo-api/internal/domains/events/ports"
)

// Service seeds the events store with fixture data.
type Service struct {
	repo   ports.Repository
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used when SeedInput.Now is zero.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) PrepareSchema(ctx context.Context) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure events schema: %w", err)
	}
	s.logger.InfoContext(ctx, "events schema ready")
	return nil
}

func (s *Service) ResetEvents(ctx context.Context) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("reset events: %w", err)
	}
	s.logger.InfoContext(ctx, "events cleared")
	return nil
}

// InsertSampleEvents validates and stores the fixture events anchored at now.
func (s *Service) InsertSampleEvents(ctx context.Context, now time.Time) (int, error) {
	if s.repo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	if now.IsZero() {
		now = s.now()
	}
	events := domain.SampleEvents(now)
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return 0, fmt.Errorf("invalid sample event %s: %w", e.Type, err)
		}
	}
	inserted, err := s.repo.InsertMany(ctx, events)
	if err != nil {
		return 0, fmt.Errorf("insert sample events: %w", err)
	}
	s.logger.InfoContext(ctx, "sample events inserted", slog.Int("count", inserted))
	return inserted, nil
}

// Seed runs schema preparation, the optional reset and the inserts in order.
func (s *Service) Seed(ctx context.Context, input ports.SeedInput) (*ports.SeedResult, error) {
	if err := s.PrepareSchema(ctx); err != nil {
		return nil, err
	}
	if input.Reset {
		if err := s.ResetEvents(ctx); err != nil {
			return nil, err
		}
	}
	inserted, err := s.InsertSampleEvents(ctx, input.Now)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	s.logger.InfoContext(ctx, "events seeded", slog.Int("inserted", inserted), slog.Int64("total", total))
	return &ports.SeedResult{Inserted: inserted, Total: total}, nil
}

var _ ports.Service = (*Service)(nil)
