package ports

import (
	"context"
	"time"
)

// SeedInput controls a seeding run.
type SeedInput struct {
	// Reset clears existing events before inserting the samples.
	Reset bool
	// Now anchors the sample timestamps; zero means the current time.
	Now time.Time
}

// SeedResult reports what a seeding run did.
type SeedResult struct {
	Inserted int
	Total    int64
}

// Service exposes the seeding use cases.
type Service interface {
	PrepareSchema(ctx context.Context) error
	ResetEvents(ctx context.Context) error
	InsertSampleEvents(ctx context.Context, now time.Time) (int, error)
	Seed(ctx context.Context, input SeedInput) (*SeedResult, error)
}

// SeedOrchestrator runs a seed either inline or on a durable workflow engine.
type SeedOrchestrator interface {
	Seed(ctx context.Context, input SeedInput) (*SeedResult, error)
}
