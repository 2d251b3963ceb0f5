package events

import (
	"context"
	"errors"
	"time"

	"go.temporal.io/sdk/activity"

	eventsports "github.com/Apurer/action-repo-api/internal/domains/events/ports"
)

const (
	// PrepareSchemaActivityName creates the events table and indexes.
	PrepareSchemaActivityName = "events.activities.PrepareSchema"
	// ResetEventsActivityName clears previously stored events.
	ResetEventsActivityName = "events.activities.ResetEvents"
	// InsertSampleEventsActivityName stores the fixture events.
	InsertSampleEventsActivityName = "events.activities.InsertSampleEvents"
	// CountEventsActivityName reports the stored event total.
	CountEventsActivityName = "events.activities.CountEvents"
)

var errNotInitialized = errors.New("event seed activities not initialized")

// Activities groups activities that operate on the events bounded context.
type Activities struct {
	service eventsports.Service
	repo    eventsports.Repository
}

// NewActivities wires the events collaborators into the Temporal activities bundle.
func NewActivities(service eventsports.Service, repo eventsports.Repository) *Activities {
	return &Activities{service: service, repo: repo}
}

func (a *Activities) PrepareSchema(ctx context.Context) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("PrepareSchema activity not initialized")
		return errNotInitialized
	}
	if err := a.service.PrepareSchema(ctx); err != nil {
		logger.Error("PrepareSchema activity failed", "error", err)
		return err
	}
	logger.Info("PrepareSchema activity completed")
	return nil
}

func (a *Activities) ResetEvents(ctx context.Context) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("ResetEvents activity not initialized")
		return errNotInitialized
	}
	if err := a.service.ResetEvents(ctx); err != nil {
		logger.Error("ResetEvents activity failed", "error", err)
		return err
	}
	logger.Info("ResetEvents activity completed")
	return nil
}

// InsertSampleEvents records a heartbeat once rows are committed so a retried
// attempt does not insert a second batch.
func (a *Activities) InsertSampleEvents(ctx context.Context, now time.Time) (int, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("InsertSampleEvents activity not initialized")
		return 0, errNotInitialized
	}
	var hb insertHeartbeat
	if activity.HasHeartbeatDetails(ctx) {
		_ = activity.GetHeartbeatDetails(ctx, &hb)
	}
	if hb.Completed {
		logger.Info("InsertSampleEvents already completed in prior attempt; skipping", "inserted", hb.Inserted)
		return hb.Inserted, nil
	}
	inserted, err := a.service.InsertSampleEvents(ctx, now)
	if err != nil {
		logger.Error("InsertSampleEvents activity failed", "error", err)
		return 0, err
	}
	activity.RecordHeartbeat(ctx, insertHeartbeat{Completed: true, Inserted: inserted})
	logger.Info("InsertSampleEvents activity completed", "inserted", inserted)
	return inserted, nil
}

func (a *Activities) CountEvents(ctx context.Context) (int64, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.repo == nil {
		logger.Error("CountEvents activity not initialized")
		return 0, errNotInitialized
	}
	total, err := a.repo.Count(ctx)
	if err != nil {
		logger.Error("CountEvents activity failed", "error", err)
		return 0, err
	}
	return total, nil
}

type insertHeartbeat struct {
	Completed bool
	Inserted  int
}
