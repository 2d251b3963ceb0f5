package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	eventsports "github.com/Apurer/action-repo-api/internal/domains/events/ports"
	eventactivities "github.com/Apurer/action-repo-api/internal/durable/temporal/activities/events"
)

// RunEventSeedSequence executes the ordered set of activities that seed the events table.
func RunEventSeedSequence(ctx workflow.Context, input eventsports.SeedInput) (*eventsports.SeedResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("event seed sequence started", "reset", input.Reset)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		HeartbeatTimeout:    30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	now := input.Now
	if now.IsZero() {
		now = workflow.Now(ctx)
	}

	if err := workflow.ExecuteActivity(ctx, eventactivities.PrepareSchemaActivityName).Get(ctx, nil); err != nil {
		logger.Error("event seed sequence failed to prepare schema", "error", err)
		return nil, err
	}
	if input.Reset {
		if err := workflow.ExecuteActivity(ctx, eventactivities.ResetEventsActivityName).Get(ctx, nil); err != nil {
			logger.Error("event seed sequence failed to reset events", "error", err)
			return nil, err
		}
	}
	var inserted int
	if err := workflow.ExecuteActivity(ctx, eventactivities.InsertSampleEventsActivityName, now).Get(ctx, &inserted); err != nil {
		logger.Error("event seed sequence failed to insert events", "error", err)
		return nil, err
	}
	var total int64
	if err := workflow.ExecuteActivity(ctx, eventactivities.CountEventsActivityName).Get(ctx, &total); err != nil {
		logger.Error("event seed sequence failed to count events", "error", err)
		return nil, err
	}
	logger.Info("event seed sequence completed", "inserted", inserted, "total", total)
	return &eventsports.SeedResult{Inserted: inserted, Total: total}, nil
}
