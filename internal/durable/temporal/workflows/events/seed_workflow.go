package events

import (
	"go.temporal.io/sdk/workflow"

	eventsports "github.com/Apurer/action-repo-api/internal/domains/events/ports"
	"github.com/Apurer/action-repo-api/internal/durable/temporal/sequences"
)

const (
	// EventSeedWorkflowName is the public identifier for registering the workflow.
	EventSeedWorkflowName = "events.workflows.Seed"
	// EventSeedTaskQueue is the queue consumed by the worker processing seed workflows.
	EventSeedTaskQueue = "EVENT_SEED"
)

// EventSeedWorkflowInput captures the payload required to seed the events table.
type EventSeedWorkflowInput struct {
	Seed    eventsports.SeedInput
	TraceID string
}

// EventSeedWorkflow orchestrates the activities that create and populate the events table.
func EventSeedWorkflow(ctx workflow.Context, input EventSeedWorkflowInput) (*eventsports.SeedResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("EventSeedWorkflow started", withTraceID(input.TraceID, "reset", input.Seed.Reset)...)
	result, err := sequences.RunEventSeedSequence(ctx, input.Seed)
	if err != nil {
		logger.Error("EventSeedWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	logger.Info("EventSeedWorkflow completed", withTraceID(input.TraceID, "inserted", result.Inserted, "total", result.Total)...)
	return result, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
