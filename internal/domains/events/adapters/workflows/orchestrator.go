package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/action-repo-api/internal/domains/events/ports"
	eventworkflows "github.com/Apurer/action-repo-api/internal/durable/temporal/workflows/events"
)

// SeedWorkflowID is shared by every seed run so concurrent invocations join one execution.
const SeedWorkflowID = "events-seed"

var (
	_ ports.SeedOrchestrator = (*TemporalSeedWorkflows)(nil)
	_ ports.SeedOrchestrator = (*InlineSeedWorkflows)(nil)
)

// TemporalSeedWorkflows starts seed workflows on a Temporal cluster.
type TemporalSeedWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalSeedWorkflows wires a Temporal client into the orchestrator.
func NewTemporalSeedWorkflows(c client.Client) *TemporalSeedWorkflows {
	return &TemporalSeedWorkflows{client: c, taskQueue: eventworkflows.EventSeedTaskQueue}
}

// Seed starts the seed workflow and waits for its result. When a seed is
// already running it waits on that run instead.
func (o *TemporalSeedWorkflows) Seed(ctx context.Context, input ports.SeedInput) (*ports.SeedResult, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal seed workflows not configured")
	}
	options := client.StartWorkflowOptions{
		ID:                       SeedWorkflowID,
		TaskQueue:                o.taskQueue,
		WorkflowExecutionTimeout: 10 * time.Minute,
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		eventworkflows.EventSeedWorkflowName,
		eventworkflows.EventSeedWorkflowInput{Seed: input, TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if !errors.As(err, &alreadyStarted) {
			return nil, fmt.Errorf("start seed workflow: %w", err)
		}
		run = o.client.GetWorkflow(ctx, SeedWorkflowID, alreadyStarted.RunId)
	}
	var result ports.SeedResult
	if err := run.Get(ctx, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// InlineSeedWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineSeedWorkflows struct {
	service ports.Service
}

// NewInlineSeedWorkflows wraps the events service for synchronous execution.
func NewInlineSeedWorkflows(service ports.Service) *InlineSeedWorkflows {
	return &InlineSeedWorkflows{service: service}
}

// Seed delegates to the application service without durable orchestration.
func (o *InlineSeedWorkflows) Seed(ctx context.Context, input ports.SeedInput) (*ports.SeedResult, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline seed workflows not configured")
	}
	return o.service.Seed(ctx, input)
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
