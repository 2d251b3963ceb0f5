package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/action-repo-api/internal/app/seed"
	eventspostgres "github.com/Apurer/action-repo-api/internal/domains/events/adapters/persistence/postgres"
	eventsapp "github.com/Apurer/action-repo-api/internal/domains/events/application"
	eventactivities "github.com/Apurer/action-repo-api/internal/durable/temporal/activities/events"
	eventworkflows "github.com/Apurer/action-repo-api/internal/durable/temporal/workflows/events"
	platformobservability "github.com/Apurer/action-repo-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/action-repo-api/internal/platform/postgres"
	platformtemporal "github.com/Apurer/action-repo-api/internal/platform/temporal"
)

const serviceName = "action-repo-worker"

// Run polls the event seed task queue until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := seed.LoadConfig(serviceName)
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanup, err := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	if err != nil {
		return err
	}
	defer cleanup()
	repo := eventspostgres.NewRepository(db)
	activities := eventactivities.NewActivities(eventsapp.NewService(repo, eventsapp.WithLogger(logger)), repo)

	cfg.Temporal.Disabled = false
	temporalClient, err := platformtemporal.Dial(cfg.Temporal, instruments, "temporal-worker")
	if err != nil {
		return fmt.Errorf("failed to create Temporal client: %w", err)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, eventworkflows.EventSeedTaskQueue, worker.Options{})
	Register(w, activities)

	logger.Info("worker listening", slog.String("taskQueue", eventworkflows.EventSeedTaskQueue), slog.String("namespace", cfg.Temporal.Namespace))
	interrupt := make(chan interface{})
	go func() {
		<-ctx.Done()
		close(interrupt)
	}()
	if err := w.Run(interrupt); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Temporal worker stopped")
	return nil
}

// Registry is satisfied by worker.Worker and the Temporal test environment.
type Registry interface {
	RegisterWorkflowWithOptions(w interface{}, options workflow.RegisterOptions)
	RegisterActivityWithOptions(a interface{}, options activity.RegisterOptions)
}

// Register binds the seed workflow and its activities under their public names.
func Register(registry Registry, activities *eventactivities.Activities) {
	registry.RegisterWorkflowWithOptions(eventworkflows.EventSeedWorkflow, workflow.RegisterOptions{Name: eventworkflows.EventSeedWorkflowName})
	registry.RegisterActivityWithOptions(activities.PrepareSchema, activity.RegisterOptions{Name: eventactivities.PrepareSchemaActivityName})
	registry.RegisterActivityWithOptions(activities.ResetEvents, activity.RegisterOptions{Name: eventactivities.ResetEventsActivityName})
	registry.RegisterActivityWithOptions(activities.InsertSampleEvents, activity.RegisterOptions{Name: eventactivities.InsertSampleEventsActivityName})
	registry.RegisterActivityWithOptions(activities.CountEvents, activity.RegisterOptions{Name: eventactivities.CountEventsActivityName})
}
