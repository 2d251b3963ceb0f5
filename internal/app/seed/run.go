package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	eventspostgres "github.com/Apurer/action-repo-api/internal/domains/events/adapters/persistence/postgres"
	eventsworkflows "github.com/Apurer/action-repo-api/internal/domains/events/adapters/workflows"
	eventsapp "github.com/Apurer/action-repo-api/internal/domains/events/application"
	eventsports "github.com/Apurer/action-repo-api/internal/domains/events/ports"
	platformobservability "github.com/Apurer/action-repo-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/action-repo-api/internal/platform/postgres"
	platformtemporal "github.com/Apurer/action-repo-api/internal/platform/temporal"
)

const serviceName = "action-repo-seed"

// Run prepares the events table and inserts the sample events once.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig(serviceName)
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
	service := eventsapp.NewService(eventspostgres.NewRepository(db), eventsapp.WithLogger(logger))

	var orchestrator eventsports.SeedOrchestrator = eventsworkflows.NewInlineSeedWorkflows(service)
	if temporalClient, err := platformtemporal.Dial(cfg.Temporal, instruments, "temporal-client"); err != nil {
		logger.Warn("Temporal workflows unavailable, seeding inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orchestrator = eventsworkflows.NewTemporalSeedWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.Temporal.Namespace))
	}

	return Seed(ctx, orchestrator, eventsports.SeedInput{Reset: cfg.Reset}, logger)
}

// Seed runs one seeding pass through orchestrator and logs the outcome.
func Seed(ctx context.Context, orchestrator eventsports.SeedOrchestrator, input eventsports.SeedInput, logger *slog.Logger) error {
	ctx, span := otel.Tracer("internal.app.seed").Start(ctx, "SeedEvents")
	defer span.End()

	result, err := orchestrator.Seed(ctx, input)
	if err != nil {
		span.RecordError(err)
		logger.Error("event seeding failed", slog.String("error", err.Error()))
		return fmt.Errorf("seed events: %w", err)
	}
	logger.Info("sample events inserted",
		slog.Int("inserted", result.Inserted),
		slog.Int64("total", result.Total),
		slog.Bool("reset", input.Reset),
	)
	return nil
}
