package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	actionserver "github.com/Apurer/action-repo-api/go"
	eventspostgres "github.com/Apurer/action-repo-api/internal/domains/events/adapters/persistence/postgres"
	eventsapp "github.com/Apurer/action-repo-api/internal/domains/events/application"
	eventsports "github.com/Apurer/action-repo-api/internal/domains/events/ports"
	usermemory "github.com/Apurer/action-repo-api/internal/domains/users/adapters/memory"
	userobs "github.com/Apurer/action-repo-api/internal/domains/users/adapters/observability"
	userapp "github.com/Apurer/action-repo-api/internal/domains/users/application"
	"github.com/Apurer/action-repo-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/action-repo-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/action-repo-api/internal/platform/postgres"
)

// Run boots the action-repo HTTP API and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Environment:    cfg.Environment,
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

	events, cleanupEvents := buildEventReader(ctx, cfg.PostgresDSN, logger)
	defer cleanupEvents()

	gin.SetMode(gin.ReleaseMode)
	router := NewRouter(cfg, instruments, events)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	return serve(ctx, server, cfg.ShutdownTimeout, logger)
}

// NewRouter wires the user store, services and handlers into a ready gin engine.
// A nil events reader leaves the dashboard endpoints reporting no connection.
func NewRouter(cfg Config, instruments *platformobservability.Instruments, events eventsports.Reader) *gin.Engine {
	logger := instruments.EffectiveLogger()
	userService := userobs.New(
		userapp.NewService(usermemory.NewSeededRepository()),
		userobs.WithLogger(logger),
		userobs.WithTracer(instruments.Tracer("internal.users.application")),
		userobs.WithMeter(instruments.Meter("internal.users.application")),
	)
	handlers := actionserver.ApiHandleFunctions{
		UserAPI: actionserver.NewUserAPI(userService),
		SystemAPI: actionserver.NewSystemAPI(actionserver.ServiceInfo{
			Name:        cfg.ServiceName,
			Version:     cfg.ServiceVersion,
			Description: serviceDescription,
		}),
		EventsAPI: actionserver.NewEventsAPI(eventsapp.NewQueryService(
			events,
			eventsapp.WithStoreName(eventStoreDatabase, migrations.EventsTable),
		)),
		Static: actionserver.NewStaticFiles(cfg.PublicDir),
	}
	return actionserver.NewEngine(logger, handlers, otelgin.Middleware(cfg.ServiceName))
}

func buildEventReader(ctx context.Context, dsn string, logger *slog.Logger) (eventsports.Reader, func()) {
	if dsn == "" {
		logger.Warn("POSTGRES_DSN not set, event dashboard endpoints report no connection")
		return nil, func() {}
	}
	db, cleanup, err := platformpostgres.Open(ctx, dsn, logger)
	if err != nil {
		logger.Warn("failed to connect to postgres, event dashboard endpoints report no connection", slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("event dashboard configured with postgres")
	return eventspostgres.NewRepository(db), cleanup
}

func serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("action-repo API listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("action-repo API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down action-repo API", slog.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
