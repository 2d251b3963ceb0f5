package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	userdomain "github.com/Apurer/action-repo-api/internal/domains/users/domain"
	userports "github.com/Apurer/action-repo-api/internal/domains/users/ports"
)

const tracerName = "github.com/Apurer/action-repo-api/internal/domains/users/adapters/observability/service"

// Service decorates the user service with tracing, logging, and metrics.
type Service struct {
	inner   userports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core user service.
func New(inner userports.Service, opts ...Option) userports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.List")
	defer span.End()
	users, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list users")
	}
	span.SetAttributes(attribute.Int("user.count", len(users)))
	return users, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.GetByID", trace.WithAttributes(attribute.Int64("user.id", id)))
	defer span.End()
	user, err := s.inner.GetByID(ctx, id)
	if err != nil {
		// Unknown ids are an expected outcome; record them on the span only.
		span.RecordError(err)
		return nil, err
	}
	return user, nil
}

func (s *Service) Create(ctx context.Context, name, email string) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.Create")
	defer span.End()
	s.logInfo(ctx, "creating user", slog.String("name", name))
	result, err := s.inner.Create(ctx, name, email)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create user", slog.String("name", name))
	}
	span.SetAttributes(attribute.Int64("user.id", result.ID))
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "user created", slog.Int64("id", result.ID))
	return result, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

type serviceMetrics struct {
	usersCreated metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("users.service.created", metric.WithDescription("Number of users created"))
	return serviceMetrics{usersCreated: created}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.usersCreated != nil {
		m.usersCreated.Add(ctx, 1)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ userports.Service = (*Service)(nil)
