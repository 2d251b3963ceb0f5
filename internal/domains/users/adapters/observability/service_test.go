package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Apurer/action-repo-api/internal/domains/users/adapters/memory"
	"github.com/Apurer/action-repo-api/internal/domains/users/application"
	"github.com/Apurer/action-repo-api/internal/domains/users/ports"
)

func newDecorated(t *testing.T) (ports.Service, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})
	svc := New(
		application.NewService(memory.NewSeededRepository()),
		WithTracer(tp.Tracer("test")),
		WithMeter(mp.Meter("test")),
	)
	return svc, recorder, reader
}

func TestService_CreateRecordsSpanAndCounter(t *testing.T) {
	svc, recorder, reader := newDecorated(t)

	created, err := svc.Create(context.Background(), "Alice", "alice@x.com")
	require.NoError(t, err)
	require.Equal(t, int64(4), created.ID)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "UserService.Create", spans[0].Name())

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)
	sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	require.Equal(t, int64(1), sum.DataPoints[0].Value)
}

func TestService_PassesErrorsThrough(t *testing.T) {
	svc, recorder, _ := newDecorated(t)

	_, err := svc.Create(context.Background(), "", "")
	require.ErrorIs(t, err, application.ErrInvalidInput)

	_, err = svc.GetByID(context.Background(), 999999)
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.Len(t, recorder.Ended(), 2)
}

func TestNew_DefaultsWithoutOptions(t *testing.T) {
	svc := New(application.NewService(memory.NewSeededRepository()), nil)
	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
}
