package temporal

import (
	"errors"

	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	platformobservability "github.com/Apurer/action-repo-api/internal/platform/observability"
)

// ErrDisabled is returned by Dial when Temporal is switched off in configuration.
var ErrDisabled = errors.New("temporal disabled via TEMPORAL_DISABLED env")

// ClientConfig selects the Temporal frontend to talk to.
type ClientConfig struct {
	Address   string
	Namespace string
	Disabled  bool
}

// Options builds client options with the tracing interceptor and structured logger attached.
func Options(cfg ClientConfig, instruments *platformobservability.Instruments, tracerName string) (client.Options, error) {
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer(tracerName),
	})
	if err != nil {
		return client.Options{}, err
	}
	options := client.Options{
		HostPort:  valueOrDefault(cfg.Address, client.DefaultHostPort),
		Namespace: valueOrDefault(cfg.Namespace, client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(instruments.EffectiveLogger()),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return options, nil
}

// Dial connects to Temporal unless it is disabled.
func Dial(cfg ClientConfig, instruments *platformobservability.Instruments, tracerName string) (client.Client, error) {
	if cfg.Disabled {
		return nil, ErrDisabled
	}
	options, err := Options(cfg, instruments, tracerName)
	if err != nil {
		return nil, err
	}
	return client.Dial(options)
}

func valueOrDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
