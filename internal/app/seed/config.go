package seed

import (
	"errors"
	"os"
	"strings"

	"go.temporal.io/sdk/client"

	platformtemporal "github.com/Apurer/action-repo-api/internal/platform/temporal"
)

// ErrMissingDSN is returned when POSTGRES_DSN is not configured.
var ErrMissingDSN = errors.New("POSTGRES_DSN not set; cannot seed events")

// Config carries environment-driven settings for the seeder and worker processes.
type Config struct {
	ServiceName string
	Environment string
	PostgresDSN string
	Reset       bool
	Temporal    platformtemporal.ClientConfig
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig(serviceName string) (Config, error) {
	cfg := Config{
		ServiceName: envDefault("SERVICE_NAME", serviceName),
		Environment: envDefault("ENVIRONMENT", "local"),
		PostgresDSN: strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		Reset:       isTruthy(os.Getenv("SEED_RESET")),
		Temporal: platformtemporal.ClientConfig{
			Address:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
			Namespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
			Disabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		},
	}
	if cfg.PostgresDSN == "" {
		return Config{}, ErrMissingDSN
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
