package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = "3000"
	defaultPublicDir       = "public"
	defaultServiceName     = "action-repo"
	defaultServiceVersion  = "1.0.0"
	defaultEnvironment     = "local"
	defaultShutdownTimeout = 10 * time.Second
	serviceDescription     = "Sample Go application for GitHub webhook testing"
	eventStoreDatabase     = "PostgreSQL"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port            string
	PublicDir       string
	ServiceName     string
	ServiceVersion  string
	Environment     string
	ShutdownTimeout time.Duration
	// PostgresDSN backs /events and /db-status; empty leaves them unconfigured.
	PostgresDSN string
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:            envDefault("PORT", defaultPort),
		PublicDir:       envDefault("PUBLIC_DIR", defaultPublicDir),
		ServiceName:     envDefault("SERVICE_NAME", defaultServiceName),
		ServiceVersion:  envDefault("SERVICE_VERSION", defaultServiceVersion),
		Environment:     envDefault("ENVIRONMENT", defaultEnvironment),
		ShutdownTimeout: defaultShutdownTimeout,
		PostgresDSN:     strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
	}
	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("PORT must be a valid TCP port, got %q", cfg.Port)
	}
	if raw := strings.TrimSpace(os.Getenv("SHUTDOWN_TIMEOUT_SECONDS")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be a positive integer")
		}
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
