package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "PUBLIC_DIR", "SERVICE_NAME", "SERVICE_VERSION", "ENVIRONMENT", "SHUTDOWN_TIMEOUT_SECONDS", "POSTGRES_DSN"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, Config{
		Port:            "3000",
		PublicDir:       "public",
		ServiceName:     "action-repo",
		ServiceVersion:  "1.0.0",
		Environment:     "local",
		ShutdownTimeout: 10 * time.Second,
	}, cfg)
	require.Equal(t, ":3000", cfg.Addr())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", " 8081 ")
	t.Setenv("PUBLIC_DIR", "/srv/www")
	t.Setenv("SERVICE_VERSION", "2.1.0")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/events")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8081", cfg.Port)
	require.Equal(t, "/srv/www", cfg.PublicDir)
	require.Equal(t, "2.1.0", cfg.ServiceVersion)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "postgres://localhost/events", cfg.PostgresDSN)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("port", func(t *testing.T) {
		t.Setenv("PORT", "http")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "PORT")
	})
	t.Run("shutdown timeout", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "-1")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "SHUTDOWN_TIMEOUT_SECONDS")
	})
}
