package actionserver

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ServiceInfo describes the running service on the informational endpoints.
type ServiceInfo struct {
	Name        string
	Version     string
	Description string
}

// SystemAPI serves /, /version and /health.
type SystemAPI struct {
	info      ServiceInfo
	startedAt time.Time
	now       func() time.Time
}

// NewSystemAPI wires dependencies; uptime is measured from this call.
func NewSystemAPI(info ServiceInfo) SystemAPI {
	return newSystemAPI(info, time.Now)
}

func newSystemAPI(info ServiceInfo, now func() time.Time) SystemAPI {
	return SystemAPI{info: info, startedAt: now(), now: now}
}

// RootResponse - Welcome document returned by GET /.
type RootResponse struct {
	Message       string            `json:"message"`
	Description   string            `json:"description"`
	Version       string            `json:"version"`
	Timestamp     string            `json:"timestamp"`
	Endpoints     map[string]string `json:"endpoints"`
	Documentation string            `json:"documentation"`
}

// VersionResponse - Build information returned by GET /version.
type VersionResponse struct {
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	Description string  `json:"description"`
	GoVersion   string  `json:"go_version"`
	Uptime      float64 `json:"uptime"`
	Timestamp   string  `json:"timestamp"`
}

// HealthResponse - Liveness document returned by GET /health.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// Get /
// Describe the API
func (api *SystemAPI) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Message:     "Welcome to Action Repo API",
		Description: api.info.Description,
		Version:     api.info.Version,
		Timestamp:   api.timestamp(),
		Endpoints: map[string]string{
			"users":   "/api/users",
			"health":  "/health",
			"version": "/version",
		},
		Documentation: "See README.md for setup and usage instructions",
	})
}

// Get /version
// Report build information
func (api *SystemAPI) Version(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Name:        api.info.Name,
		Version:     api.info.Version,
		Description: api.info.Description,
		GoVersion:   runtime.Version(),
		Uptime:      api.uptime(),
		Timestamp:   api.timestamp(),
	})
}

// Get /health
// Liveness probe
func (api *SystemAPI) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: api.timestamp(),
		Uptime:    api.uptime(),
	})
}

func (api *SystemAPI) clock() time.Time {
	if api.now == nil {
		return time.Now()
	}
	return api.now()
}

func (api *SystemAPI) timestamp() string {
	return api.clock().UTC().Format(timestampLayout)
}

// uptime is reported in seconds.
func (api *SystemAPI) uptime() float64 {
	if api.startedAt.IsZero() {
		return 0
	}
	return api.clock().Sub(api.startedAt).Seconds()
}
