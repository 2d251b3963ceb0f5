package actionserver

import (
	"io"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/action-repo-api/internal/shared/errors"
)

// RequestLogger writes one line per request once the handler chain returns.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()
		logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "request",
			slog.String("timestamp", start.UTC().Format(timestampLayout)),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// Recovery turns panics into the generic 500 envelope. The stack is logged, never returned.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.LogAttrs(c.Request.Context(), slog.LevelError, "panic recovered",
			slog.Any("panic", recovered),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("stack", string(debug.Stack())),
		)
		respondProblem(c, apierrors.ErrInternal)
	})
}

// ErrorHandler logs errors attached with c.Error and answers with the 500
// envelope when the handler left the response unwritten.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 {
			return
		}
		for _, ginErr := range c.Errors {
			logger.LogAttrs(c.Request.Context(), slog.LevelError, "request failed",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("error", ginErr.Error()),
			)
		}
		if !c.Writer.Written() {
			apierrors.RespondError(c, c.Errors.Last().Err)
		}
	}
}
