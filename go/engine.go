package actionserver

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// NewEngine builds a gin engine with request logging, panic recovery and the
// error handler in front of any extra middleware and the API routes.
func NewEngine(logger *slog.Logger, handleFunctions ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(logger), Recovery(logger), ErrorHandler(logger))
	if len(middleware) > 0 {
		router.Use(middleware...)
	}
	return NewRouterWithGinEngine(router, handleFunctions)
}
