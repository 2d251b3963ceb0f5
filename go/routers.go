package actionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handlers mounted by the router.
type ApiHandleFunctions struct {
	// Routes for the UserAPI part of the API
	UserAPI UserAPI
	// Routes for the SystemAPI part of the API
	SystemAPI SystemAPI
	// Routes for the EventsAPI part of the API
	EventsAPI EventsAPI
	// Static serves the public directory for otherwise unmatched requests.
	Static StaticFiles
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the API routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	router.NoRoute(handleFunctions.Static.Serve)
	return router
}

// DefaultHandleFunc is the default handler for routes without an implementation.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"Root",
			http.MethodGet,
			"/",
			handleFunctions.SystemAPI.Root,
		},
		{
			"Version",
			http.MethodGet,
			"/version",
			handleFunctions.SystemAPI.Version,
		},
		{
			"Health",
			http.MethodGet,
			"/health",
			handleFunctions.SystemAPI.Health,
		},
		{
			"ListUsers",
			http.MethodGet,
			"/api/users",
			handleFunctions.UserAPI.ListUsers,
		},
		{
			"GetUserByID",
			http.MethodGet,
			"/api/users/:id",
			handleFunctions.UserAPI.GetUserByID,
		},
		{
			"CreateUser",
			http.MethodPost,
			"/api/users",
			handleFunctions.UserAPI.CreateUser,
		},
		{
			"ListEvents",
			http.MethodGet,
			"/events",
			handleFunctions.EventsAPI.ListEvents,
		},
		{
			"DBStatus",
			http.MethodGet,
			"/db-status",
			handleFunctions.EventsAPI.DBStatus,
		},
	}
}
