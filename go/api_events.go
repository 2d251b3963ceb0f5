package actionserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	eventhttpmapper "github.com/Apurer/action-repo-api/internal/domains/events/adapters/http/mapper"
	eventapp "github.com/Apurer/action-repo-api/internal/domains/events/application"
	eventports "github.com/Apurer/action-repo-api/internal/domains/events/ports"
)

const (
	dbStatusNotConfigured = "No connection pool"
	dbStatusQueryFailed   = "Database query failed"
)

// EventsAPI serves the dashboard read side: /events and /db-status.
// Store failures never turn into error statuses; the dashboard renders an
// empty list or a disconnected status instead.
type EventsAPI struct {
	service eventports.QueryService
}

// NewEventsAPI wires dependencies.
func NewEventsAPI(service eventports.QueryService) EventsAPI {
	return EventsAPI{service: service}
}

func fromTransportEvents(events []eventhttpmapper.Event) []Event {
	result := make([]Event, 0, len(events))
	for _, event := range events {
		result = append(result, Event{
			Id:         event.ID,
			Type:       event.Type,
			Author:     event.Author,
			ToBranch:   event.ToBranch,
			FromBranch: event.FromBranch,
			Repository: event.Repository,
			Commits:    event.Commits,
			Action:     event.Action,
			Timestamp:  event.Timestamp.UTC().Format(timestampLayout),
		})
	}
	return result
}

// Get /events
// List the newest stored events
func (api *EventsAPI) ListEvents(c *gin.Context) {
	if api.service == nil {
		c.JSON(http.StatusOK, []Event{})
		return
	}
	events, err := api.service.Recent(c.Request.Context())
	if err != nil {
		reportStoreError(c, err)
		c.JSON(http.StatusOK, []Event{})
		return
	}
	c.JSON(http.StatusOK, fromTransportEvents(eventhttpmapper.FromDomainEvents(events)))
}

// Get /db-status
// Report events store connectivity and size
func (api *EventsAPI) DBStatus(c *gin.Context) {
	if api.service == nil {
		c.JSON(http.StatusOK, DBStatusResponse{Connected: false, Error: dbStatusNotConfigured})
		return
	}
	status, err := api.service.Status(c.Request.Context())
	if err != nil {
		reportStoreError(c, err)
		message := dbStatusQueryFailed
		if errors.Is(err, eventapp.ErrRepositoryNotConfigured) {
			message = dbStatusNotConfigured
		}
		c.JSON(http.StatusOK, DBStatusResponse{Connected: false, Error: message})
		return
	}
	count := status.Count
	c.JSON(http.StatusOK, DBStatusResponse{
		Connected:     true,
		Database:      status.Database,
		Table:         status.Table,
		DocumentCount: &count,
	})
}

// reportStoreError hands real store failures to the error-logging middleware.
func reportStoreError(c *gin.Context, err error) {
	if !errors.Is(err, eventapp.ErrRepositoryNotConfigured) {
		_ = c.Error(err)
	}
}
