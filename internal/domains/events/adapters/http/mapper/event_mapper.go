package mapper

import (
	"time"

	eventdomain "github.com/Apurer/action-repo-api/internal/domains/events/domain"
)

// Event represents the transport-level event payload.
type Event struct {
	ID         int64
	Type       string
	Author     string
	ToBranch   string
	FromBranch *string
	Repository string
	Commits    *int
	Action     *string
	Timestamp  time.Time
}

// FromDomainEvent converts a domain event into a transport representation.
func FromDomainEvent(event *eventdomain.Event) Event {
	if event == nil {
		return Event{}
	}
	return Event{
		ID:         event.ID,
		Type:       string(event.Type),
		Author:     event.Author,
		ToBranch:   event.ToBranch,
		FromBranch: event.FromBranch,
		Repository: event.Repository,
		Commits:    event.Commits,
		Action:     event.Action,
		Timestamp:  event.Timestamp,
	}
}

// FromDomainEvents converts a slice of domain events to transport representation.
func FromDomainEvents(events []*eventdomain.Event) []Event {
	result := make([]Event, 0, len(events))
	for _, event := range events {
		result = append(result, FromDomainEvent(event))
	}
	return result
}
