package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/action-repo-api/internal/domains/events/domain"
	"github.com/Apurer/action-repo-api/internal/domains/events/ports"
)

var (
	_ ports.Repository = (*Repository)(nil)
	_ ports.Reader     = (*Repository)(nil)
)

// Repository is an in-memory events persistence adapter.
type Repository struct {
	mu      sync.RWMutex
	events  []*domain.Event
	nextID  int64
	schemas int
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) EnsureSchema(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas++
	return nil
}

func (r *Repository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.nextID = 0
	return nil
}

func (r *Repository) InsertMany(_ context.Context, events []*domain.Event) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range events {
		if e == nil {
			return 0, errors.New("event is nil")
		}
	}
	for _, e := range events {
		clone := *e
		r.nextID++
		clone.ID = r.nextID
		r.events = append(r.events, &clone)
	}
	return len(events), nil
}

func (r *Repository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.events)), nil
}

// List returns stored events in insertion order.
func (r *Repository) List(_ context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		clone := *e
		list = append(list, &clone)
	}
	return list, nil
}

// ListRecent returns up to limit events, newest timestamp first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*domain.Event, error) {
	list, _ := r.List(ctx)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Timestamp.After(list[j].Timestamp)
	})
	if limit >= 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// SchemaRuns reports how many times EnsureSchema was called.
func (r *Repository) SchemaRuns() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schemas
}
