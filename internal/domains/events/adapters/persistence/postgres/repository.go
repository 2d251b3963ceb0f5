package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Apurer/action-repo-api/internal/domains/events/domain"
	"github.com/Apurer/action-repo-api/internal/domains/events/ports"
	"github.com/Apurer/action-repo-api/internal/platform/migrations"
)

var (
	_ ports.Repository = (*Repository)(nil)
	_ ports.Reader     = (*Repository)(nil)
)

// Repository persists events in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type eventRecord struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	EventType  string    `gorm:"column:event_type"`
	Author     string    `gorm:"column:author"`
	ToBranch   string    `gorm:"column:to_branch"`
	FromBranch *string   `gorm:"column:from_branch"`
	Timestamp  time.Time `gorm:"column:timestamp"`
	Repository string    `gorm:"column:repository"`
	Commits    *int      `gorm:"column:commits"`
	Action     *string   `gorm:"column:action"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (eventRecord) TableName() string { return migrations.EventsTable }

// EnsureSchema creates the events table and its indexes.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return migrations.Run(r.db.WithContext(ctx))
}

// Reset truncates the events table and restarts its id sequence.
func (r *Repository) Reset(ctx context.Context) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	stmt := "TRUNCATE TABLE " + pq.QuoteIdentifier(migrations.EventsTable) + " RESTART IDENTITY"
	return r.db.WithContext(ctx).Exec(stmt).Error
}

// InsertMany stores all events in a single statement.
func (r *Repository) InsertMany(ctx context.Context, events []*domain.Event) (int, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}
	records := make([]eventRecord, 0, len(events))
	for _, e := range events {
		if e == nil {
			return 0, errors.New("event is nil")
		}
		records = append(records, toRecord(e))
	}
	result := r.db.WithContext(ctx).Create(&records)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

// Count returns the number of stored events.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&eventRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListRecent returns up to limit events, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*domain.Event, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []eventRecord
	if err := r.db.WithContext(ctx).Order("timestamp DESC, id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	events := make([]*domain.Event, 0, len(records))
	for i := range records {
		events = append(events, records[i].toDomain())
	}
	return events, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres event repository not configured")
	}
	return nil
}

func toRecord(e *domain.Event) eventRecord {
	return eventRecord{
		ID:         e.ID,
		EventType:  string(e.Type),
		Author:     e.Author,
		ToBranch:   e.ToBranch,
		FromBranch: e.FromBranch,
		Timestamp:  e.Timestamp,
		Repository: e.Repository,
		Commits:    e.Commits,
		Action:     e.Action,
	}
}

func (r eventRecord) toDomain() *domain.Event {
	return &domain.Event{
		ID:         r.ID,
		Type:       domain.Type(r.EventType),
		Author:     r.Author,
		ToBranch:   r.ToBranch,
		FromBranch: r.FromBranch,
		Timestamp:  r.Timestamp,
		Repository: r.Repository,
		Commits:    r.Commits,
		Action:     r.Action,
	}
}
