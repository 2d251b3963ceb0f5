package migrations

import (
	"time"

	"gorm.io/gorm"
)

// EventsTable is the table holding repository events.
const EventsTable = "events"

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&eventRecord{},
	)
}

// Event schema mirrors the events Postgres adapter. The four secondary
// indexes back the dashboard queries: newest first, by type, by repository
// and by author.
type eventRecord struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	EventType  string    `gorm:"column:event_type;type:varchar(32);not null;index:idx_events_event_type"`
	Author     string    `gorm:"column:author;type:varchar(255);not null;index:idx_events_author"`
	ToBranch   string    `gorm:"column:to_branch;type:varchar(255);not null"`
	FromBranch *string   `gorm:"column:from_branch;type:varchar(255)"`
	Timestamp  time.Time `gorm:"column:timestamp;not null;index:idx_events_timestamp,sort:desc"`
	Repository string    `gorm:"column:repository;type:varchar(255);not null;index:idx_events_repository"`
	Commits    *int      `gorm:"column:commits"`
	Action     *string   `gorm:"column:action;type:varchar(100)"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (eventRecord) TableName() string { return EventsTable }
