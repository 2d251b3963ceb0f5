package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Type is the kind of repository activity an event records.
type Type string

const (
	TypePush        Type = "PUSH"
	TypePullRequest Type = "PULL_REQUEST"
	TypeMerge       Type = "MERGE"
)

var (
	ErrUnknownType      = errors.New("unknown event type")
	ErrEmptyAuthor      = errors.New("author is required")
	ErrEmptyToBranch    = errors.New("to_branch is required")
	ErrEmptyRepository  = errors.New("repository is required")
	ErrMissingCommits   = errors.New("push events require a non-negative commit count")
	ErrMissingAction    = errors.New("pull request and merge events require an action")
	ErrMissingTimestamp = errors.New("timestamp is required")
)

// Event is a single repository activity record.
type Event struct {
	ID         int64
	Type       Type
	Author     string
	ToBranch   string
	FromBranch *string
	Timestamp  time.Time
	Repository string
	Commits    *int
	Action     *string
}

// Validate checks the shared fields plus the type-specific ones.
func (e *Event) Validate() error {
	switch e.Type {
	case TypePush:
		if e.Commits == nil || *e.Commits < 0 {
			return ErrMissingCommits
		}
	case TypePullRequest, TypeMerge:
		if e.Action == nil || strings.TrimSpace(*e.Action) == "" {
			return ErrMissingAction
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, e.Type)
	}
	if strings.TrimSpace(e.Author) == "" {
		return ErrEmptyAuthor
	}
	if strings.TrimSpace(e.ToBranch) == "" {
		return ErrEmptyToBranch
	}
	if strings.TrimSpace(e.Repository) == "" {
		return ErrEmptyRepository
	}
	if e.Timestamp.IsZero() {
		return ErrMissingTimestamp
	}
	return nil
}

// SampleEvents returns the fixture events, timestamped relative to now.
func SampleEvents(now time.Time) []*Event {
	return []*Event{
		{
			Type:       TypePush,
			Author:     "john_doe",
			ToBranch:   "main",
			Timestamp:  now,
			Repository: "sample-repo",
			Commits:    ptr(3),
		},
		{
			Type:       TypePullRequest,
			Author:     "jane_smith",
			ToBranch:   "main",
			FromBranch: ptr("feature/new-feature"),
			Timestamp:  now.Add(-time.Hour),
			Repository: "sample-repo",
			Action:     ptr("opened"),
		},
		{
			Type:       TypeMerge,
			Author:     "bob_johnson",
			ToBranch:   "main",
			FromBranch: ptr("hotfix/critical-bug"),
			Timestamp:  now.Add(-2 * time.Hour),
			Repository: "sample-repo",
			Action:     ptr("merged"),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
