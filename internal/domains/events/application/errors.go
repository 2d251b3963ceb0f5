package application

import "errors"

// ErrRepositoryNotConfigured is returned when the service has no repository.
var ErrRepositoryNotConfigured = errors.New("event repository not configured")
