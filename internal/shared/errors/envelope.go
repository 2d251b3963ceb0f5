// Package errors provides the failure envelope shared by every HTTP endpoint.
package errors

import (
	"fmt"
	"net/http"
)

// Envelope is the failure body: {"success": false, "message": "..."}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// APIError pairs an HTTP status with the client-facing message.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e APIError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// Envelope renders the error as a failure envelope.
func (e APIError) Envelope() Envelope {
	return Envelope{Success: false, Message: e.Message}
}

var (
	// ErrUserNotFound is returned for unknown or unparsable user ids.
	ErrUserNotFound = APIError{Status: http.StatusNotFound, Message: "User not found"}

	// ErrUserInputRequired is returned when name or email is missing.
	ErrUserInputRequired = APIError{Status: http.StatusBadRequest, Message: "Name and email are required"}

	// ErrEndpointNotFound is returned for unmatched routes.
	ErrEndpointNotFound = APIError{Status: http.StatusNotFound, Message: "Endpoint not found"}

	// ErrInternal hides any uncaught failure behind a fixed message.
	ErrInternal = APIError{Status: http.StatusInternalServerError, Message: "Something went wrong!"}
)
