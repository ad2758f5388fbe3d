package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/geofield/borelog/internal/common"
)

// Error is an HTTP error response from the report service, carrying the
// numeric status and an optional server-provided detail message.
type Error struct {
	Op      string
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s failed: status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s failed: status %d", e.Op, e.Status)
}

// Unwrap maps well-known statuses onto the shared sentinels so callers can
// match with errors.Is without importing this package.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}

// StatusOf returns the HTTP status carried by err, or 0 for transport and
// other non-HTTP failures.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsUnauthorized reports whether err is an HTTP 401 response.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}
