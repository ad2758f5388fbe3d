// Package common defines shared constants and sentinel errors used across
// the borelog client layers. Callers should match these with errors.Is.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// Session lifecycle.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoSession    = errors.New("no active session")

	// Request construction.
	ErrInvalidPeriod = errors.New("invalid summary period")
	ErrEmptyQuestion = errors.New("question is required")
)
