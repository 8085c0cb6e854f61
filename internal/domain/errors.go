// Package domain provides shared domain-level error sentinels.
package domain

import "errors"

// Shared error sentinels used across services and the HTTP layer.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrConflict indicates a state conflict (e.g. duplicate creation).
	ErrConflict = errors.New("conflict")
)
