package prefs

import (
	"context"
	"errors"
)

// Errors.
var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("prefs: not found")

	// ErrWriteFailed is returned when a backend fails to persist a value.
	ErrWriteFailed = errors.New("prefs: write failed")
)

// Store is an abstract key-value persistence service for user preferences.
// Writes are best-effort from the caller's perspective: the localization
// controller treats a failed Set as a warning, never a fatal error.
type Store interface {
	// Get returns the stored value for key.
	// Returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
