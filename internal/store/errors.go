package store

import "errors"

var (
	// ErrQuotaExceeded is returned when a serialized aggregate save would
	// exceed the configured storage quota.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
)
