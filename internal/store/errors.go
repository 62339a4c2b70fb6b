package store

import "errors"

// Common store errors. Callers classify failures with errors.Is() and the
// API layer maps them to HTTP status codes.
var (
	// ErrStorageIO is returned when the backing file cannot be read or
	// written (permissions, disk full, path removed). The wrapped error
	// carries the OS-level detail.
	ErrStorageIO = errors.New("storage I/O failure")

	// ErrStorageCorrupt is returned when the backing file exists and has
	// content, but that content is not a valid task list. The file is never
	// repaired or truncated automatically.
	ErrStorageCorrupt = errors.New("storage corrupt")
)
