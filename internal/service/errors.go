package service

import "errors"

// Common service errors - sentinel errors callers check with errors.Is().
//
// Error handling principles:
//  1. Service methods return sentinel errors for expected error conditions
//  2. Store errors propagate unmodified in kind (the API layer maps them)
//  3. Cache failures never appear here at all; they are absorbed inside the
//     cache component and manifest only as misses
var (
	// ErrTaskNotFound indicates an update targeted an ID no task carries.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")
)
