package github

import "errors"

var (
	// ErrNotFound is returned when the searched user doesn't exist.
	ErrNotFound = errors.New("user not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// unexpected status codes).
	ErrNetwork = errors.New("network error")
)
