package api

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired means the operation needs a bearer credential and
	// none is currently held. Raised before any network I/O.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound means the server answered 404 for the requested resource.
	ErrNotFound = errors.New("not found")
)

// APIError is a server-side failure: the backend responded, but with a
// non-2xx status or a success:false envelope. Message is the
// human-readable text from the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// NetworkError means no response was received at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }
