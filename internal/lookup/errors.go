// Package lookup implements the title-based fallback lookup against the
// DBLP publication search API, with result caching and error
// normalization.
package lookup

import (
	"errors"
	"fmt"
)

// Common errors returned by the DBLP client.
var (
	// ErrNotFound indicates no acceptable hit for the query.
	ErrNotFound = errors.New("not found in DBLP")

	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("DBLP rate limit exceeded (429)")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with DBLP")

	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("DBLP request timed out")

	// ErrInvalidResponse indicates a response body that failed to parse.
	ErrInvalidResponse = errors.New("invalid response from DBLP")
)

// APIError represents a non-2xx response from the DBLP API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("DBLP API error (status %d): %s", e.StatusCode, e.Message)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}

// IsTimeout returns true if the error indicates a timed-out request.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
