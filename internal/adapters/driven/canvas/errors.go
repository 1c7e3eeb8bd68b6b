package canvas

import (
	"errors"
	"fmt"
	"time"
)

// Canvas-specific errors.
var (
	// ErrInvalidCourse indicates a non-positive course ID.
	ErrInvalidCourse = errors.New("canvas: invalid course id")

	// ErrPaginationLoop indicates a Link header pointed back at a page
	// that was already fetched.
	ErrPaginationLoop = errors.New("canvas: pagination loop detected")
)

// RateLimitError represents a throttled request.
type RateLimitError struct {
	RetryAt   time.Time
	Remaining float64
}

func (e *RateLimitError) Error() string {
	if e.RetryAt.IsZero() {
		return "canvas: rate limit exceeded"
	}
	return fmt.Sprintf("canvas: rate limit exceeded, retry after %s", e.RetryAt.Format(time.RFC3339))
}

// APIError represents a Canvas API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("canvas: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

// IsForbidden checks if the error indicates a forbidden resource.
func IsForbidden(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 403
	}
	return false
}
