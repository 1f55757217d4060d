package datasource

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingAPIKey means no OpenWeatherMap key was configured. Fatal at
// startup, never retried.
var ErrMissingAPIKey = errors.New("missing OpenWeatherMap API key")

// NotFoundError means a place name could not be resolved, even after the
// geocoding fallback.
type NotFoundError struct {
	City string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("location %q not found", e.City)
}

// UpstreamError is a non-2xx answer from an OpenWeatherMap endpoint.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
}

// IsTimeout reports whether an error is the request budget expiring rather
// than an upstream refusal, so callers can surface "request timed out"
// distinctly.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
