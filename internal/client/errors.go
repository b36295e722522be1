package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// APIError represents an API error with HTTP status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// IsRetryableError checks if an error is worth retrying. Typed checks
// first, with a string fallback only for untyped errors from SDKs.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		// The run's deadline is the caller's to handle, not ours to retry.
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 500, 502, 503, 504:
			return true
		}
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	untyped := []string{
		"429", "500", "502", "503", "504",
		"rate limit",
		"connection refused",
		"connection reset",
		"no such host",
		"unavailable",
		"resource_exhausted",
	}
	for _, pattern := range untyped {
		if strings.Contains(msg, pattern) {
			return true
		}
	}

	return false
}
