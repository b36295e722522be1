package resolver

import (
	"errors"
	"fmt"
)

// ErrTimeout indicates the backend did not answer within the configured
// request timeout.
var ErrTimeout = errors.New("request timed out")

// ErrEmptyResponse indicates the backend answered with neither text nor
// operation calls.
var ErrEmptyResponse = errors.New("empty response from model")

// RequestFailedError wraps a transport-level failure from the backend.
type RequestFailedError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestFailedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("request failed (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed: %s", e.Message)
}

func (e *RequestFailedError) Unwrap() error {
	return e.Err
}
