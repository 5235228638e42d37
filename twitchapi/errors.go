package twitchapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ConfigError indicates the client was constructed with unusable settings,
// such as an empty RapidAPI key. It is always detected before any request
// is sent.
type ConfigError struct {
	Reason string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid twitch client configuration: %s", e.Reason)
}

// ValidationError indicates a required lookup parameter was missing or
// blank. No network traffic happens for a call that fails validation.
type ValidationError struct {
	Param string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Param)
}

// APIError represents a failed gateway request. Either the HTTP round trip
// itself failed (Err carries the transport cause and StatusCode is zero),
// or the gateway answered with a non-2xx status (StatusCode is set and
// Body holds the start of the response).
type APIError struct {
	StatusCode int
	Message    string
	Body       string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("twitch API error: status %d: %s", e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("twitch API error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("twitch API error: %s", e.Message)
}

// Unwrap returns the transport cause, if any
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates a rejected RapidAPI key
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the error indicates request throttling. The
// client never waits or retries on its own; callers decide how to back
// off.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsTimeout checks if the request failed because the configured timeout
// or a context deadline elapsed before the gateway answered.
func (e *APIError) IsTimeout() bool {
	if e.Err == nil {
		return false
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// DecodeError indicates the gateway reported success but the response
// body was not valid JSON. It is kept distinct from APIError so callers
// can tell a malformed payload apart from a failed request.
type DecodeError struct {
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode API response: %v", e.Err)
}

// Unwrap returns the underlying decoding error
func (e *DecodeError) Unwrap() error {
	return e.Err
}
