package fff

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrFFF is the base kind shared by every error this package returns.
	ErrFFF = errors.New("fff API error")
	// ErrClientClosed indicates the client was used after Close
	ErrClientClosed = errors.New("fff: client is closed")
)

// APIError represents a non-2xx, non-404 response from the API
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("fff API error: status %d: %s", e.StatusCode, e.Message)
}

// Is makes every APIError match ErrFFF
func (e *APIError) Is(target error) bool {
	return target == ErrFFF
}

// IsServerError checks if the error is a 5xx response
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// NotFoundError reports a missing resource.
//
// The client reports 404 responses as a nil result rather than with this
// error; it exists for callers that prefer to turn absence into an error.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("fff: %s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrFFF
}

// InvalidIdentifierError indicates an identifier failed local validation.
// No request is sent when this error is returned.
type InvalidIdentifierError struct {
	Resource string
	Value    string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("fff: invalid %s number %q: must be a positive integer", e.Resource, e.Value)
}

func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrFFF
}

// ConnectionError indicates the request never produced a response, either
// because it timed out or because the host could not be reached.
type ConnectionError struct {
	URL     string
	Timeout bool
	Err     error
}

func (e *ConnectionError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("fff: timeout connecting to %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fff: unable to connect to %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func (e *ConnectionError) Is(target error) bool {
	return target == ErrFFF
}

// MalformedResponseError indicates a successful response whose body is not
// the expected JSON.
type MalformedResponseError struct {
	URL    string
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fff: malformed response from %s: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("fff: malformed response from %s: %s", e.URL, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrFFF
}

// IsTimeout reports whether err is a ConnectionError caused by a timeout.
func IsTimeout(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr) && connErr.Timeout
}

// IsInvalidIdentifier reports whether err comes from local identifier validation.
func IsInvalidIdentifier(err error) bool {
	var idErr *InvalidIdentifierError
	return errors.As(err, &idErr)
}
