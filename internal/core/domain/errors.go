package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSettings indicates a configuration value failed validation.
	ErrInvalidSettings = errors.New("invalid settings")
)

// Registry names used in errors, logs and metrics.
const (
	RegistryICTRP = "ictrp"
	RegistryCTGov = "ctgov"
)

// RegistryHTTPError is returned when a registry answers with a non-2xx status.
type RegistryHTTPError struct {
	Registry   string
	StatusCode int
	URL        string
}

func (e *RegistryHTTPError) Error() string {
	return fmt.Sprintf("%s: HTTP error! status: %d", e.Registry, e.StatusCode)
}

// RegistryParseError is returned when a registry body is not well-formed XML or JSON.
type RegistryParseError struct {
	Registry string
	Err      error
}

func (e *RegistryParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse response: %v", e.Registry, e.Err)
}

func (e *RegistryParseError) Unwrap() error {
	return e.Err
}

// RegistryNetworkError is returned when the transport fails before a response arrives.
// Timeout is set when the failure was a deadline.
type RegistryNetworkError struct {
	Registry string
	Timeout  bool
	Err      error
}

func (e *RegistryNetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: request timeout: %v", e.Registry, e.Err)
	}
	return fmt.Sprintf("%s: network error: %v", e.Registry, e.Err)
}

func (e *RegistryNetworkError) Unwrap() error {
	return e.Err
}

// IsRegistryNotFound checks if the error is an HTTP 404 from a registry.
func IsRegistryNotFound(err error) bool {
	var httpErr *RegistryHTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsRegistryTimeout checks if the error is a transport deadline.
func IsRegistryTimeout(err error) bool {
	var netErr *RegistryNetworkError
	if errors.As(err, &netErr) {
		return netErr.Timeout
	}
	return false
}
