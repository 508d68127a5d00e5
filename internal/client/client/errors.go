package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadResponse  = errors.New("malformed server response")
)

// APIError is a request the server understood and refused, e.g. a 400 with
// a message to show the user.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api error: %d: %s", e.Status, e.Message)
}

// mapStatus converts a non-success HTTP status into the package's errors.
func mapStatus(status int, message string) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case status >= http.StatusInternalServerError,
		status == http.StatusRequestTimeout,
		status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrUnavailable, status)
	default:
		return &APIError{Status: status, Message: message}
	}
}
