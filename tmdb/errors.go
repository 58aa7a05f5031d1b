package tmdb

import (
	"fmt"
	"net/http"
)

// ErrorCategory classifies a failed API interaction by status-code range.
type ErrorCategory string

// Categories carried by StatusError.
const (
	CategoryClient ErrorCategory = "client error"
	CategoryServer ErrorCategory = "server error"
	CategoryOther  ErrorCategory = "other error"
)

// StatusError reports a non-success HTTP status from the API.
type StatusError struct {
	Category ErrorCategory
	Code     int
	Status   string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: %s: %d %s", e.Category, e.Code, e.Status)
}

// IsClientError reports whether the status falls in the 4xx range.
func (e *StatusError) IsClientError() bool {
	return e.Category == CategoryClient
}

// IsServerError reports whether the status falls at or above 500.
func (e *StatusError) IsServerError() bool {
	return e.Category == CategoryServer
}

// TransportError wraps a network-level failure: connection refused, DNS
// resolution, timeout. Callers treat it as fatal, the same as a StatusError.
type TransportError struct {
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("tmdb: transport error: %v", e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// CheckStatus classifies an HTTP status code. Codes in [200,400) succeed.
// The server-error range is checked before the client-error range so a code
// at or above 500 always classifies as a server error; anything left below
// 200 falls out as an other error.
func CheckStatus(code int) error {
	switch {
	case code >= http.StatusOK && code < http.StatusBadRequest:
		return nil
	case code >= http.StatusInternalServerError:
		return &StatusError{Category: CategoryServer, Code: code, Status: statusLabel(code)}
	case code >= http.StatusBadRequest:
		return &StatusError{Category: CategoryClient, Code: code, Status: statusLabel(code)}
	default:
		return &StatusError{Category: CategoryOther, Code: code, Status: statusLabel(code)}
	}
}

func statusLabel(code int) string {
	if label := http.StatusText(code); label != "" {
		return label
	}
	return "Unknown Status"
}
