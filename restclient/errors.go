package restclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the transport-level error carried between the transport and the
// error-mapping policy. It exposes the HTTP status and raw body when a
// response was received, and the underlying cause when the call never
// completed.
type Error struct {
	// StatusCode is the HTTP status code, 0 for connection-level failures.
	StatusCode int
	// Message describes the failure.
	Message string
	// Body is the raw response body, nil when no response was received.
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("restclient: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("restclient: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a transport error for a timed-out call.
func NewTimeoutError(err error) *Error {
	return &Error{Message: "request timed out", Err: err}
}

// NewConnectionError creates a transport error for a failed connection.
func NewConnectionError(err error) *Error {
	return &Error{Message: err.Error(), Err: err}
}

// Classify converts a non-2xx HTTP status into a transport error carrying
// the status and raw body. Returns nil for 2xx status codes.
func Classify(statusCode int, body []byte) *Error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	return &Error{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
		Body:       body,
	}
}

// StatusOf extracts the HTTP status from a transport error in err's chain.
// The second result is false when err carries no HTTP response.
func StatusOf(err error) (int, bool) {
	var terr *Error
	if errors.As(err, &terr) && terr.StatusCode > 0 {
		return terr.StatusCode, true
	}
	return 0, false
}

// IsUnauthorized reports whether err is a transport error with HTTP 401.
func IsUnauthorized(err error) bool {
	status, ok := StatusOf(err)
	return ok && status == http.StatusUnauthorized
}
