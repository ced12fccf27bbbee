package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that knows the HTTP status and error code it should be rendered with.
type HTTPError struct {
	Code       int    `json:"error_code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose error code mirrors the HTTP status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Code: status, Message: message, StatusCode: status}
}

// ErrInternalServerError is what unmapped failures are rendered as.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")

// AsHTTPError extracts an HTTPError from err's chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
