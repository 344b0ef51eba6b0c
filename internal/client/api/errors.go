package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ethiocareer/careercli/internal/common"
)

// Error is a non-2xx API response.
type Error struct {
	Status  int
	Method  string
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

// Unwrap maps the status class to a sentinel.
func (e *Error) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case e.Status == http.StatusForbidden:
		return common.ErrorForbidden
	case e.Status == http.StatusNotFound:
		return common.ErrorNotFound
	case e.Status == http.StatusBadRequest, e.Status == http.StatusUnprocessableEntity:
		return common.ErrorValidation
	case e.Status >= 500:
		return common.ErrUnavailable
	default:
		return nil
	}
}

// ServerMessage returns the message the server attached to err, if any.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// StatusCode returns the HTTP status of err, or 0 for non-API errors.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
