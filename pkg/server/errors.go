package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/weblib-dev/weblib/pkg/render"
)

// Sentinel errors for common server error conditions.
var (
	// ErrNilPage is returned when a page function returns neither a page nor an error.
	ErrNilPage = errors.New("server: page function returned no page")

	// ErrServerClosed is returned by Run after a graceful shutdown.
	ErrServerClosed = http.ErrServerClosed
)

// StatusError lets a page function choose the response status. When Page is
// set it is rendered as the response body; otherwise a fallback page for the
// status is sent.
type StatusError struct {
	Code int          // HTTP status code
	Page *render.Page // Optional page to render with the status
	Err  error        // Underlying error, may be nil
}

// Error returns the error message.
func (e *StatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("server: status %d", e.Code)
	}
	return fmt.Sprintf("server: status %d: %v", e.Code, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// NotFound returns a StatusError with status 404.
func NotFound(page *render.Page) *StatusError {
	return &StatusError{Code: http.StatusNotFound, Page: page}
}

// Error returns a StatusError with the given code wrapping err.
func Error(code int, err error) *StatusError {
	return &StatusError{Code: code, Err: err}
}
