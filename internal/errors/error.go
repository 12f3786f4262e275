package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryServer Category = "server"
	CategoryExport Category = "export"
	CategoryRender Category = "render"
)

// CLIError is a coded error with an explanation and a hint for the user.
type CLIError struct {
	// Code is a unique error identifier (e.g., "W101").
	Code string

	// Category is the error type (config, server, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Subject names what the error is about, such as a file or a URL path.
	Subject string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Subject != "" {
		msg += " (" + e.Subject + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *CLIError) Unwrap() error {
	return e.Wrapped
}

// ExitCode returns the process exit status for the error: 2 for
// configuration problems, 1 otherwise.
func (e *CLIError) ExitCode() int {
	if e.Category == CategoryConfig {
		return 2
	}
	return 1
}

// WithSubject sets what the error is about.
func (e *CLIError) WithSubject(s string) *CLIError {
	e.Subject = s
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *CLIError) WithSuggestion(s string) *CLIError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *CLIError) WithDetail(d string) *CLIError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *CLIError) Wrap(err error) *CLIError {
	e.Wrapped = err
	return e
}

// New creates a CLIError from a registered error code.
func New(code string) *CLIError {
	template, ok := registry[code]
	if !ok {
		return &CLIError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &CLIError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new CLIError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *CLIError {
	return &CLIError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err in a CLIError with code unless it already is one.
func FromError(err error, code string) *CLIError {
	if err == nil {
		return nil
	}
	var ce *CLIError
	if errors.As(err, &ce) {
		return ce
	}
	return New(code).Wrap(err)
}
