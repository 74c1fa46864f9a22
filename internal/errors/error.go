package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryBundle Category = "bundle"
	CategoryIO     Category = "io"
	CategoryDev    Category = "dev"
	CategoryCLI    Category = "cli"
)

// TuonoError is a structured error with a code, suggestion, and documentation.
type TuonoError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (config, bundle, io, dev, cli).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *TuonoError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TuonoError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *TuonoError) WithDetail(d string) *TuonoError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *TuonoError) WithSuggestion(s string) *TuonoError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *TuonoError) Wrap(err error) *TuonoError {
	e.Wrapped = err
	return e
}

// New creates a TuonoError from a registered error code.
func New(code string) *TuonoError {
	template, ok := registry[code]
	if !ok {
		return &TuonoError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &TuonoError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new TuonoError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *TuonoError {
	return &TuonoError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a TuonoError.
func FromError(err error, code string) *TuonoError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*TuonoError); ok {
		return te
	}
	return New(code).Wrap(err)
}
