// Package apperr defines the application error taxonomy. Services return
// *Error values; the HTTP layer maps kinds to status codes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindExternal
	KindAuth
)

// String returns the API error code for a kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "INVALID_FIELD"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindExternal:
		return "EXTERNAL_ERROR"
	case KindAuth:
		return "UNAUTHORIZED"
	default:
		return "INTERNAL_ERROR"
	}
}

// Error carries a kind, a human-readable message, and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface for error chaining.
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a new validation error (malformed or missing fields).
func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound returns a new not-found error (referenced entity absent).
func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict returns a new conflict error (duplicate username/email).
func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

// External wraps a collaborator failure (OAuth provider, AI API).
func External(message string, err error) error {
	return &Error{Kind: KindExternal, Message: message, Err: err}
}

// Auth returns a new authentication error (bad credentials).
func Auth(message string) error {
	return &Error{Kind: KindAuth, Message: message}
}

// KindOf returns the kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// Message returns the human-readable message of err, or a generic fallback.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
