// Package apperr classifies failures so handlers can map them onto the
// response envelope without inspecting driver or adapter errors.
package apperr

import (
	"errors"
	"net/http"
)

// Kind is the classification of an error for handling purposes.
type Kind int

const (
	// KindServer is any failure not otherwise classified.
	KindServer Kind = iota
	KindInvalid
	KindNotFound
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "server_error"
	}
}

// Error wraps an underlying error with its classification and the message
// that is safe to show to callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Invalid(message string) error {
	return &Error{Kind: KindInvalid, Message: message}
}

// InvalidWrap classifies err as invalid input while keeping it for logs.
func InvalidWrap(err error, message string) error {
	return &Error{Kind: KindInvalid, Message: message, Err: err}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Server marks err as an unexpected failure. A nil err stays nil.
func Server(err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Kind: KindServer, Message: "Server error", Err: err}
}

// KindOf returns the classification of err. Unclassified errors are
// server errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindServer
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

func IsInvalid(err error) bool {
	return err != nil && KindOf(err) == KindInvalid
}

// Message returns the caller-facing text for err. Server errors never
// expose their cause.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != KindServer && ae.Message != "" {
		return ae.Message
	}
	return "Server error"
}

func StatusCode(k Kind) int {
	switch k {
	case KindInvalid:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
