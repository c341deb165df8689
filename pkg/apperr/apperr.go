package apperr

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories the API can report.
type Kind string

const (
	KindValidation        Kind = "VALIDATION_ERROR"
	KindDuplicateIdentity Kind = "DUPLICATE_IDENTITY"
	KindNotFound          Kind = "NOT_FOUND"
	KindInvalidOrExpired  Kind = "INVALID_OR_EXPIRED_CODE"
	KindExternalService   Kind = "EXTERNAL_SERVICE_ERROR"
	KindAuth              Kind = "AUTH_ERROR"
)

// Error carries a kind and a short message safe to show to the end user.
// The wrapped cause is for server-side logs only.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds an error of the given kind with a user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap is New with an internal cause attached.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf extracts the kind from err, defaulting unknown errors to
// EXTERNAL_SERVICE_ERROR so nothing internal leaks past the boundary.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindExternalService
}

// MessageOf returns the user-facing message, or a generic one for errors
// that never got a kind.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong. Please try again."
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
