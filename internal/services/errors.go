package services

import "errors"

// Kind classifies a service-level failure into one of the machine-readable
// categories the API layer translates into protocol errors. Expected negative
// outcomes are returned as values of this taxonomy; only truly unexpected
// failures fall through as KindInternal.
type Kind string

const (
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindValidation      Kind = "VALIDATION_ERROR"
	KindConflict        Kind = "CONFLICT"
	KindNotFound        Kind = "NOT_FOUND"
	KindUpstream        Kind = "UPSTREAM_UNAVAILABLE"
	KindInternal        Kind = "INTERNAL_ERROR"
)

// Error is a service-level error carrying a kind and a user-safe message.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// Error returns the user-safe message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewError creates a service error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates a service error of the given kind wrapping a cause. The
// cause is for server-side logs only and never reaches the caller's message.
func WrapError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal
// for anything that is not a service error.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
