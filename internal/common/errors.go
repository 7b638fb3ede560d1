package common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced by the service layer so handlers can
// map them onto HTTP status codes without string matching.
type ErrorKind int

const (
	// KindInvalidRequest marks a structurally or semantically invalid client
	// request. Always recoverable by correcting the input.
	KindInvalidRequest ErrorKind = iota
	// KindNotFound marks a reference to an entity that does not exist.
	KindNotFound
	// KindConflict marks a valid request the current state forbids, e.g. an
	// order line for a sold-out product.
	KindConflict
	// KindInternal marks persistence or other failures not attributable to
	// caller input.
	KindInternal
)

// AppError carries an ErrorKind alongside a caller-facing message.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewInvalidRequest builds an InvalidRequest error.
func NewInvalidRequest(format string, args ...any) *AppError {
	return &AppError{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound builds a NotFound error.
func NewNotFound(format string, args ...any) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewConflict builds a Conflict error.
func NewConflict(format string, args ...any) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// NewInternal wraps an unexpected failure behind a generic message so internal
// details never leak to clients.
func NewInternal(operation string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: fmt.Sprintf("failed to %s", operation), Err: err}
}

// KindOf extracts the ErrorKind from err, defaulting to KindInternal for
// errors raised outside the service layer.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
