// Package domain defines core types, interfaces, and errors for the shop order core.
package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Each typed error below wraps exactly one kind so callers can
// match the class with errors.As and the kind with errors.Is.
var (
	ErrMissingCredentials   = errors.New("missing credentials")
	ErrMalformedCredentials = errors.New("malformed credentials")
	ErrInvalidToken         = errors.New("invalid token")

	ErrUnknownCustomer   = errors.New("unknown customer")
	ErrUnknownCartEntry  = errors.New("unknown cart entry")
	ErrCartEntryNotOwned = errors.New("cart entry not owned")
	ErrUnknownProduct    = errors.New("unknown product")
	ErrUnknownOrder      = errors.New("unknown order")
	ErrOrderNotOwned     = errors.New("order not owned")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

// UnauthorizedError indicates the caller could not be authenticated.
type UnauthorizedError struct {
	Kind    error
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }
func (e *UnauthorizedError) Unwrap() error { return e.Kind }

// NotFoundError indicates a resource was not found.
type NotFoundError struct {
	Kind    error
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
func (e *NotFoundError) Unwrap() error { return e.Kind }

// AccessDeniedError indicates insufficient permissions.
type AccessDeniedError struct {
	Kind    error
	Message string
}

func (e *AccessDeniedError) Error() string { return e.Message }
func (e *AccessDeniedError) Unwrap() error { return e.Kind }

// ValidationError indicates invalid input.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return e.Kind }

// ConflictError indicates a conflict (e.g., duplicate resource).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ErrUnauthorized creates an UnauthorizedError of the given kind.
func ErrUnauthorized(kind error, format string, args ...interface{}) *UnauthorizedError {
	return &UnauthorizedError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrNotFoundKind creates a NotFoundError of the given kind.
func ErrNotFoundKind(kind error, format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrAccessDenied creates an AccessDeniedError of the given kind.
func ErrAccessDenied(kind error, format string, args ...interface{}) *AccessDeniedError {
	return &AccessDeniedError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidationKind creates a ValidationError of the given kind.
func ErrValidationKind(kind error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrConflict creates a ConflictError with a formatted message.
func ErrConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is a NotFoundError of any kind.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// KindOf returns the error kind wrapped by a typed domain error, or nil.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrMissingCredentials, ErrMalformedCredentials, ErrInvalidToken,
		ErrUnknownCustomer, ErrUnknownCartEntry, ErrCartEntryNotOwned,
		ErrUnknownProduct, ErrUnknownOrder, ErrOrderNotOwned, ErrInvalidQuantity,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
