package errx

import (
	"errors"
	"fmt"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage describes a missing key in Redis.
	RedisNotFoundMessage = "record not found"
)

// Sentinel errors for the recoverable conditions the conversation core
// handles by re-routing rather than failing the turn.
var (
	// ErrCustomerNotFound signals a phone number or customer id with no
	// matching record in the store.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrMissingCustomer signals an operation that needs a verified customer
	// before it can run.
	ErrMissingCustomer = errors.New("customer id not set")
	// ErrMissingAmount signals an operation that needs a loan amount before
	// it can run.
	ErrMissingAmount = errors.New("loan amount not set")
	// ErrCollaboratorUnavailable signals a degraded external dependency; the
	// caller falls back to deterministic behaviour.
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}
