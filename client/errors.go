package client

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAuthToken means the session carried no bearer credential. Raised
// before any network call is made.
var ErrNoAuthToken = errors.New("no auth token in session")

// ErrMissingPaymentContext means Confirm was called without a stored
// payment intent id.
var ErrMissingPaymentContext = errors.New("no payment intent to confirm")

// PreconditionError reports invalid input caught before any network
// call, suitable for a form-level message.
type PreconditionError struct {
	Field  string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ServiceUnavailableError means an external provider (meet link
// generation, payment processor) signalled it is temporarily down.
// Callers should suggest retrying later.
type ServiceUnavailableError struct {
	Op  string
	Err error
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("%s: service unavailable: %v", e.Op, e.Err)
}

func (e *ServiceUnavailableError) Unwrap() error { return e.Err }

// TransportError wraps any network or server failure that is not one of
// the more specific kinds above.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsPrecondition reports whether err was raised before any network call.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.Is(err, ErrNoAuthToken) ||
		errors.Is(err, ErrMissingPaymentContext) ||
		errors.As(err, &pe)
}

// IsServiceUnavailable checks both the structured error kind and known
// substrings in the message, since the condition can propagate through
// either channel.
func IsServiceUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var se *ServiceUnavailableError
	if errors.As(err, &se) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "503") || strings.Contains(msg, "service unavailable")
}
