package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying transition failures via errors.Is.
var (
	// ErrIllegalTransition indicates a recognized status that is not
	// reachable from the order's current status.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrUnknownStatus indicates a status name that is not one of the
	// recognized lifecycle values.
	ErrUnknownStatus = errors.New("unknown status")
)

// IllegalTransitionError is returned when a requested status change is not
// permitted by the status graph. It carries both statuses so callers can
// explain why the action is unavailable rather than show a generic failure.
type IllegalTransitionError struct {
	From Status
	To   Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for the given pair.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

// Error implements the error interface.
func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move order from %s to %s", ErrIllegalTransition, e.From, e.To)
}

// Unwrap returns the sentinel ErrIllegalTransition for errors.Is support.
func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// UnknownStatusError is returned when parsing a status name that is not one
// of the recognized lifecycle values. This is a caller/input error and is
// never retried.
type UnknownStatusError struct {
	Value string
}

// NewUnknownStatusError creates an UnknownStatusError for the given input.
func NewUnknownStatusError(value string) *UnknownStatusError {
	return &UnknownStatusError{Value: value}
}

// Error implements the error interface.
func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("%s: %q is not a recognized order status", ErrUnknownStatus, e.Value)
}

// Unwrap returns the sentinel ErrUnknownStatus for errors.Is support.
func (e *UnknownStatusError) Unwrap() error {
	return ErrUnknownStatus
}
