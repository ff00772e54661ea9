package apperror

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or out-of-range input. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing referenced resource.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// InvalidStateError reports an operation not permitted in the current
// lifecycle state (cancel an already-cancelled subscription, refund a
// non-completed transaction).
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

func InvalidStatef(format string, args ...interface{}) *InvalidStateError {
	return &InvalidStateError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a referential conflict, e.g. deleting a plan that
// still has active subscriptions.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func Conflictf(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ErrEntitlementExhausted signals a deduction attempt with zero remaining
// sessions. It is an expected outcome, not a system fault; callers deny
// the billable action.
var ErrEntitlementExhausted = errors.New("subscription has no remaining sessions")

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsInvalidState(err error) bool {
	var target *InvalidStateError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
