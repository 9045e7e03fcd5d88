package workout

import (
	"errors"
	"fmt"
)

var (
	ErrExerciseBusy     = errors.New("exercise has an action in flight")
	ErrExerciseArchived = errors.New("exercise is archived")
	ErrSessionStarted   = errors.New("session already started")
	ErrUnknownExercise  = errors.New("exercise not in worklist")
)

// ValidationError is returned before any persistence call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation: %s", e.Reason)
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// TransportError wraps any failure of a store round-trip.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError is reported by a store that does not recognize an id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s [%s] not found", e.Resource, e.ID)
}

func transportErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var te *TransportError
	if errors.As(err, &te) {
		return err
	}
	return &TransportError{Op: op, Err: err}
}
