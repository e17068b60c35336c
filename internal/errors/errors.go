// Package errors holds error types shared across rigwizard components.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// MultiError collects several independent failures, typically from a
// shutdown sequence where every step must run regardless of earlier errors.
type MultiError struct {
	Errors []error
}

// Append adds a non-nil error to the collection.
func (m *MultiError) Append(err error) {
	if err == nil {
		return
	}
	m.Errors = append(m.Errors, err)
}

// Error joins the collected messages.
func (m *MultiError) Error() string {
	switch len(m.Errors) {
	case 0:
		return ""
	case 1:
		return m.Errors[0].Error()
	}
	msgs := make([]string, len(m.Errors))
	for i, err := range m.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors occurred: %s", len(m.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// ErrorOrNil returns nil when nothing was collected.
func (m *MultiError) ErrorOrNil() error {
	if m == nil || len(m.Errors) == 0 {
		return nil
	}
	return m
}

// TransientError marks a failure that is worth retrying, such as a
// submission endpoint that timed out or a store that was briefly unavailable.
type TransientError struct {
	Op  string
	Err error
}

// NewTransientError wraps err as retryable.
func NewTransientError(op string, err error) *TransientError {
	return &TransientError{Op: op, Err: err}
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether any error in err's chain is a TransientError.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
