package errors

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// MultiError collects several errors into one.
type MultiError struct {
	inner *multierror.Error
}

// Error implements the error interface.
func (errs *MultiError) Error() string {
	wrapped := errs.WrappedErrors()

	if len(wrapped) == 1 {
		return wrapped[0].Error()
	}

	lines := make([]string, 0, len(wrapped))

	for _, err := range wrapped {
		lines = append(lines, "* "+strings.ReplaceAll(err.Error(), "\n", "\n  "))
	}

	return fmt.Sprintf("%d errors occurred:\n%s", len(wrapped), strings.Join(lines, "\n"))
}

// WrappedErrors returns the collected errors.
func (errs *MultiError) WrappedErrors() []error {
	if errs == nil || errs.inner == nil {
		return nil
	}

	return errs.inner.WrappedErrors()
}

func (errs *MultiError) Unwrap() []error {
	return errs.WrappedErrors()
}

// Len returns the number of collected errors.
func (errs *MultiError) Len() int {
	return len(errs.WrappedErrors())
}

// ErrorOrNil returns nil if no errors were collected.
func (errs *MultiError) ErrorOrNil() error {
	if errs == nil || errs.inner == nil || errs.inner.ErrorOrNil() == nil {
		return nil
	}

	return errs
}

// Append returns a new MultiError with the given errors added. Nil errors are skipped.
func (errs *MultiError) Append(appendErrs ...error) *MultiError {
	var inner *multierror.Error

	if errs != nil {
		inner = errs.inner
	}

	for _, err := range appendErrs {
		if err != nil {
			inner = multierror.Append(inner, err)
		}
	}

	return &MultiError{inner: inner}
}
