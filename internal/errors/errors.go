// Package errors wraps errors with stack traces, collects multiple errors and recovers from panics.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
)

// New creates an error carrying a stack trace. The argument may be an error or any value
// convertible to a message. A nil argument returns nil; an error that already carries a stack is returned as is.
func New(val any) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok && ContainsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(val, 1)
}

// Errorf creates a new formatted error with a stack trace. `%w` verbs are preserved.
func Errorf(format string, args ...any) error {
	return goerrors.Wrap(fmt.Errorf(format, args...), 1)
}

// WithStackTrace wraps the given error with a stack trace, if it has none yet.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	if ContainsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(err, 1)
}

// ErrorWithExitCode is used to pass a specific exit code up to main.
type ErrorWithExitCode struct {
	Err      error
	ExitCode int
}

func (err ErrorWithExitCode) Error() string {
	return err.Err.Error()
}

func (err ErrorWithExitCode) Unwrap() error {
	return err.Err
}

// ErrorStack returns the stack traces found in the error chain.
func ErrorStack(err error) string {
	var stacks []string

	for _, err := range UnwrapMultiErrors(err) {
		for err != nil {
			if err, ok := err.(interface{ ErrorStack() string }); ok {
				stacks = append(stacks, err.ErrorStack())
				break
			}

			err = errors.Unwrap(err)
		}
	}

	return strings.Join(stacks, "\n")
}

// ContainsStackTrace reports whether any error in the chain already carries a stack trace.
func ContainsStackTrace(err error) bool {
	for _, err := range UnwrapMultiErrors(err) {
		for err != nil {
			if _, ok := err.(interface{ ErrorStack() string }); ok {
				return true
			}

			err = errors.Unwrap(err)
		}
	}

	return false
}

// IsContextCanceled returns true if the error was caused by context cancellation or deadline.
func IsContextCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Recover recovers from a panic and hands its cause to onPanic. It must be called from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, ok := rec.(error)
		if !ok {
			err = fmt.Errorf("%v", rec) //nolint:err113
		}

		onPanic(goerrors.Wrap(err, 1))
	}
}

// UnwrapMultiErrors flattens nested multi-errors into a slice.
func UnwrapMultiErrors(err error) []error {
	if err == nil {
		return nil
	}

	var (
		queue = []error{err}
		out   []error
	)

	for len(queue) > 0 {
		err := queue[0]
		queue = queue[1:]

		joined := false

		for cur := err; cur != nil; cur = errors.Unwrap(cur) {
			if multi, ok := cur.(interface{ Unwrap() []error }); ok {
				queue = append(queue, multi.Unwrap()...)
				joined = true

				break
			}
		}

		if !joined {
			out = append(out, err)
		}
	}

	return out
}
