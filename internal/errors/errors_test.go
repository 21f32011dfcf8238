package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeepsExistingStack(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	require.Error(t, err)
	assert.True(t, errors.ContainsStackTrace(err))

	again := errors.New(err)
	assert.Same(t, err, again)

	assert.NoError(t, errors.New(nil))
	assert.Contains(t, errors.ErrorStack(err), "errors_test.go")
}

func TestMultiError(t *testing.T) {
	t.Parallel()

	var errs *errors.MultiError

	require.NoError(t, errs.ErrorOrNil())

	errs = errs.Append(nil)
	require.NoError(t, errs.ErrorOrNil())

	first := fmt.Errorf("first")
	errs = errs.Append(first, errors.New("second"))

	err := errs.ErrorOrNil()
	require.Error(t, err)
	assert.Equal(t, 2, errs.Len())
	assert.ErrorIs(t, err, first)
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Len(t, errors.UnwrapMultiErrors(errors.Errorf("wrapped: %w", err)), 2)
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var recovered error

	func() {
		defer errors.Recover(func(cause error) { recovered = cause })

		panic("unexpected")
	}()

	require.Error(t, recovered)
	assert.Contains(t, recovered.Error(), "unexpected")
}

func TestIsContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.True(t, errors.IsContextCanceled(errors.New(ctx.Err())))
	assert.False(t, errors.IsContextCanceled(errors.New("other")))
}
