package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiError_ErrorOrNil(t *testing.T) {
	m := &MultiError{}
	require.NoError(t, m.ErrorOrNil())

	m.Append(nil)
	require.NoError(t, m.ErrorOrNil())

	m.Append(fmt.Errorf("store close failed"))
	require.EqualError(t, m.ErrorOrNil(), "store close failed")

	m.Append(fmt.Errorf("nats shutdown failed"))
	require.EqualError(t, m.ErrorOrNil(), "2 errors occurred: store close failed; nats shutdown failed")
}

func TestMultiError_UnwrapSupportsIs(t *testing.T) {
	m := &MultiError{}
	m.Append(fmt.Errorf("draining: %w", context.DeadlineExceeded))

	require.True(t, errors.Is(m, context.DeadlineExceeded))
}

func TestTransientError(t *testing.T) {
	err := fmt.Errorf("submit: %w", NewTransientError("publish", context.DeadlineExceeded))

	require.True(t, IsTransient(err))
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.False(t, IsTransient(fmt.Errorf("plain")))
	require.Contains(t, err.Error(), "publish: context deadline exceeded")
}
