package utils //nolint:revive // utils is an appropriate package name for utility functions

import (
	"context"
	"errors"
	"testing"

	seqErrors "github.com/amp-labs/seqkit/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestGetPanicRecoveryError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for nil panic value", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, GetPanicRecoveryError(nil, nil))
	})

	t.Run("wraps error panic value", func(t *testing.T) {
		t.Parallel()

		err := GetPanicRecoveryError(errBoom, nil)
		require.Error(t, err)
		require.ErrorIs(t, err, seqErrors.ErrPanicRecovered)
		require.ErrorIs(t, err, errBoom)
		assert.NotContains(t, err.Error(), "stack trace")
	})

	t.Run("formats non-error panic value", func(t *testing.T) {
		t.Parallel()

		err := GetPanicRecoveryError(42, nil)
		require.ErrorIs(t, err, seqErrors.ErrPanicRecovered)
		assert.Contains(t, err.Error(), "42")
	})

	t.Run("appends stack trace", func(t *testing.T) {
		t.Parallel()

		err := GetPanicRecoveryError("bad index", []byte("goroutine 1 [running]"))
		require.ErrorIs(t, err, seqErrors.ErrPanicRecovered)
		assert.Contains(t, err.Error(), "bad index")
		assert.Contains(t, err.Error(), "stack trace:\ngoroutine 1 [running]")
	})
}

func TestRecoverInto(t *testing.T) {
	t.Parallel()

	t.Run("no panic leaves error untouched", func(t *testing.T) {
		t.Parallel()

		run := func() (err error) {
			defer RecoverInto(&err)

			return errBoom
		}

		assert.Equal(t, errBoom, run())
	})

	t.Run("panic becomes error", func(t *testing.T) {
		t.Parallel()

		run := func() (err error) {
			defer RecoverInto(&err)

			panic("index out of range")
		}

		err := run()
		require.ErrorIs(t, err, seqErrors.ErrPanicRecovered)
		assert.Contains(t, err.Error(), "index out of range")
	})
}

func TestIsContextAlive(t *testing.T) {
	t.Parallel()

	assert.False(t, IsContextAlive(nil)) //nolint:staticcheck

	ctx, cancel := context.WithCancel(context.Background())
	assert.True(t, IsContextAlive(ctx))

	cancel()
	assert.False(t, IsContextAlive(ctx))
}
