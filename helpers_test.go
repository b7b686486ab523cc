package staticvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestRegion declares a heap region in a registry private to the test.
func newTestRegion[T any](t *testing.T, n int, def T, opts ...Option) *Region[T] {
	t.Helper()
	opts = append([]Option{WithRegistry(NewRegistry(RegistryConfig{}))}, opts...)
	r, err := Alloc(t.Name(), n, def, opts...)
	require.NoError(t, err)
	return r
}

// acquire acquires r and releases the handle when the test ends.
func acquire[T any](t *testing.T, r *Region[T]) *Vec[T] {
	t.Helper()
	v, err := r.Acquire()
	require.NoError(t, err)
	t.Cleanup(v.Release)
	return v
}

// requireViolation runs fn and asserts it panics with a *BoundsError of kind.
func requireViolation(t *testing.T, kind error, fn func()) *BoundsError {
	t.Helper()

	var (
		be *BoundsError
		ok bool
	)
	func() {
		defer func() {
			be, ok = AsViolation(recover())
		}()
		fn()
	}()

	require.True(t, ok, "expected a bounds violation")
	require.ErrorIs(t, be, kind)
	require.ErrorIs(t, be, ErrViolation)
	require.NotErrorIs(t, be, ErrLocked)
	return be
}
