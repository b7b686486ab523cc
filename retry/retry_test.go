package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/hupe1980/staticvec"
)

func newRegion(t *testing.T) *staticvec.Region[uint32] {
	t.Helper()
	reg := staticvec.NewRegistry(staticvec.RegistryConfig{})
	return staticvec.MustAlloc[uint32](t.Name(), 4, 0, staticvec.WithRegistry(reg))
}

type vecHandle = *staticvec.Vec[uint32]

func TestAcquire_Free(t *testing.T) {
	r := newRegion(t)

	v, err := Acquire[vecHandle](context.Background(), r, DefaultPolicy())
	require.NoError(t, err)
	v.Release()
}

func TestAcquire_WaitsForRelease(t *testing.T) {
	r := newRegion(t)

	held, err := r.Acquire()
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		held.Release()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	v, err := Acquire[vecHandle](ctx, r, DefaultPolicy())
	require.NoError(t, err)
	assert.True(t, r.Held())
	v.Release()
}

func TestAcquire_MaxAttempts(t *testing.T) {
	r := newRegion(t)

	held, err := r.Acquire()
	require.NoError(t, err)
	defer held.Release()

	_, err = Acquire[vecHandle](context.Background(), r, Policy{
		Limiter:     rate.NewLimiter(rate.Inf, 1),
		MaxAttempts: 3,
	})
	require.ErrorIs(t, err, ErrExhausted)
	require.ErrorIs(t, err, staticvec.ErrLocked)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestAcquire_ContextCanceled(t *testing.T) {
	r := newRegion(t)

	held, err := r.Acquire()
	require.NoError(t, err)
	defer held.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = Acquire[vecHandle](ctx, r, Policy{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.ErrorIs(t, err, staticvec.ErrLocked)
}

type fakeAcquirer struct {
	calls int
	errs  []error
}

func (f *fakeAcquirer) Acquire() (int, error) {
	err := f.errs[f.calls]
	f.calls++
	if err != nil {
		return 0, err
	}
	return f.calls, nil
}

func TestAcquire_OtherErrorsAreNotRetried(t *testing.T) {
	errBoom := errors.New("boom")
	f := &fakeAcquirer{errs: []error{errBoom, nil}}

	_, err := Acquire[int](context.Background(), f, Policy{})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, f.calls)
}

func TestAcquire_RetriesLockedErrors(t *testing.T) {
	locked := &staticvec.LockedError{Region: "r"}
	f := &fakeAcquirer{errs: []error{locked, locked, nil}}

	n, err := Acquire[int](context.Background(), f, Policy{Limiter: rate.NewLimiter(rate.Inf, 1)})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
