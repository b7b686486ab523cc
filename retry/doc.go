// Package retry polls a non-blocking acquire until it succeeds.
//
// staticvec never waits for a region: Acquire either succeeds or returns an
// error matching staticvec.ErrLocked right away. Callers that would rather wait
// than fail use Acquire from this package, which paces attempts with a
// golang.org/x/time/rate limiter and gives up on context cancellation or after
// a fixed number of attempts.
//
//	v, err := retry.Acquire(ctx, region, retry.DefaultPolicy())
//	if err != nil {
//	    return err
//	}
//	defer v.Release()
package retry
