package retry

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/staticvec"
)

// ErrExhausted is returned when MaxAttempts attempts all found the region locked.
var ErrExhausted = errors.New("retry: attempts exhausted")

// Acquirer is anything with a non-blocking Acquire, such as *staticvec.Region[T].
type Acquirer[H any] interface {
	Acquire() (H, error)
}

// Policy controls how Acquire retries.
type Policy struct {
	// Limiter paces the attempts after the first one.
	// If nil, attempts only yield the processor in between.
	Limiter *rate.Limiter

	// MaxAttempts bounds the number of attempts (0 means unlimited).
	MaxAttempts int
}

// DefaultPolicy polls every 100µs without an attempt limit.
// Each call returns a fresh limiter.
func DefaultPolicy() Policy {
	return Policy{
		Limiter: rate.NewLimiter(rate.Every(100*time.Microsecond), 1),
	}
}

// Acquire calls a.Acquire until it succeeds, ctx is done or p.MaxAttempts
// attempts were made. Only errors matching staticvec.ErrLocked are retried;
// any other error is returned immediately.
//
// Errors after retrying still match staticvec.ErrLocked.
func Acquire[H any](ctx context.Context, a Acquirer[H], p Policy) (H, error) {
	var zero H

	for attempt := 1; ; attempt++ {
		h, err := a.Acquire()
		if err == nil {
			return h, nil
		}
		if !errors.Is(err, staticvec.ErrLocked) {
			return zero, err
		}
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return zero, fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempt, err)
		}
		if werr := wait(ctx, p.Limiter); werr != nil {
			return zero, fmt.Errorf("retry: %w (last: %w)", werr, err)
		}
	}
}

func wait(ctx context.Context, l *rate.Limiter) error {
	if l != nil {
		return l.Wait(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	runtime.Gosched()
	return nil
}
