package asyncutil

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned by RunWithTimeout when the timer fires before the
// operation completes.
var ErrTimeout = errors.New("timeout exceeded")

// Option customizes RunWithTimeout.
type Option func(*options)

type options struct {
	timeoutErr error
}

// WithTimeoutError makes RunWithTimeout return err instead of the default
// ErrTimeout based error.
func WithTimeoutError(err error) Option {
	return func(o *options) {
		o.timeoutErr = err
	}
}

// RunWithTimeout races fn against a timer of the given duration. If the timer
// wins, the error is returned while fn keeps running in background and its
// late result is discarded.
func RunWithTimeout[T any](
	ctx context.Context, timeout time.Duration,
	fn func(ctx context.Context) (T, error), opts ...Option,
) (T, error) {
	o := options{
		timeoutErr: fmt.Errorf("%w: %s", ErrTimeout, timeout),
	}
	for _, opt := range opts {
		opt(&o)
	}

	type result struct {
		value T
		err   error
	}
	resultCh := make(chan result, 1)

	go func() {
		v, err := fn(ctx)
		resultCh <- result{v, err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var zero T
	select {
	case res := <-resultCh:
		return res.value, res.err
	case <-timer.C:
		return zero, o.timeoutErr
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Snooze blocks for d, or until ctx is done in which case its error is
// returned.
func Snooze(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
