package asyncutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// DefaultWaterfallTimeout is how long Waterfall waits for a task before
// launching the next one.
const DefaultWaterfallTimeout = 5 * time.Second

// ErrNoTasks is returned by Waterfall when called without tasks.
var ErrNoTasks = errors.New("no tasks to run")

// Task is a cancellable unit of work run by Waterfall.
type Task[T any] func(ctx context.Context) (T, error)

// Waterfall runs tasks in order, starting the next one whenever the ones in
// flight neither resolved nor failed within timeout, or as soon as one of
// them fails. The first task to succeed wins: its result is returned and the
// context of all the others is cancelled. An error combining all failures is
// returned only when every task failed.
func Waterfall[T any](
	ctx context.Context, timeout time.Duration, tasks ...Task[T],
) (T, error) {
	return WaterfallWithLimit(ctx, timeout, 0, tasks...)
}

// WaterfallWithLimit is like Waterfall but never keeps more than maxInFlight
// tasks running at once. A non-positive maxInFlight means no limit.
func WaterfallWithLimit[T any](
	ctx context.Context, timeout time.Duration, maxInFlight int,
	tasks ...Task[T],
) (T, error) {
	var zero T
	if len(tasks) <= 0 {
		return zero, ErrNoTasks
	}
	if maxInFlight <= 0 || maxInFlight > len(tasks) {
		maxInFlight = len(tasks)
	}
	if timeout <= 0 {
		timeout = DefaultWaterfallTimeout
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		index int
		value T
		err   error
	}
	// buffered so that losers never block after we return
	resultCh := make(chan result, len(tasks))

	next, inFlight := 0, 0
	var deadline <-chan time.Time
	launch := func() {
		i := next
		next++
		inFlight++
		go func() {
			v, err := tasks[i](ctx)
			resultCh <- result{i, v, err}
		}()

		deadline = nil
		if next < len(tasks) {
			deadline = time.After(timeout)
		}
	}

	var errs error
	launch()

	for {
		select {
		case <-ctx.Done():
			return zero, multierr.Append(errs, ctx.Err())

		case res := <-resultCh:
			inFlight--
			if res.err == nil {
				return res.value, nil
			}
			errs = multierr.Append(errs, fmt.Errorf("task %d: %w", res.index, res.err))

			if next < len(tasks) {
				launch()
				continue
			}
			if inFlight <= 0 {
				return zero, errs
			}

		case <-deadline:
			deadline = nil
			if inFlight < maxInFlight {
				launch()
				continue
			}
			// wait for a slot, a failure will launch the next task
		}
	}
}
