package asyncutil

import (
	"sync"
	"time"
)

// Debouncer delays calls to a function until they stop coming for a while.
type Debouncer[T any] struct {
	fn        func(T)
	wait      time.Duration
	immediate bool

	lock    sync.Mutex
	timer   *time.Timer
	gen     uint64
	lastArg T
	stopped bool
}

// Debounce returns a Debouncer invoking fn once no Call happened for wait.
// By default fn runs on the trailing edge with the argument of the last
// Call. With immediate, fn runs on the leading edge instead, and is invoked
// again only after wait elapses without calls.
func Debounce[T any](fn func(T), wait time.Duration, immediate bool) *Debouncer[T] {
	return &Debouncer[T]{
		fn:        fn,
		wait:      wait,
		immediate: immediate,
	}
}

// Call schedules fn with the given argument.
func (d *Debouncer[T]) Call(arg T) {
	d.lock.Lock()
	if d.stopped {
		d.lock.Unlock()
		return
	}

	callNow := d.immediate && d.timer == nil
	d.lastArg = arg
	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
	d.lock.Unlock()

	if callNow {
		d.fn(arg)
	}
}

// Stop drops any pending call. Calls after Stop are ignored.
func (d *Debouncer[T]) Stop() {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.lock.Lock()
	// superseded by a later Call or stopped
	if d.gen != gen || d.timer == nil {
		d.lock.Unlock()
		return
	}
	d.timer = nil
	arg := d.lastArg
	d.lock.Unlock()

	if !d.immediate {
		d.fn(arg)
	}
}
