package ui

import "time"

// now is swapped out in tests to drive the debounce window deterministically.
var now = time.Now

// debouncer is a single-slot deferred action: Schedule arms (or re-arms) a
// countdown, Fire runs the action at most once when the countdown has
// elapsed, Cancel disarms. A fresh Schedule always replaces the pending
// action and restarts the full delay.
type debouncer struct {
	delay    time.Duration
	deadline time.Time
	fn       func()
	pending  bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) Schedule(fn func()) {
	d.fn = fn
	d.deadline = now().Add(d.delay)
	d.pending = true
}

// Cancel disarms the pending action. Safe to call when nothing is pending.
func (d *debouncer) Cancel() { d.pending = false }

// Fire runs the scheduled action if its delay has elapsed, and reports
// whether it ran. Call it once per tick.
func (d *debouncer) Fire() bool {
	if !d.pending || now().Before(d.deadline) {
		return false
	}
	d.pending = false
	d.fn()
	return true
}
