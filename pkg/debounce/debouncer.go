// Package debounce collapses bursts of events into one delayed callback.
package debounce

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debouncer holds a single pending callback. Each Trigger replaces the pending
// callback and restarts the delay; the callback runs only once the delay
// elapses without another Trigger.
type Debouncer struct {
	duration time.Duration
	clock    Clock
	timer    Timer
	mu       sync.Mutex
	seq      uint64
}

// NewDebouncer creates a Debouncer that waits d after the last Trigger.
// A negative d is treated as zero. A nil clock uses the wall clock.
func NewDebouncer(d time.Duration, clock Clock) *Debouncer {
	if d < 0 {
		d = 0
	}
	if clock == nil {
		clock = Wrap(clockwork.NewRealClock())
	}
	return &Debouncer{
		duration: d,
		clock:    clock,
	}
}

// Trigger schedules callback to run after the debounce duration. A callback
// scheduled by an earlier Trigger that has not run yet is discarded.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.duration, func() {
		shouldRun := func() bool {
			d.mu.Lock()
			defer d.mu.Unlock()

			// Stop() can lose against a timer that already fired; the sequence
			// number decides which callback is still current.
			if seq != d.seq {
				return false
			}
			d.timer = nil
			return true
		}()
		if !shouldRun {
			return
		}

		callback()
	})
}

// Cancel drops the pending callback, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a callback is waiting for its delay to elapse.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Duration returns the debounce duration.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
