package debounce

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock schedules delayed callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// Wrap adapts a clockwork clock to Clock. Tests pass a
// clockwork.FakeClock; note that it runs due callbacks on their own
// goroutines when advanced.
func Wrap(c clockwork.Clock) Clock {
	return clockworkClock{c: c}
}

type clockworkClock struct {
	c clockwork.Clock
}

func (w clockworkClock) AfterFunc(d time.Duration, f func()) Timer {
	return w.c.AfterFunc(d, f)
}
