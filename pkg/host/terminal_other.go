//go:build !unix

package host

import "time"

// pollInterval is how often the size is sampled where SIGWINCH does not exist.
const pollInterval = 250 * time.Millisecond

func (t *Terminal) watch(stop <-chan struct{}) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	last, _ := t.Snapshot()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			cur, ok := t.Snapshot()
			if ok && cur != last {
				last = cur
				t.listeners.notify()
			}
		}
	}
}
