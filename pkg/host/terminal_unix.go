//go:build unix

package host

import (
	"os"
	"os/signal"
	"syscall"
)

func (t *Terminal) watch(stop <-chan struct{}) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	defer signal.Stop(sig)

	for {
		select {
		case <-stop:
			return
		case <-sig:
			t.listeners.notify()
		}
	}
}
