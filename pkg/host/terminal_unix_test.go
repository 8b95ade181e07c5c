//go:build unix

package host

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func TestTerminal_SIGWINCHNotifies(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	h := NewTerminal(w)
	got := make(chan struct{}, 4)
	unsubscribe := h.listeners.add(func() {
		select {
		case got <- struct{}{}:
		default:
		}
	}, h.stopWatching)
	h.startWatching()
	if !h.Watching() {
		t.Fatal("Expected watcher to run with a listener registered")
	}

	// signal.Notify is installed by the watcher goroutine; retry until the
	// signal is observed.
	deadline := time.After(2 * time.Second)
	for received := false; !received; {
		if err := syscall.Kill(os.Getpid(), syscall.SIGWINCH); err != nil {
			t.Fatalf("kill: %v", err)
		}
		select {
		case <-got:
			received = true
		case <-time.After(20 * time.Millisecond):
		case <-deadline:
			t.Fatal("Timed out waiting for SIGWINCH notification")
		}
	}

	unsubscribe()
	if h.Watching() {
		t.Error("Watcher still running after the last listener left")
	}
}
