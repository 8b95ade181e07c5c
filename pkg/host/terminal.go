package host

import (
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/Dicklesworthstone/compactview/pkg/viewport"
)

// Terminal is a host backed by a terminal file descriptor, usually
// os.Stdout. When the file is not a terminal (output piped to a file or
// another process) there is no viewport.
//
// Resize notifications are watched by a goroutine that only runs while at
// least one listener is registered.
type Terminal struct {
	fd        int
	listeners listeners

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewTerminal returns a Terminal host for f.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{fd: int(f.Fd())}
}

// IsTerminal reports whether the underlying file is a terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// Snapshot returns the terminal size in character cells.
func (t *Terminal) Snapshot() (viewport.Snapshot, bool) {
	if !t.IsTerminal() {
		return viewport.Snapshot{}, false
	}
	width, height, err := term.GetSize(t.fd)
	if err != nil {
		return viewport.Snapshot{}, false
	}
	return viewport.Snapshot{Width: width, Height: height}, true
}

// Subscribe registers fn for resize notifications. Without a terminal the
// registration succeeds but never fires.
func (t *Terminal) Subscribe(fn func()) func() {
	unsubscribe := t.listeners.add(fn, t.stopWatching)
	if t.IsTerminal() {
		t.startWatching()
	}
	return unsubscribe
}

// Listeners returns the number of registered resize callbacks.
func (t *Terminal) Listeners() int {
	return t.listeners.len()
}

// Watching reports whether the resize watcher goroutine is running.
func (t *Terminal) Watching() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func (t *Terminal) startWatching() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil || t.listeners.len() == 0 {
		return
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	t.stop, t.done = stop, done

	go func() {
		defer close(done)
		t.watch(stop)
	}()
}

func (t *Terminal) stopWatching() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return
	}
	close(t.stop)
	<-t.done
	t.stop, t.done = nil, nil
}
