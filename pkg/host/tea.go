package host

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/compactview/pkg/viewport"
)

// Tea is a host fed from a bubbletea program's WindowSizeMsg. It has no
// viewport until the first size message arrives.
type Tea struct {
	mu        sync.Mutex
	size      viewport.Snapshot
	available bool
	listeners listeners
}

func NewTea() *Tea {
	return &Tea{}
}

// Observe consumes msg if it is a tea.WindowSizeMsg, updating the size and
// notifying listeners. It reports whether msg was a size message.
func (t *Tea) Observe(msg tea.Msg) bool {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return false
	}

	t.mu.Lock()
	t.size = viewport.Snapshot{Width: size.Width, Height: size.Height}
	t.available = true
	t.mu.Unlock()

	t.listeners.notify()
	return true
}

func (t *Tea) Snapshot() (viewport.Snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, t.available
}

func (t *Tea) Subscribe(fn func()) func() {
	return t.listeners.add(fn, nil)
}

// Listeners returns the number of registered resize callbacks.
func (t *Tea) Listeners() int {
	return t.listeners.len()
}
