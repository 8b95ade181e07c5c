package host

import (
	"sync"

	"github.com/Dicklesworthstone/compactview/pkg/viewport"
)

// Memory is a host whose size is set by the caller. It backs tests and
// embedders that learn the size from somewhere else.
type Memory struct {
	mu        sync.Mutex
	size      viewport.Snapshot
	available bool
	listeners listeners
}

// NewMemory returns a Memory host reporting width x height.
func NewMemory(width, height int) *Memory {
	return &Memory{
		size:      viewport.Snapshot{Width: width, Height: height},
		available: true,
	}
}

// NewUnavailable returns a Memory host with no viewport.
func NewUnavailable() *Memory {
	return &Memory{}
}

func (m *Memory) Snapshot() (viewport.Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size, m.available
}

func (m *Memory) Subscribe(fn func()) func() {
	return m.listeners.add(fn, nil)
}

// Resize sets the size, makes the viewport available and notifies
// listeners.
func (m *Memory) Resize(width, height int) {
	m.mu.Lock()
	m.size = viewport.Snapshot{Width: width, Height: height}
	m.available = true
	m.mu.Unlock()

	m.listeners.notify()
}

// SetUnavailable removes the viewport without notifying listeners.
func (m *Memory) SetUnavailable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = false
}

// Listeners returns the number of registered resize callbacks.
func (m *Memory) Listeners() int {
	return m.listeners.len()
}
