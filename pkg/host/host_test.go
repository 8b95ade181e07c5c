package host

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"

	"github.com/Dicklesworthstone/compactview/pkg/viewport"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMemory_ResizeNotifies(t *testing.T) {
	m := NewMemory(1024, 768)

	calls := 0
	unsubscribe := m.Subscribe(func() { calls++ })
	if m.Listeners() != 1 {
		t.Fatalf("Expected 1 listener, got %d", m.Listeners())
	}

	m.Resize(600, 400)
	if calls != 1 {
		t.Errorf("Expected 1 notification, got %d", calls)
	}
	s, ok := m.Snapshot()
	if !ok || s != (viewport.Snapshot{Width: 600, Height: 400}) {
		t.Errorf("Unexpected snapshot %+v ok=%v", s, ok)
	}

	unsubscribe()
	unsubscribe()
	if m.Listeners() != 0 {
		t.Errorf("Expected 0 listeners after unsubscribe, got %d", m.Listeners())
	}
	m.Resize(500, 300)
	if calls != 1 {
		t.Errorf("Notified after unsubscribe: %d calls", calls)
	}
}

func TestMemory_Unavailable(t *testing.T) {
	m := NewUnavailable()
	if _, ok := m.Snapshot(); ok {
		t.Fatal("Expected no viewport")
	}

	m.Resize(320, 480)
	if _, ok := m.Snapshot(); !ok {
		t.Fatal("Expected viewport after Resize")
	}

	m.SetUnavailable()
	if _, ok := m.Snapshot(); ok {
		t.Error("Expected no viewport after SetUnavailable")
	}
}

func TestTea_Observe(t *testing.T) {
	h := NewTea()
	if _, ok := h.Snapshot(); ok {
		t.Fatal("Expected no viewport before the first WindowSizeMsg")
	}

	calls := 0
	defer h.Subscribe(func() { calls++ })()

	if h.Observe(tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Error("Key message should not be consumed")
	}
	if calls != 0 {
		t.Errorf("Expected no notifications, got %d", calls)
	}

	if !h.Observe(tea.WindowSizeMsg{Width: 90, Height: 30}) {
		t.Fatal("WindowSizeMsg should be consumed")
	}
	s, ok := h.Snapshot()
	if !ok || s.Width != 90 || s.Height != 30 {
		t.Errorf("Unexpected snapshot %+v ok=%v", s, ok)
	}
	if calls != 1 {
		t.Errorf("Expected 1 notification, got %d", calls)
	}
}

func TestTerminal_NotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	h := NewTerminal(w)
	if h.IsTerminal() {
		t.Fatal("Pipe reported as terminal")
	}
	if _, ok := h.Snapshot(); ok {
		t.Error("Expected no viewport for a pipe")
	}

	unsubscribe := h.Subscribe(func() {})
	if h.Listeners() != 1 {
		t.Errorf("Expected 1 listener, got %d", h.Listeners())
	}
	if h.Watching() {
		t.Error("Watcher should not run without a terminal")
	}
	unsubscribe()
	if h.Listeners() != 0 {
		t.Errorf("Expected 0 listeners, got %d", h.Listeners())
	}
}
