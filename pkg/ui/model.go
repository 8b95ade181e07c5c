// Package ui renders the live viewport classification as a bubbletea program.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/compactview/pkg/host"
	"github.com/Dicklesworthstone/compactview/pkg/viewport"
)

// CompactMsg carries the classification of a settled recomputation into the
// program. It is sent even when the value did not change, so the view drops
// its pending badge.
type CompactMsg struct {
	Compact bool
}

// Sender is the part of *tea.Program used to deliver CompactMsg.
type Sender interface {
	Send(msg tea.Msg)
}

// Bind forwards every recomputation of c to p as a CompactMsg. The returned
// function stops forwarding.
func Bind(p Sender, c *viewport.Classifier) (cancel func()) {
	return c.OnRecompute(func(compact bool) {
		p.Send(CompactMsg{Compact: compact})
	})
}

// Model shows the raw terminal size next to the debounced classification.
type Model struct {
	host       *host.Tea
	classifier *viewport.Classifier

	compact  bool
	width    int
	height   int
	hasSize  bool
	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel creates a Model observing h. c must have been created on h.
func NewModel(h *host.Tea, c *viewport.Classifier) Model {
	return Model{
		host:       h,
		classifier: c,
		compact:    c.Compact(),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.host.Observe(msg)
		m.width, m.height = msg.Width, msg.Height
		m.hasSize = true
		m.help.Width = msg.Width

	case CompactMsg:
		m.compact = msg.Compact

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// Compact returns the classification the model last received.
func (m Model) Compact() bool {
	return m.compact
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	size := "unknown"
	if m.hasSize {
		size = fmt.Sprintf("%d x %d", m.width, m.height)
	}

	status := strings.Join([]string{
		TitleStyle.Render("Viewport"),
		renderRow("size", size),
		renderRow("class", RenderClassBadge(m.compact)),
		renderRow("debounce", RenderPendingBadge(m.classifier.Armed())),
	}, "\n")

	settings := strings.Join([]string{
		TitleStyle.Render("Classifier"),
		renderRow("threshold", fmt.Sprintf("%d", m.classifier.Threshold())),
		renderRow("mode", m.classifier.Mode().String()),
		renderRow("delay", m.classifier.Delay().String()),
		renderRow("recomputed", fmt.Sprintf("%d", m.classifier.Recomputations())),
	}, "\n")

	var body string
	if m.compact {
		body = lipgloss.JoinVertical(lipgloss.Left,
			PanelStyle.Render(status),
			PanelStyle.Render(settings))
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			PanelStyle.Render(status),
			PanelStyle.Render(settings))
	}

	divider := RenderDivider(lipgloss.Width(body))
	return body + "\n" + divider + "\n" + m.help.View(m.keys)
}
