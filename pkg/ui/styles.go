package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorMuted       = lipgloss.Color("#6272A4")

	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")

	ColorCompactBg = lipgloss.Color("#3D2A1A")
	ColorRegularBg = lipgloss.Color("#1A3D2A")
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES
// ══════════════════════════════════════════════════════════════════════════════

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBgHighlight).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)

// ══════════════════════════════════════════════════════════════════════════════
// BADGES
// ══════════════════════════════════════════════════════════════════════════════

// RenderClassBadge returns the COMPACT/REGULAR badge.
func RenderClassBadge(compact bool) string {
	fg, bg, label := ColorSuccess, ColorRegularBg, "REGULAR"
	if compact {
		fg, bg, label = ColorWarning, ColorCompactBg, "COMPACT"
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

// RenderPendingBadge marks a resize waiting for its debounce window.
func RenderPendingBadge(armed bool) string {
	if !armed {
		return lipgloss.NewStyle().Foreground(ColorMuted).Render("settled")
	}
	return lipgloss.NewStyle().
		Foreground(ColorInfo).
		Background(ColorBgSubtle).
		Padding(0, 1).
		Render("RESIZING")
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}

func renderRow(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}
