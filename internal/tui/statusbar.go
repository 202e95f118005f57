package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/altinukshini/portal-search/internal/ui"
)

// RenderStatusBar draws the bottom line: the status message on the left,
// key hints on the right. A pending search is marked with an ellipsis.
// Hints are cut short before the status when the terminal is narrow.
func RenderStatusBar(status string, pending bool, hints string, width int) string {
	marker := "  "
	if pending {
		marker = lipgloss.NewStyle().Foreground(ui.ColorWarning).Render("⋯ ")
	}
	left := marker + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(status)

	room := width - lipgloss.Width(left) - 2
	if room < 0 {
		room = 0
	}
	hints = truncate.StringWithTail(hints, uint(room), "…")
	right := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#111827")).
		Width(width).
		Render(left + padding + right)
}
