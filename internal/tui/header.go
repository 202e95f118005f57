package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/portal-search/internal/ui"
)

func RenderHeader(title string, items, groups int, profile string, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(fmt.Sprintf(" portal-search | %s", title))

	right := lipgloss.NewStyle().Foreground(ui.ColorMuted).
		Render(fmt.Sprintf("%d items / %d modules | %s ", items, groups, profile))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1F2937")).
		Width(width).
		Render(left + padding + right)
}
