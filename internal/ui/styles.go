package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorFailure   = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorInfo      = lipgloss.Color("#3B82F6")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#1F2937")

	StylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(ColorPrimary).
			Padding(0, 1)

	StyleGroupTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)
	StyleItemName   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB"))
	StyleItemDesc   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleCursor     = lipgloss.NewStyle().Background(ColorHighlight)
	StyleSuccess    = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleFailure    = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleWarning    = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted      = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleMatch = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FCD34D")).
			Background(lipgloss.Color("#78350F"))
)

// SummaryStyle colours the results summary by outcome.
func SummaryStyle(total int) lipgloss.Style {
	if total == 0 {
		return StyleFailure
	}
	return StyleSuccess
}
