package searchbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/portal-search/internal/ui"
)

const clearLabel = "[x]"

// Model is the search input row with its clear control.
type Model struct {
	input     textinput.Model
	width     int
	showClear bool
}

func New() Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Buscar matéria..."

	return Model{input: ti}
}

func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.input.Blur()
}

func (m Model) Focused() bool {
	return m.input.Focused()
}

func (m Model) Value() string {
	return m.input.Value()
}

func (m *Model) SetValue(v string) {
	m.input.SetValue(v)
}

// SetShowClear toggles the clear control, shown while results are listed.
func (m *Model) SetShowClear(show bool) {
	m.showClear = show
}

func (m Model) ShowClear() bool { return m.showClear }

func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.Width = width - lipgloss.Width(m.input.Prompt) - len(clearLabel) - 4
	if m.input.Width < 1 {
		m.input.Width = 1
	}
}

// ClearHit reports whether column x falls on the clear control.
func (m Model) ClearHit(x int) bool {
	return m.showClear && x >= m.width-len(clearLabel)-1
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	left := " " + m.input.View()
	if !m.showClear {
		return left
	}
	clear := ui.StyleMuted.Render(clearLabel)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(clear) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + clear
}
