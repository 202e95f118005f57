package listview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/altinukshini/portal-search/internal/model"
	"github.com/altinukshini/portal-search/internal/ops"
	"github.com/altinukshini/portal-search/internal/ui"
)

// Model renders the grouped listing as left by the latest filter pass.
type Model struct {
	catalog  *model.Catalog
	view     *model.FilterView
	groups   []ops.GroupResult
	flat     []ops.ItemResult // visible items in display order
	cursor   int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	focused  bool
}

func New(cat *model.Catalog, view *model.FilterView) Model {
	m := Model{catalog: cat}
	m.SetView(view)
	return m
}

// SetView replaces the filter state. The cursor stays on the same item when
// it is still visible, otherwise it moves to the first visible item.
func (m *Model) SetView(view *model.FilterView) {
	selected := -1
	if it, ok := m.selected(); ok {
		selected = it.Index
	}

	m.view = view
	m.groups = ops.VisibleGroups(m.catalog, view)
	m.flat = nil
	for _, g := range m.groups {
		m.flat = append(m.flat, g.Items...)
	}

	m.cursor = 0
	for i, it := range m.flat {
		if it.Index == selected {
			m.cursor = i
			break
		}
	}
	m.refresh()
}

func (m *Model) SetFocused(focused bool) {
	m.focused = focused
	m.refresh()
}

func (m Model) Focused() bool { return m.focused }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.refresh()
}

// GotoTop scrolls the summary and the first results into view.
func (m *Model) GotoTop() {
	m.cursor = 0
	m.refresh()
	if m.ready {
		m.viewport.GotoTop()
	}
}

// VisibleCount is the number of items currently listed.
func (m Model) VisibleCount() int { return len(m.flat) }

func (m Model) Cursor() int { return m.cursor }

// SelectedItem returns the catalog item under the cursor.
func (m Model) SelectedItem() (model.Item, bool) {
	it, ok := m.selected()
	if !ok {
		return model.Item{}, false
	}
	return m.catalog.Items()[it.Index], true
}

func (m Model) selected() (ops.ItemResult, bool) {
	if m.cursor < 0 || m.cursor >= len(m.flat) {
		return ops.ItemResult{}, false
	}
	return m.flat[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		last := len(m.flat) - 1
		switch {
		case key.Matches(msg, ui.Keys.Down):
			if m.cursor < last {
				m.cursor++
			}
		case key.Matches(msg, ui.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, ui.Keys.PageDown):
			m.cursor = min(m.cursor+m.pageSize(), max(last, 0))
		case key.Matches(msg, ui.Keys.PageUp):
			m.cursor = max(m.cursor-m.pageSize(), 0)
		case key.Matches(msg, ui.Keys.Top):
			m.cursor = 0
		case key.Matches(msg, ui.Keys.Bottom):
			m.cursor = max(last, 0)
		default:
			return m, nil
		}
		m.refresh()
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) pageSize() int {
	if m.height < 4 {
		return 1
	}
	return m.height / 2
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	content, cursorLine := m.render()
	m.viewport.SetContent(content)
	if cursorLine < 0 {
		return
	}
	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
}

// render returns the listing and the line the cursor is on (-1 if none).
func (m Model) render() (string, int) {
	var b strings.Builder
	line := 0
	cursorLine := -1
	writeln := func(s string) {
		b.WriteString(s + "\n")
		line++
	}

	if m.view.Active() {
		writeln("  " + ui.SummaryStyle(m.view.TotalCount).Bold(true).Render(m.view.Summary.Text))
		if len(m.view.Suggestions) > 0 {
			writeln("  " + ui.StyleWarning.Render("Você quis dizer: "+strings.Join(m.view.Suggestions, ", ")+"?"))
		}
		writeln("")
	}

	descWidth := m.width - 6
	if descWidth < 10 {
		descWidth = 10
	}

	n := 0
	for _, g := range m.groups {
		title := g.Title
		if m.view.Active() {
			title = fmt.Sprintf("%s (%d)", title, g.Matches)
		}
		writeln("  " + ui.StyleGroupTitle.Render(title))

		for _, it := range g.Items {
			prefix := "   "
			isCursor := m.focused && n == m.cursor
			if isCursor {
				prefix = " > "
				cursorLine = line
			}
			name := ui.StyleItemName.Render(it.Name)
			if it.Highlighted {
				name = ui.StyleMatch.Render(it.Name)
			}
			row := prefix + name
			if isCursor {
				row = ui.StyleCursor.Render(row)
			}
			writeln(row)

			if it.Description != "" {
				for _, l := range strings.Split(wordwrap.String(it.Description, descWidth), "\n") {
					writeln("     " + ui.StyleItemDesc.Render(l))
				}
			}
			n++
		}
		writeln("")
	}
	return b.String(), cursorLine
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}
