package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/altinukshini/portal-search/internal/config"
	"github.com/altinukshini/portal-search/internal/controller"
	"github.com/altinukshini/portal-search/internal/model"
	"github.com/altinukshini/portal-search/internal/tui/listview"
	"github.com/altinukshini/portal-search/internal/tui/searchbar"
	"github.com/altinukshini/portal-search/internal/ui"
)

// Screen rows. header(1) + search bar(1) + status bar(1) = 3 lines of chrome,
// and the list pane border adds 2 more.
const (
	searchRow    = 1
	chromeHeight = 5
	statusTTL    = 3 * time.Second
)

// LinkActions opens or copies the link of a catalog item.
type LinkActions interface {
	Open(item model.Item) error
	Copy(item model.Item) error
}

type App struct {
	cfg     config.Config
	catalog *model.Catalog
	ctrl    *controller.Controller
	links   LinkActions
	log     logrus.FieldLogger

	searchBar searchbar.Model
	list      listview.Model
	help      help.Model

	width    int
	height   int
	status   string
	statusID int
	showHelp bool
}

func NewApp(cfg config.Config, cat *model.Catalog, ctrl *controller.Controller, links LinkActions, log logrus.FieldLogger) App {
	a := App{
		cfg:       cfg,
		catalog:   cat,
		ctrl:      ctrl,
		links:     links,
		log:       log,
		searchBar: searchbar.New(),
		list:      listview.New(cat, ctrl.View()),
		help:      help.New(),
	}
	a.applyEffects(ctrl.Focus())
	a.status = a.defaultStatus()
	return a
}

func (a App) Init() tea.Cmd {
	return textinput.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return &a, nil

	case ui.DebounceFiredMsg:
		eff, ok := a.ctrl.Fire(msg.Token)
		if !ok {
			return &a, nil
		}
		return &a, a.applyEffects(eff)

	case ui.LinkOpenedMsg:
		if msg.Err != nil {
			a.log.WithError(msg.Err).WithField("item", msg.Item.ID).Warn("open link failed")
			return &a, a.setStatus("Error: " + msg.Err.Error())
		}
		return &a, a.setStatus("Opened " + msg.Item.Name)

	case ui.LinkCopiedMsg:
		if msg.Err != nil {
			a.log.WithError(msg.Err).WithField("item", msg.Item.ID).Warn("copy link failed")
			return &a, a.setStatus("Error: " + msg.Err.Error())
		}
		return &a, a.setStatus("Copied link of " + msg.Item.Name)

	case ui.StatusClearMsg:
		if msg.ID == a.statusID {
			a.status = a.defaultStatus()
		}
		return &a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.searchBar, cmd = a.searchBar.Update(msg)
	return &a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		a.showHelp = false
		return &a, nil
	}
	if msg.String() == "ctrl+c" {
		return &a, tea.Quit
	}

	if key.Matches(msg, ui.Keys.Shortcut) {
		s := msg.String()
		eff := a.ctrl.Shortcut(strings.HasPrefix(s, "ctrl+"), strings.HasPrefix(s, "alt+"), "k")
		if eff.PreventDefault {
			return &a, a.applyEffects(eff)
		}
	}

	if a.searchBar.Focused() {
		return a.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, ui.Keys.Quit):
		return &a, tea.Quit
	case key.Matches(msg, ui.Keys.Help):
		a.showHelp = true
		return &a, nil
	case key.Matches(msg, ui.Keys.Focus):
		return &a, a.applyEffects(a.ctrl.Focus())
	case key.Matches(msg, ui.Keys.Clear):
		if a.ctrl.Query() != "" {
			return &a, a.applyEffects(a.ctrl.Clear())
		}
		return &a, nil
	case key.Matches(msg, ui.Keys.Open):
		if it, ok := a.list.SelectedItem(); ok {
			return &a, a.openLink(it)
		}
		return &a, nil
	case key.Matches(msg, ui.Keys.Copy):
		if it, ok := a.list.SelectedItem(); ok {
			return &a, a.copyLink(it)
		}
		return &a, nil
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return &a, cmd
}

func (a App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ui.Keys.Enter):
		return &a, a.applyEffects(a.ctrl.Enter())
	case key.Matches(msg, ui.Keys.Clear):
		if a.ctrl.Query() != "" {
			return &a, a.applyEffects(a.ctrl.Clear())
		}
		return &a, a.applyEffects(a.ctrl.Blur())
	case key.Matches(msg, ui.Keys.Blur):
		return &a, a.applyEffects(a.ctrl.Blur())
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return &a, cmd
	}

	before := a.searchBar.Value()
	var cmd tea.Cmd
	a.searchBar, cmd = a.searchBar.Update(msg)
	if after := a.searchBar.Value(); after != before {
		a.ctrl.Input(after)
	}
	return &a, cmd
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y != searchRow {
			return &a, a.applyEffects(a.ctrl.TapOutside())
		}
		if a.searchBar.ClearHit(msg.X) {
			return &a, a.applyEffects(a.ctrl.Clear())
		}
		a.ctrl.SwipeStart(msg.X)
		return &a, a.applyEffects(a.ctrl.Focus())

	case msg.Action == tea.MouseActionRelease:
		return &a, a.applyEffects(a.ctrl.SwipeEnd(msg.X))
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return &a, cmd
}

// applyEffects carries controller effects over to the widgets.
func (a *App) applyEffects(eff controller.Effects) tea.Cmd {
	var cmds []tea.Cmd

	if eff.Filtered {
		view := a.ctrl.View()
		if q := a.ctrl.Query(); q != a.searchBar.Value() {
			a.searchBar.SetValue(q)
		}
		a.list.SetView(view)
		a.searchBar.SetShowClear(view.Active())
		a.status = a.defaultStatus()
	}
	if eff.Blur {
		a.searchBar.Blur()
		a.list.SetFocused(true)
	}
	if eff.Focus {
		cmds = append(cmds, a.searchBar.Focus())
		a.list.SetFocused(false)
	}
	if eff.ScrollInput || eff.ScrollResults {
		a.list.GotoTop()
	}
	return tea.Batch(cmds...)
}

func (a App) openLink(it model.Item) tea.Cmd {
	links := a.links
	return func() tea.Msg {
		return ui.LinkOpenedMsg{Item: it, Err: links.Open(it)}
	}
}

func (a App) copyLink(it model.Item) tea.Cmd {
	links := a.links
	return func() tea.Msg {
		return ui.LinkCopiedMsg{Item: it, Err: links.Copy(it)}
	}
}

func (a *App) setStatus(text string) tea.Cmd {
	a.statusID++
	a.status = text
	id := a.statusID
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ui.StatusClearMsg{ID: id}
	})
}

func (a App) defaultStatus() string {
	view := a.ctrl.View()
	if view.Active() {
		return view.Summary.Text
	}
	return fmt.Sprintf("%d items", a.catalog.ItemCount())
}

func (a *App) propagateSize() {
	contentH := a.height - chromeHeight
	if contentH < 1 {
		contentH = 1
	}
	a.searchBar.SetWidth(a.width)
	a.list.SetSize(a.width-4, contentH)
	a.help.Width = a.width / 2
}

func (a App) contextHints() string {
	if a.searchBar.Focused() {
		return a.help.ShortHelpView(ui.Keys.InputHelp())
	}
	return a.help.ShortHelpView(ui.Keys.ListHelp())
}

func (a App) View() string {
	title := a.catalog.Name
	if title == "" {
		title = a.cfg.CatalogPath
	}
	header := RenderHeader(title, a.catalog.ItemCount(), len(a.catalog.Groups), a.ctrl.Profile().Name, a.width)

	contentH := a.height - chromeHeight
	if contentH < 1 {
		contentH = 1
	}
	pane := ui.StylePane
	if a.list.Focused() {
		pane = ui.StylePaneFocused
	}
	content := pane.Width(a.width - 2).Height(contentH).Render(a.list.View())
	if a.showHelp {
		content = a.renderHelp()
	}

	statusBar := RenderStatusBar(a.status, a.ctrl.State() == controller.StatePending, a.contextHints(), a.width)

	// Hard clamp: ensure content never overflows the terminal.
	maxContentLines := a.height - 3
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			lines = lines[:maxContentLines]
			content = strings.Join(lines, "\n")
		}
	}

	return header + "\n" + a.searchBar.View() + "\n" + content + "\n" + statusBar
}

func (a App) renderHelp() string {
	contentH := a.height - chromeHeight
	if contentH < 1 {
		contentH = 1
	}

	bold := lipgloss.NewStyle().Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(14)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))

	row := func(k, d string) string {
		return "  " + keyStyle.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Search") + "\n\n")
	b.WriteString(row("type", fmt.Sprintf("Filter as you type (%s debounce)", a.ctrl.Profile().Debounce)))
	b.WriteString(row("enter", "Filter now"))
	b.WriteString(row("esc", "Clear search / leave input"))
	b.WriteString(row("tab", "Move to results"))
	if a.ctrl.Profile().Shortcut {
		b.WriteString(row("ctrl+k", "Focus search from anywhere"))
	}
	if a.ctrl.Profile().Gestures {
		b.WriteString(row("drag left", "Swipe on the search bar to clear"))
		b.WriteString(row("click", "Tap outside an empty search to dismiss"))
	}

	b.WriteString("\n" + bold.Render("  Results") + "\n\n")
	b.WriteString(row("/", "Focus search"))
	b.WriteString(row("j / k", "Move down / up"))
	b.WriteString(row("g / G", "Go to top / bottom"))
	b.WriteString(row("PgUp/PgDn", "Page up / page down"))
	b.WriteString(row("enter / o", "Open subject link"))
	b.WriteString(row("y", "Copy subject link"))
	b.WriteString(row("q", "Quit"))

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  Press any key to close") + "\n")

	style := ui.StylePaneFocused.Width(a.width - 2).Height(contentH)
	return style.Render(b.String())
}
