package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Focus    key.Binding
	Shortcut key.Binding
	Enter    key.Binding
	Clear    key.Binding
	Blur     key.Binding
	Open     key.Binding
	Copy     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

var Keys = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Focus:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Shortcut: key.NewBinding(key.WithKeys("ctrl+k", "alt+k"), key.WithHelp("ctrl+k", "focus search")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search now")),
	Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	Blur:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "results")),
	Open:     key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
}

// InputHelp lists the bindings shown while the search input has focus.
func (k KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Clear, k.Blur, k.Shortcut}
}

// ListHelp lists the bindings shown while browsing results.
func (k KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Open, k.Copy, k.Up, k.Down, k.Help, k.Quit}
}
