package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/portal-search/internal/ui"
)

// Dispatcher posts fired debounce timers into the running program so the
// filter pass happens on the event loop goroutine.
//
// Create it before the program, then call SetProgram once the tea.Program
// exists. Tokens dispatched earlier are dropped.
type Dispatcher struct {
	program atomic.Pointer[tea.Program]
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) SetProgram(p *tea.Program) {
	d.program.Store(p)
}

func (d *Dispatcher) Dispatch(token uint64) {
	if p := d.program.Load(); p != nil {
		p.Send(ui.DebounceFiredMsg{Token: token})
	}
}
