// Package controller wires the filter engine to user input: debounced typing,
// immediate Enter, clearing, touch gestures and the focus shortcut.
//
// The controller never renders anything. Every operation returns Effects
// describing what the host surface should do with the search input.
package controller

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/altinukshini/portal-search/internal/config"
	"github.com/altinukshini/portal-search/internal/model"
	"github.com/altinukshini/portal-search/internal/search"
)

type State int

const (
	StateIdle State = iota
	StatePending
)

func (s State) String() string {
	if s == StatePending {
		return "pending"
	}
	return "idle"
}

// Effects are side effects on the search input requested by an operation.
type Effects struct {
	Focus          bool
	Blur           bool
	ScrollInput    bool
	ScrollResults  bool
	PreventDefault bool
	Filtered       bool // a filter pass ran and View changed
}

func (e Effects) merge(o Effects) Effects {
	return Effects{
		Focus:          e.Focus || o.Focus,
		Blur:           e.Blur || o.Blur,
		ScrollInput:    e.ScrollInput || o.ScrollInput,
		ScrollResults:  e.ScrollResults || o.ScrollResults,
		PreventDefault: e.PreventDefault || o.PreventDefault,
		Filtered:       e.Filtered || o.Filtered,
	}
}

type Option func(*Controller)

// WithDispatch sets how a fired debounce timer reports back. The TUI posts
// the token to its event loop; the default calls Fire directly.
func WithDispatch(dispatch func(token uint64)) Option {
	return func(c *Controller) { c.dispatch = dispatch }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = log }
}

type Controller struct {
	catalog  *model.Catalog
	engine   *search.Engine
	profile  config.Profile
	sched    Scheduler
	dispatch func(token uint64)
	log      logrus.FieldLogger

	mu      sync.Mutex
	query   string
	view    *model.FilterView
	token   uint64
	pending bool
	stop    func() bool
	focused bool
	swipeX  int
	swiping bool
}

func New(cat *model.Catalog, engine *search.Engine, profile config.Profile, sched Scheduler, opts ...Option) *Controller {
	c := &Controller{
		catalog: cat,
		engine:  engine,
		profile: profile,
		sched:   sched,
	}
	c.log = logrus.StandardLogger()
	c.dispatch = func(token uint64) { c.Fire(token) }
	for _, opt := range opts {
		opt(c)
	}
	c.view = engine.Apply(cat, "")
	return c
}

func (c *Controller) Profile() config.Profile { return c.profile }

func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// View returns the result of the latest filter pass.
func (c *Controller) View() *model.FilterView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return StatePending
	}
	return StateIdle
}

func (c *Controller) Focused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focused
}

// Input records a new query value and (re)starts the debounce timer. A timer
// still pending from earlier input is cancelled.
func (c *Controller) Input(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.query = value
	c.cancelLocked()
	c.token++
	token := c.token
	c.pending = true
	dispatch := c.dispatch
	c.stop = c.sched.AfterFunc(c.profile.Debounce, func() { dispatch(token) })
}

// Fire runs the debounced filter pass for token. Tokens superseded by later
// input, or already consumed by Enter or Clear, are ignored.
func (c *Controller) Fire(token uint64) (Effects, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.pending || token != c.token {
		return Effects{}, false
	}
	c.pending = false
	c.stop = nil
	return c.applyLocked(), true
}

// Enter filters immediately, bypassing the debounce.
func (c *Controller) Enter() Effects {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	eff := c.applyLocked()
	if c.profile.Gestures {
		c.focused = false
		eff = eff.merge(Effects{Blur: true})
	}
	return eff
}

// Clear empties the query, filters and refocuses the input.
func (c *Controller) Clear() Effects {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.query = ""
	eff := c.applyLocked()
	c.focused = true
	return Effects{Focus: true, Filtered: eff.Filtered}
}

// Focus marks the input focused. On touch profiles the input is scrolled
// into view.
func (c *Controller) Focus() Effects {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.focused = true
	if c.profile.Gestures {
		return Effects{Focus: true, ScrollInput: true}
	}
	return Effects{Focus: true}
}

func (c *Controller) Blur() Effects {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.focused = false
	return Effects{Blur: true}
}

// TapOutside handles a tap away from the search area. Touch profiles drop
// focus when the query is empty.
func (c *Controller) TapOutside() Effects {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.profile.Gestures || c.query != "" {
		return Effects{}
	}
	c.focused = false
	return Effects{Blur: true}
}

func (c *Controller) SwipeStart(x int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.profile.Gestures {
		return
	}
	c.swipeX = x
	c.swiping = true
}

// SwipeEnd completes a gesture started by SwipeStart. A leftward swipe longer
// than the profile threshold clears a non-empty query.
func (c *Controller) SwipeEnd(x int) Effects {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.swiping {
		return Effects{}
	}
	c.swiping = false
	distance := x - c.swipeX
	if distance >= -c.profile.SwipeThreshold || c.query == "" {
		return Effects{}
	}
	c.cancelLocked()
	c.query = ""
	eff := c.applyLocked()
	c.log.WithField("distance", distance).Debug("swipe cleared query")
	return eff
}

// Shortcut handles a ctrl/cmd key chord. Ctrl+K or Cmd+K focuses the input
// and suppresses the key's default action on profiles with the shortcut
// enabled.
func (c *Controller) Shortcut(ctrl, meta bool, key string) Effects {
	if !c.profile.Shortcut || !(ctrl || meta) || !strings.EqualFold(key, "k") {
		return Effects{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.focused = true
	return Effects{Focus: true, PreventDefault: true}
}

func (c *Controller) cancelLocked() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.pending = false
}

func (c *Controller) applyLocked() Effects {
	start := time.Now()
	c.view = c.engine.Apply(c.catalog, c.query)
	c.log.WithFields(logrus.Fields{
		"query":   c.query,
		"results": c.view.TotalCount,
		"elapsed": time.Since(start),
	}).Debug("filter applied")

	eff := Effects{Filtered: true}
	if !c.view.Active() {
		if c.profile.Gestures && c.focused {
			c.focused = false
			eff.Blur = true
		}
		return eff
	}
	if c.view.TotalCount > 0 && c.profile.ScrollToResults {
		eff.ScrollResults = true
	}
	return eff
}
