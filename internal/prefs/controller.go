package prefs

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Controller owns the live presentation preferences for one provider scope.
// Mutations write through to the store, re-apply the style root and then
// notify subscribers, in that order.
type Controller struct {
	store  *Store
	root   StyleRoot
	logger *log.Logger

	defaultTheme Theme
	defaultMode  Mode

	mu     sync.Mutex
	state  State
	subs   []subscription
	nextID int
}

type subscription struct {
	id int
	fn func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithDefaultTheme sets the theme used when nothing valid is persisted.
// Values outside the catalog are ignored.
func WithDefaultTheme(t Theme) Option {
	return func(c *Controller) {
		if t.Valid() {
			c.defaultTheme = t
		}
	}
}

// WithDefaultMode sets the mode used when nothing valid is persisted.
// Values other than light/dark are ignored.
func WithDefaultMode(m Mode) Option {
	return func(c *Controller) {
		if m.Valid() {
			c.defaultMode = m
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New reads the persisted preferences, falling back to the configured
// defaults for anything absent or unrecognized, and reflects the result onto
// root. store and root may be nil.
func New(store *Store, root StyleRoot, opts ...Option) *Controller {
	c := &Controller{
		store:        store,
		root:         root,
		logger:       log.New(io.Discard),
		defaultTheme: DefaultTheme,
		defaultMode:  DefaultMode,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = NewStore(nil, c.logger)
	}

	c.state = State{Theme: c.defaultTheme, Mode: c.defaultMode}
	if t, ok := c.store.ReadTheme(); ok {
		c.state.Theme = t
	}
	if m, ok := c.store.ReadMode(); ok {
		c.state.Mode = m
	}

	Reflect(c.root, c.state)
	c.logger.Debug("preferences loaded", "theme", c.state.Theme, "mode", c.state.Mode)
	return c
}

// State returns a snapshot of the current preferences.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Theme() Theme { return c.State().Theme }

func (c *Controller) Mode() Mode { return c.State().Mode }

// SetTheme switches the theme. Themes outside the catalog are rejected and
// leave the state untouched.
func (c *Controller) SetTheme(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: theme %q", ErrUnrecognizedValue, t)
	}
	c.apply(func(s *State) { s.Theme = t }, func() { c.store.WriteTheme(t) })
	return nil
}

// SetMode switches between light and dark.
func (c *Controller) SetMode(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: mode %q", ErrUnrecognizedValue, m)
	}
	c.apply(func(s *State) { s.Mode = m }, func() { c.store.WriteMode(m) })
	return nil
}

// ToggleMode flips the mode and returns the new one.
func (c *Controller) ToggleMode() Mode {
	next := c.Mode().Opposite()
	// Opposite always yields a valid mode.
	_ = c.SetMode(next)
	return next
}

// Reload re-reads the store and adopts any valid persisted value that
// differs from the in-memory state, without writing it back. Absent or
// unrecognized values keep the current state. It reports whether anything
// changed.
func (c *Controller) Reload() bool {
	theme, themeOK := c.store.ReadTheme()
	mode, modeOK := c.store.ReadMode()

	cur := c.State()
	next := cur
	if themeOK {
		next.Theme = theme
	}
	if modeOK {
		next.Mode = mode
	}
	if next == cur {
		return false
	}
	c.apply(func(s *State) { *s = next }, nil)
	return true
}

// Subscribe registers fn to run after every change, in registration order.
// The returned func removes it.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.subs = slices.DeleteFunc(c.subs, func(s subscription) bool { return s.id == id })
	}
}

func (c *Controller) apply(mutate func(*State), persist func()) {
	c.mu.Lock()
	mutate(&c.state)
	state := c.state
	if persist != nil {
		persist()
	}
	Reflect(c.root, state)
	subs := slices.Clone(c.subs)
	c.mu.Unlock()

	c.logger.Debug("preferences changed", "theme", state.Theme, "mode", state.Mode)
	for _, s := range subs {
		s.fn(state)
	}
}
