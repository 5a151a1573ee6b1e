package ui

import (
	"strings"
	"sync"

	"github.com/energyexe/dashboard/internal/prefs"
)

// Root is the terminal's style root. Its classes select the active palette,
// which is re-applied to the package styles whenever the classes change.
type Root struct {
	mu      sync.Mutex
	classes prefs.ClassList
	noColor bool
}

// NewRoot returns an empty root. With noColor set, every palette is applied
// disabled.
func NewRoot(noColor bool) *Root {
	return &Root{noColor: noColor}
}

func (r *Root) Add(class string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes.Add(class)
	r.applyLocked()
}

func (r *Root) Remove(class string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes.Remove(class)
	r.applyLocked()
}

func (r *Root) Classes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.classes.Classes()
}

// SetNoColor toggles monochrome output and re-applies the palette.
func (r *Root) SetNoColor(noColor bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noColor = noColor
	r.applyLocked()
}

// State decodes the classes back into preferences. Missing classes read as
// light mode and the default theme.
func (r *Root) State() prefs.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

func (r *Root) stateLocked() prefs.State {
	s := prefs.State{Theme: prefs.DefaultTheme, Mode: prefs.ModeLight}
	for _, class := range r.classes.Classes() {
		if class == "dark" {
			s.Mode = prefs.ModeDark
			continue
		}
		if id, ok := strings.CutPrefix(class, "theme-"); ok {
			if t, ok := prefs.ParseTheme(id); ok {
				s.Theme = t
			}
		}
	}
	return s
}

func (r *Root) applyLocked() {
	palette := PaletteFor(r.stateLocked())
	palette.Disabled = r.noColor
	ApplyPalette(palette)
}
