// Package prefs holds the presentation preferences (theme and light/dark
// mode) for the dashboard: persistence, the controller that owns the live
// state, and the reflection of that state onto a style root.
package prefs

// Theme identifies a visual palette.
type Theme string

// Mode is the light/dark display variant, independent of the theme.
type Mode string

const (
	ThemeObsidian Theme = "obsidian"

	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

const (
	DefaultTheme = ThemeObsidian
	DefaultMode  = ModeDark
)

// Themes returns the theme catalog.
func Themes() []Theme {
	return []Theme{ThemeObsidian}
}

// Modes returns the supported modes.
func Modes() []Mode {
	return []Mode{ModeLight, ModeDark}
}

// ParseTheme reports whether s names a theme in the catalog.
func ParseTheme(s string) (Theme, bool) {
	for _, t := range Themes() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// ParseMode reports whether s is "light" or "dark".
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLight, ModeDark:
		return Mode(s), true
	}
	return "", false
}

// Valid reports whether t is in the catalog.
func (t Theme) Valid() bool {
	_, ok := ParseTheme(string(t))
	return ok
}

// Valid reports whether m is light or dark.
func (m Mode) Valid() bool {
	_, ok := ParseMode(string(m))
	return ok
}

// Opposite returns the other mode. Anything that is not light maps to light
// so that toggling always lands on a valid value.
func (m Mode) Opposite() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// State is the full set of presentation preferences.
type State struct {
	Theme Theme
	Mode  Mode
}

// DefaultState returns obsidian/dark.
func DefaultState() State {
	return State{Theme: DefaultTheme, Mode: DefaultMode}
}
