package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/energyexe/dashboard/internal/prefs"
)

// Palette defines the TUI color palette for one theme/mode pair.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

// PaletteFor returns the palette for a theme and mode. Obsidian is the only
// theme in the catalog, so only the mode selects.
func PaletteFor(s prefs.State) Palette {
	if s.Mode == prefs.ModeLight {
		return obsidianLight
	}
	return obsidianDark
}

// DefaultPalette returns the palette for the default preferences.
func DefaultPalette() Palette {
	return PaletteFor(prefs.DefaultState())
}

var obsidianDark = Palette{
	Name:       "obsidian-dark",
	Primary:    lipgloss.Color("#22D3EE"),
	Secondary:  lipgloss.Color("#A78BFA"),
	Accent:     lipgloss.Color("#38BDF8"),
	Info:       lipgloss.Color("#60A5FA"),
	Success:    lipgloss.Color("#34D399"),
	Warning:    lipgloss.Color("#FBBF24"),
	Error:      lipgloss.Color("#F87171"),
	Muted:      lipgloss.Color("#94A3B8"),
	Background: lipgloss.Color("#0B0F14"),
	Foreground: lipgloss.Color("#E2E8F0"),
	Border:     lipgloss.Color("#334155"),
	Highlight:  lipgloss.Color("#7DD3FC"),
}

var obsidianLight = Palette{
	Name:       "obsidian-light",
	Primary:    lipgloss.Color("#0E7490"),
	Secondary:  lipgloss.Color("#6D28D9"),
	Accent:     lipgloss.Color("#0369A1"),
	Info:       lipgloss.Color("#1D4ED8"),
	Success:    lipgloss.Color("#047857"),
	Warning:    lipgloss.Color("#B45309"),
	Error:      lipgloss.Color("#B91C1C"),
	Muted:      lipgloss.Color("#64748B"),
	Background: lipgloss.Color("#F8FAFC"),
	Foreground: lipgloss.Color("#0F172A"),
	Border:     lipgloss.Color("#CBD5E1"),
	Highlight:  lipgloss.Color("#0891B2"),
}
