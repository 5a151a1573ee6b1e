// Package ui provides the Charm-based terminal presentation for energyexe:
// palettes, styles, cards and screen helpers.
package ui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Active palette colors, set by ApplyPalette.
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

	// Text styles
	Bold         lipgloss.Style
	Title        lipgloss.Style
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style

	// Box styles
	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style

	HeaderStyle lipgloss.Style
	CardStyle   lipgloss.Style
	CardLabel   lipgloss.Style
	CardValue   lipgloss.Style

	activeMu      sync.RWMutex
	activePalette Palette
)

func init() {
	ApplyPalette(DefaultPalette())
}

// ActivePalette returns the palette last passed to ApplyPalette.
func ActivePalette() Palette {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return activePalette
}

// ApplyPalette switches the package colors and rebuilds every style from
// them. A disabled palette renders without color.
func ApplyPalette(p Palette) {
	activeMu.Lock()
	activePalette = p
	activeMu.Unlock()

	if p.Disabled {
		none := lipgloss.Color("")
		Primary, Secondary, Accent, Info = none, none, none, none
		Success, Warning, Error, Muted = none, none, none, none
		Background, Foreground, Border, Highlight = none, none, none, none
	} else {
		Primary, Secondary, Accent, Info = p.Primary, p.Secondary, p.Accent, p.Info
		Success, Warning, Error, Muted = p.Success, p.Warning, p.Error, p.Muted
		Background, Foreground, Border, Highlight = p.Background, p.Foreground, p.Border, p.Highlight
	}

	Bold = lipgloss.NewStyle().Bold(true)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Tagline = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HintStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	InfoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Info).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	SuccessBox = InfoBox.BorderForeground(Success)
	ErrorBox = InfoBox.BorderForeground(Error)

	TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Border)

	TableCell = lipgloss.NewStyle().
		Foreground(Foreground).
		Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 1).
		Bold(true)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2).
		Width(cardWidth)

	CardLabel = lipgloss.NewStyle().
		Foreground(Muted)

	CardValue = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)
}

// Header renders a screen title bar.
func Header(title string) string {
	return HeaderStyle.Render(title)
}
