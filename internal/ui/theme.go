package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme returns a form theme built from the active palette.
func HuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.BorderForeground(Border)
	f.Title = f.Title.Foreground(Highlight).Bold(true)
	f.Description = f.Description.Foreground(Muted)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(Error)
	f.ErrorMessage = f.ErrorMessage.Foreground(Error)
	f.SelectSelector = f.SelectSelector.Foreground(Accent)
	f.Option = f.Option.Foreground(Foreground)
	f.SelectedOption = f.SelectedOption.Foreground(Accent)
	f.SelectedPrefix = f.SelectedPrefix.Foreground(Accent)
	f.UnselectedOption = f.UnselectedOption.Foreground(Foreground)
	f.UnselectedPrefix = f.UnselectedPrefix.Foreground(Muted)
	f.FocusedButton = f.FocusedButton.Foreground(Background).Background(Primary).Bold(true)
	f.BlurredButton = f.BlurredButton.Foreground(Foreground).Background(lipgloss.Color(""))

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
