package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

const defaultWidth = 80

// Dense drops the blank spacer lines between screen sections.
var Dense bool

func StartScreen(title string, subtitle string) {
	ClearScreen()
	fmt.Println(Header(title))
	if subtitle != "" {
		fmt.Println(Tagline.Render(subtitle))
	}
	if !Dense {
		fmt.Println()
	}
}

func ClearScreen() {
	if !IsInteractiveTerminal() {
		return
	}
	fmt.Print("\033[2J\033[H")
}

func IsInteractiveTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return false
	}
	if os.Getenv("TERM") == "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Width returns the terminal width, or 80 when stdout is not a terminal.
func Width() int {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return defaultWidth
	}
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Frame renders a full-screen layout.
func Frame(title string, subtitle string, body string, footer string) string {
	parts := make([]string, 0, 4)
	parts = append(parts, Header(title))
	if subtitle != "" {
		parts = append(parts, Tagline.Render(subtitle))
	}
	parts = append(parts, body)
	if footer != "" {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
