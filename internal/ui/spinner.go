package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerModel shows a spinner while a query is in flight.
type SpinnerModel struct {
	spinner  spinner.Model
	message  string
	quitting bool
	err      error
}

// NewSpinner creates a new spinner with a message
func NewSpinner(message string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(Primary)
	return SpinnerModel{
		spinner: s,
		message: message,
	}
}

func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SpinnerModel) View() string {
	if m.quitting {
		if m.err != nil {
			return ErrorStyle.Render("✗ "+m.message+" failed: "+m.err.Error()) + "\n"
		}
		return ""
	}
	return m.spinner.View() + " " + MutedStyle.Render(m.message) + "\n"
}

type errMsg struct{ err error }
type doneMsg struct{}

// RunWithSpinner runs fn, animating a spinner on interactive terminals and
// printing a single status line otherwise.
func RunWithSpinner(message string, fn func() error) error {
	if !IsInteractiveTerminal() {
		start := time.Now()
		err := fn()
		if err != nil {
			fmt.Printf("✗ %s failed (%s): %v\n", message, time.Since(start).Round(time.Millisecond), err)
		}
		return err
	}

	p := tea.NewProgram(NewSpinner(message))

	errChan := make(chan error, 1)
	go func() {
		err := fn()
		errChan <- err
		if err != nil {
			p.Send(errMsg{err})
		} else {
			p.Send(doneMsg{})
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	return <-errChan
}
