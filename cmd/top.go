package cmd

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lepinkainen/fsutils/ui"
)

// TopCmd shows a live full-screen dashboard of system resources.
type TopCmd struct {
	Interval time.Duration `help:"Refresh interval" default:"1s"`
}

func (cmd *TopCmd) Run() error {
	model := ui.NewMonitorModel(cmd.Interval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
