package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	program := tea.NewProgram(tui.NewModel(ctx.Store), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	ctx.Persist()
	return nil
}
