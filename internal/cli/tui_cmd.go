package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
