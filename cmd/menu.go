package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"edt-finder-cli/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Browse the queries interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := tui.New(loadRecords, tui.Options{
			Window:      cfg.Window,
			SlotMinutes: cfg.SlotMinutes,
		})
		_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
		return err
	},
}
