package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mikecalizo/ilm-parser-collections/internal/tui/dashboard"
)

func newDashboardCmd(root *rootFlags) *cobra.Command {
	opts := dataOptions{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the interactive dashboard",
		Long:  `Launch the interactive TUI dashboard to browse policy health, lifecycle errors and recommendations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, root, opts)
		},
	}

	addDataFlags(cmd, &opts)

	return cmd
}

func runDashboard(cmd *cobra.Command, root *rootFlags, opts dataOptions) error {
	app, err := newAppContext(root)
	if err != nil {
		exitOnSetupError(err)
	}

	rep := app.analyze(cmd, opts)

	app.log.WithFields(map[string]any{
		"policies": len(rep.Policies),
		"errors":   rep.Errors.TotalDistinct,
	}).Info("dashboard loaded")

	m := dashboard.NewModel(rep, !root.noColor)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return newCommandError(
			"launch dashboard",
			"running the interactive dashboard",
			err,
			"Check that this terminal supports interactive rendering, or use 'ilmdoctor analyze' instead.",
		)
	}

	return nil
}
