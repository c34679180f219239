package main

import (
	"fmt"

	"boardpos/cmd/boardpos/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newInspectCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Walk the board interactively and read cell coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts)
		},
	}
	addGeometryFlags(cmd, &opts.geometry)
	return cmd
}

func runInspect(cmd *cobra.Command, opts *cliOptions) error {
	table, err := buildTable(cmd, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		ui.NewInspectorModel(table, ui.DefaultStyles()),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("inspector failed: %w", err)
	}

	if m, ok := final.(ui.InspectorModel); ok {
		col, row, c := m.Selected()
		fmt.Fprintf(cmd.OutOrStdout(), "[%d][%d] = {%.3f, %.3f}\n", col, row, c.X, c.Y)
	}
	return nil
}
