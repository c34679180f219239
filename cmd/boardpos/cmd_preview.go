package main

import (
	"fmt"

	"boardpos/cmd/boardpos/ui"
	"boardpos/internal/emit"
	"boardpos/internal/layout"

	"github.com/spf13/cobra"
)

func newPreviewCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the board with every cell's coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, opts)
		},
	}
	addGeometryFlags(cmd, &opts.geometry)
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "Render the markdown table instead of the board")
	cmd.Flags().StringVar(&opts.style, "style", "auto", "Markdown style (auto, dark, light, notty)")
	return cmd
}

// buildTable resolves the configuration and builds the table without
// rendering any configured output.
func buildTable(cmd *cobra.Command, opts *cliOptions) (*layout.Table, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	table, err := layout.Build(cfg.Board)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return table, nil
}

func runPreview(cmd *cobra.Command, opts *cliOptions) error {
	table, err := buildTable(cmd, opts)
	if err != nil {
		return err
	}

	if !opts.markdown {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderPreview(table, ui.DefaultStyles()))
		return nil
	}

	md, err := emit.Render(table, emit.Options{Format: emit.FormatMarkdown})
	if err != nil {
		return err
	}
	out, err := ui.RenderMarkdown(md, opts.style, 0)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
