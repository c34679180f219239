package main

import (
	"fmt"

	"boardpos/internal/pipeline"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compute the coordinate table and write it",
		Long: `Computes the [column][row] coordinate table and writes it to the configured
outputs. Invalid geometry is reported and nothing is written.

With --check the outputs are regenerated in memory and compared with the
files on disk; a stale file fails the command with a diff.

Example:
  boardpos generate --origin-y 24 -f header -o main/board_pos.h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
	addGeometryFlags(cmd, &opts.geometry)
	addOutputFlags(cmd, &opts.output)
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail if the output files are not up to date")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *cliOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	if opts.check {
		res, err := pipeline.Check(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		for _, p := range res.Checked {
			fmt.Fprintf(cmd.ErrOrStderr(), "[OK] %s is up to date\n", p)
		}
		return nil
	}

	res, err := pipeline.Run(cmd.Context(), cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	for _, p := range res.Written {
		logger.Info("wrote table", zap.String("path", p),
			zap.Int("columns", res.Table.Columns()), zap.Int("rows", res.Table.Rows()))
	}
	return nil
}
