package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"boardpos/internal/config"
	"boardpos/internal/logging"
	"boardpos/internal/pipeline"
	"boardpos/internal/watch"

	"github.com/spf13/cobra"
)

func newWatchCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the outputs whenever the config file changes",
		Long: `Generates once, then watches the config file and regenerates every
output after each save. A save that makes the geometry invalid is reported
and the previous outputs are left untouched. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, opts)
		},
	}
	addOutputFlags(cmd, &opts.output)
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, opts *cliOptions) error {
	regenerate := func(ctx context.Context) error {
		cfg, err := loadConfig(cmd, opts)
		if err != nil {
			return err
		}
		_, err = pipeline.Run(ctx, cfg, cmd.OutOrStdout())
		return err
	}

	if err := regenerate(ctx); err != nil {
		logging.Get(logging.CategoryWatch).Errorw("initial generation failed", "error", err)
	}

	debounce := config.DefaultConfig().GetDebounce()
	if cfg, err := loadConfig(cmd, opts); err == nil {
		debounce = cfg.GetDebounce()
	}

	w, err := watch.New(opts.configPath, debounce, regenerate)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
