// Command boardpos generates the board_pos lookup table the gantry firmware
// uses to turn a [column][row] cell index into a physical XY position.
package main

import (
	"fmt"
	"os"

	"boardpos/internal/config"
	"boardpos/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cliOptions holds flag values shared across commands.
type cliOptions struct {
	verbose    bool
	configPath string

	geometry geometryFlags
	output   outputFlags

	check    bool
	force    bool
	markdown bool
	style    string
}

// Logger
var logger = zap.NewNop()

// annotationRewritesConfig marks commands that run even when the config file
// cannot be loaded.
const annotationRewritesConfig = "boardpos/rewrites-config"

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "boardpos",
		Short: "Generate the physical position lookup table for the board gantry",
		Long: `boardpos computes the XY position (mm) of every cell on the board and
emits it as a constexpr table for the firmware.

Column spacing follows a step rule: the outermost gaps use the margin
distance, the next gaps in use the transition distance and every interior
gap uses the standard distance. Rows are evenly spaced.

Geometry comes from boardpos.yaml (see 'boardpos config init'), the
BOARDPOS_* environment variables and command flags, in increasing priority.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				if _, ok := cmd.Annotations[annotationRewritesConfig]; !ok {
					return err
				}
				// The command replaces the file; a broken one must not block it.
				cfg = config.DefaultConfig()
			}
			logger, err = logging.Initialize(cfg.Logging.Options(opts.verbose))
			if err != nil {
				return err
			}
			logging.BootDebug("config %s, command %s", opts.configPath, cmd.CommandPath())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Config file")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newPreviewCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
