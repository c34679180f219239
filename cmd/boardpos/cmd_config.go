package main

import (
	"fmt"
	"os"

	"boardpos/internal/config"
	"boardpos/internal/logging"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *cliOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage boardpos.yaml",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the reference board geometry",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			annotationRewritesConfig: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, opts)
		},
	}
	initCmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (file + environment)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, opts)
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}

func runConfigInit(cmd *cobra.Command, opts *cliOptions) error {
	if _, err := os.Stat(opts.configPath); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", opts.configPath)
	}
	if err := config.DefaultConfig().Save(opts.configPath); err != nil {
		return err
	}
	logging.Get(logging.CategoryConfig).Infow("config written", "path", opts.configPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.configPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, opts *cliOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
