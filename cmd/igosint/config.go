package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"igosint/pkg/config"
	"igosint/pkg/ui"
)

// newConfigCmd builds the config command and its subcommands
func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
		Long: `Manage igosint configuration files.

Configuration is loaded from, in order of priority:
  - Command line flags (highest priority)
  - Environment variables (IGOSINT_*)
  - .env files
  - Configuration file
  - Default values (lowest priority)`,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to a file",
		Long: `Write the default configuration to a YAML file.

The file is created as '.igosint.yaml' in the current directory unless a
different path is given with --config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, opts)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, opts)
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigValidate(cmd, opts)
		},
	}

	configCmd.AddCommand(initCmd, showCmd, validateCmd)
	return configCmd
}

func runConfigInit(cmd *cobra.Command, opts *rootOptions) error {
	configPath := opts.configFile
	if configPath == "" {
		configPath = "." + config.AppName + ".yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}

	ui.PrintSuccess("Configuration written to " + configPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configFile, opts.commandFlags())
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

func runConfigValidate(cmd *cobra.Command, opts *rootOptions) error {
	if _, err := config.Load(opts.configFile, opts.commandFlags()); err != nil {
		return err
	}

	ui.PrintSuccess("Configuration is valid")
	return nil
}
