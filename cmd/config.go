package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/manav03panchal/milkledger/internal/config"
	"github.com/manav03panchal/milkledger/internal/errors"
)

// Config command flags.
var configInitFlagForce bool

// configCmd shows the effective configuration.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg", "settings"},
	Short:   "Show the effective configuration",
	Long: `Show the configuration after the config file, .env file and environment
variables are applied. API keys and tokens are masked.

Examples:
  milkledger config
  milkledger config --format json
  milkledger config init`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// configInitCmd writes a starter config file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write the default settings to the config file (or the --config path)
so they can be edited. Secrets are better kept in a .env file.

Examples:
  milkledger config init
  milkledger config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitFlagForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	masked := ctx.Config.Masked()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(masked)
	}

	data, err := yaml.Marshal(masked)
	if err != nil {
		return err
	}
	cli := ctx.CLIFormatter()
	cli.Muted("# " + configPath())
	cli.Print(string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath()

	if _, err := os.Stat(path); err == nil && !configInitFlagForce {
		return errors.NewUserErrorWithField("config", path,
			"Config file already exists",
			"Use --force to overwrite it")
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.FromStorage("create config directory", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.FromStorage("write config file", err)
	}

	// Runs without a runtime context, so it cannot use the formatter.
	fmt.Fprintf(stdout, "✓ Wrote %s\n", path)
	return nil
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.DefaultPath()
}
