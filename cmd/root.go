// Package cmd provides the CLI commands for milkledger.
//
// Milkledger - A command-line household milk tracker
//
// Copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/logging"
	"github.com/manav03panchal/milkledger/internal/output"
	"github.com/manav03panchal/milkledger/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat  string
	flagColor   string
	flagDebug   bool
	flagDB      string
	flagConfig  string
	flagEnvFile string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// Output streams and clock, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	now              = time.Now
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "milkledger",
	Short: "Track the household's daily cow and buffalo milk",
	Long: `Milkledger keeps a per-day record of whether cow and buffalo milk was
received, why it was not, and what the month costs.

Examples:
  milkledger mark cow yes
  milkledger mark buffalo no --reason "supplier away"
  milkledger month last month
  milkledger share
  milkledger dashboard`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logCfg := logging.DefaultConfig()
		if flagDebug {
			logCfg = logging.DebugConfig()
		}
		logCfg.Output = stderr
		logging.Init(logCfg)

		// Skip initialization for commands that never touch the database
		if skipsRuntime(cmd) {
			return nil
		}

		format, err := output.ParseFormat(flagFormat)
		if err != nil {
			return errors.NewUserErrorWithField("format", flagFormat, "Unknown output format", "Use cli, json or plain")
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.Debug = flagDebug
		opts.DBPath = flagDB
		opts.ConfigFile = flagConfig
		opts.EnvFile = flagEnvFile
		if cmd.Flags().Changed("color") {
			colorMode, err := output.ParseColorMode(flagColor)
			if err != nil {
				return errors.NewUserErrorWithField("color", flagColor, "Unknown color mode", "Use auto, always or never")
			}
			opts.ColorMode = colorMode
		}

		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}
		ctx.Formatter.Writer = stdout
		ctx.Now = now
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeContext()
	},
	RunE: runHome,
}

// runHome shows today's record and the current month's totals.
func runHome(cmd *cobra.Command, args []string) error {
	store, err := ctx.Ledger()
	if err != nil {
		return err
	}
	prices, err := ctx.Prices()
	if err != nil {
		return err
	}

	today := store.Get(ctx.Today())
	period := ledger.PeriodOf(ctx.Now())
	stats := ledger.Aggregate(store.Records(), period, prices)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]any{
			"today": output.NewDayOutput(today, prices),
			"month": stats,
		})
	}

	cli := ctx.CLIFormatter()
	cli.PrintDay(today, prices)
	cli.Println("")
	cli.PrintStats(locale.MonthLabel(period.Year, period.Month), stats)
	return nil
}

// skipsRuntime reports whether a command runs without opening the database.
func skipsRuntime(cmd *cobra.Command) bool {
	switch cmd.CommandPath() {
	case "milkledger version", "milkledger completion", "milkledger config init":
		return true
	}
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return false
}

func closeContext() error {
	if ctx == nil {
		return nil
	}
	err := ctx.Close()
	ctx = nil
	return err
}

// Execute runs the root command. Errors are printed with their suggestion,
// or as a JSON object in JSON mode, before being returned.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
		// PersistentPostRunE does not run after a failed RunE.
		_ = closeContext()
	}
	return err
}

func printError(err error) {
	logging.DebugLog("command failed", logging.KeyError, err, "chain", errors.Chain(err))

	if flagFormat == string(output.FormatJSON) {
		f := output.NewFormatter()
		f.Writer = stdout
		_ = output.NewJSONFormatter(f).PrintError(err)
		return
	}
	io.WriteString(stderr, "Error: "+errors.FormatByCategory(err)+"\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "",
		"Database directory (\":memory:\" for a throwaway store)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file (default $XDG_CONFIG_HOME/milkledger/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "",
		"Env file with API keys (default ./.env)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("milkledger %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}
