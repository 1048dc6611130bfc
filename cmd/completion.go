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
	"github.com/spf13/cobra"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for milkledger.

To load completions:

Bash:
  $ source <(milkledger completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ milkledger completion bash > /etc/bash_completion.d/milkledger
  # macOS:
  $ milkledger completion bash > $(brew --prefix)/etc/bash_completion.d/milkledger

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ milkledger completion zsh > "${fpath[1]}/_milkledger"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ milkledger completion fish | source

  # To load completions for each session, execute once:
  $ milkledger completion fish > ~/.config/fish/completions/milkledger.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root()
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(stdout)
		case "zsh":
			return root.GenZshCompletion(stdout)
		case "fish":
			return root.GenFishCompletion(stdout, true)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
