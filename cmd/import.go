package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/milkledger/internal/backup"
	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/logging"
	"github.com/manav03panchal/milkledger/internal/output"
)

// Import command flags.
var (
	importFlagDryRun      bool
	importFlagSkipInvalid bool
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:     "import FILE",
	Aliases: []string{"restore"},
	Short:   "Replace all records with a JSON backup",
	Long: `Replace every stored record with the contents of a JSON backup made by
'milkledger export'. Older backups that stored quantities are converted.

The file must hold a JSON array. By default any invalid element (not an
object, bad date, duplicate date) aborts the import and nothing changes.

Examples:
  milkledger import milk-records-backup-2024-02-01.json
  milkledger import backup.json --dry-run
  milkledger import backup.json --skip-invalid`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importFlagDryRun, "dry-run", false, "Check the file without changing anything")
	importCmd.Flags().BoolVar(&importFlagSkipInvalid, "skip-invalid", false, "Import the valid elements and skip the rest")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.NewUserErrorWithField("file", filename, locale.ImportReadFail+" (cannot read file)",
			"Check the path and permissions")
	}

	result, err := backup.Parse(data)
	if err != nil {
		return err
	}

	store, err := ctx.Ledger()
	if err != nil && !errors.Is(err, errors.ErrRecordsCorrupted) {
		return err
	}
	if store == nil {
		logging.Warn("stored records are unreadable, import will replace them", logging.KeyError, err)
		store = ctx.RecoverLedger()
	}

	opts := backup.Options{SkipInvalid: importFlagSkipInvalid, DryRun: importFlagDryRun}
	if err := backup.Apply(store, result, opts); err != nil {
		return err
	}
	logging.LogOperation("import", "file", filename,
		logging.KeyCount, result.Accepted, "dry_run", importFlagDryRun)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.ImportResponse{
			Status: "ok",
			DryRun: importFlagDryRun,
			Result: result,
		})
	}

	cli := ctx.CLIFormatter()
	cli.PrintImport(result, importFlagDryRun)
	if !importFlagDryRun {
		cli.Success(locale.ImportSuccess)
	}
	return nil
}
