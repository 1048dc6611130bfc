package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/milkledger/internal/backup"
	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/logging"
	"github.com/manav03panchal/milkledger/internal/validate"
)

// Export command flags.
var (
	exportFlagOutput string
	exportFlagFormat string
	exportFlagMonth  string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"backup"},
	Short:   "Export the records as a JSON backup or a month sheet",
	Long: `Export every record as a JSON backup that 'milkledger import' can read
back, or one month as a CSV or XLSX sheet with a totals row.

The default file name is milk-records-backup-YYYY-MM-DD.json for backups
and milk-YYYY-MM.<format> for sheets. Use -o - to write to stdout.

Examples:
  milkledger export
  milkledger export -o backup.json
  milkledger export --format xlsx --month last month
  milkledger export --format csv -o -`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (- for stdout)")
	exportCmd.Flags().StringVar(&exportFlagFormat, "format", backup.FormatJSON, "Export format: json, csv, xlsx")
	exportCmd.Flags().StringVar(&exportFlagMonth, "month", "", "Month to export (sheets default to the current month)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := backup.ParseFormat(exportFlagFormat)
	if err != nil {
		return err
	}
	store, prices, err := loadLedger()
	if err != nil {
		return err
	}

	records := store.Records()
	var period ledger.Period
	hasMonth := exportFlagMonth != "" || format != backup.FormatJSON
	if hasMonth {
		if period, err = parseMonthArgs([]string{exportFlagMonth}); err != nil {
			return err
		}
	}

	name := exportFlagOutput
	if name == "" {
		if format == backup.FormatJSON {
			name = backup.FileName(ctx.Now())
		} else {
			name = backup.MonthFileName(period, format)
		}
	}

	write := func(w io.Writer) error {
		switch format {
		case backup.FormatCSV:
			return backup.NewMonthSheet(records, period, prices).WriteCSV(w)
		case backup.FormatXLSX:
			return backup.NewMonthSheet(records, period, prices).WriteXLSX(w)
		default:
			if hasMonth {
				records = ledger.InMonth(records, period)
			}
			return backup.Export(w, records)
		}
	}

	if name == "-" {
		return write(stdout)
	}

	name = filepath.Join(filepath.Dir(name), validate.SanitizeFilename(filepath.Base(name)))
	if err := writeFile(name, write); err != nil {
		return err
	}
	logging.LogOperation("export", "file", name, logging.KeyCount, len(records))

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintOK("exported", map[string]any{
			"file":   name,
			"format": format,
		})
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Exported to %s", name))
	return nil
}

// writeFile creates path and hands it to write. A failed write removes the
// partial file.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.FromStorage("create export file", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return errors.FromStorage("write export file", err)
	}
	return f.Close()
}
