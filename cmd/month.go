package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/output"
)

// monthCmd shows a month.
var monthCmd = &cobra.Command{
	Use:     "month [MONTH]",
	Aliases: []string{"mo", "cal"},
	Short:   "Show a month's calendar, totals and reasons",
	Long: `Show the month as a calendar, the days and amount for each milk, the
total due and the reasons recorded. MONTH defaults to the current month.

Examples:
  milkledger month
  milkledger month last month
  milkledger month 2024-01
  milkledger month જાન્યુઆરી`,
	ValidArgsFunction: completeMonthArg,
	RunE:              runMonth,
}

// reasonsCmd lists a month's reasons.
var reasonsCmd = &cobra.Command{
	Use:   "reasons [MONTH]",
	Short: "List the reasons recorded in a month",
	Long: `List every day of the month that has a reason for a milk that was not
received.

Examples:
  milkledger reasons
  milkledger reasons 2024-01`,
	ValidArgsFunction: completeMonthArg,
	RunE:              runReasons,
}

func init() {
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(reasonsCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	period, err := parseMonthArgs(args)
	if err != nil {
		return err
	}
	store, prices, err := loadLedger()
	if err != nil {
		return err
	}

	records := store.Records()
	label := locale.MonthLabel(period.Year, period.Month)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewMonthResponse(label, records, period, prices, true))
	}

	cli := ctx.CLIFormatter()
	cli.Title(label)
	cli.PrintCalendar(period, records, ctx.Today())
	cli.Println("")
	cli.PrintStats(locale.TotalDue, ledger.Aggregate(records, period, prices))
	cli.Println("")
	cli.PrintReasons(ledger.Reasons(records, period))
	return nil
}

func runReasons(cmd *cobra.Command, args []string) error {
	period, err := parseMonthArgs(args)
	if err != nil {
		return err
	}
	store, prices, err := loadLedger()
	if err != nil {
		return err
	}

	reasons := ledger.Reasons(store.Records(), period)

	if ctx.IsJSON() {
		days := make([]output.DayOutput, 0, len(reasons))
		for _, r := range reasons {
			days = append(days, output.NewDayOutput(r, prices))
		}
		return ctx.JSONFormatter().JSON(days)
	}

	cli := ctx.CLIFormatter()
	cli.Title(locale.Reasons + " - " + locale.MonthLabel(period.Year, period.Month))
	cli.PrintReasons(reasons)
	return nil
}
