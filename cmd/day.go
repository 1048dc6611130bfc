package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/model"
	"github.com/manav03panchal/milkledger/internal/output"
	"github.com/manav03panchal/milkledger/internal/parser"
	"github.com/manav03panchal/milkledger/internal/validate"
)

// Day command flags.
var (
	markFlagDate   string
	markFlagReason string
	reasonFlagDate string
)

// markCmd records whether a milk was received.
var markCmd = &cobra.Command{
	Use:     "mark cow|buffalo yes|no",
	Aliases: []string{"m"},
	Short:   "Record whether cow or buffalo milk was received",
	Long: `Record whether cow or buffalo milk was received on a day. The day
defaults to today. A reason can be attached in the same step.

Examples:
  milkledger mark cow yes
  milkledger mark buffalo no --reason "supplier away"
  milkledger mark cow no --date yesterday
  milkledger mark ભેંસ હા --date 2024-01-15`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeMarkArgs,
	RunE:              runMark,
}

// reasonCmd sets or clears the reason for a milk on a day.
var reasonCmd = &cobra.Command{
	Use:     "reason cow|buffalo [TEXT...]",
	Aliases: []string{"r", "why"},
	Short:   "Set or clear the reason for a missed milk",
	Long: `Set the reason a milk was not received. Without TEXT the reason is
cleared.

Examples:
  milkledger reason buffalo sick
  milkledger reason cow "went to the village" --date yesterday
  milkledger reason cow`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeMilkArg,
	RunE:              runReason,
}

// dayCmd shows one day.
var dayCmd = &cobra.Command{
	Use:   "day [DATE]",
	Short: "Show the record of a day",
	Long: `Show whether each milk was received on a day, any reason, and the
day's bill. DATE defaults to today.

Examples:
  milkledger day
  milkledger day yesterday
  milkledger day 2024-01-15
  milkledger day "3 days ago"`,
	RunE: runDay,
}

func init() {
	markCmd.Flags().StringVarP(&markFlagDate, "date", "d", "", "Day to record (default today)")
	markCmd.Flags().StringVar(&markFlagReason, "reason", "", "Reason to store for this milk")
	reasonCmd.Flags().StringVarP(&reasonFlagDate, "date", "d", "", "Day to record (default today)")

	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(reasonCmd)
	rootCmd.AddCommand(dayCmd)
}

func runMark(cmd *cobra.Command, args []string) error {
	milk, err := parseMilkArg(args[0])
	if err != nil {
		return err
	}
	received, err := validate.Answer(args[1])
	if err != nil {
		return err
	}
	date, err := parser.ParseDate(markFlagDate, ctx.Now())
	if err != nil {
		return err
	}

	store, prices, err := loadLedger()
	if err != nil {
		return err
	}

	var record model.DailyRecord
	if cmd.Flags().Changed("reason") {
		record, err = store.Set(date, milk, received, markFlagReason)
	} else {
		record, err = store.SetBoolean(date, milk, received)
	}
	if err != nil {
		return err
	}

	return printDay(record, prices, "saved")
}

func runReason(cmd *cobra.Command, args []string) error {
	milk, err := parseMilkArg(args[0])
	if err != nil {
		return err
	}
	date, err := parser.ParseDate(reasonFlagDate, ctx.Now())
	if err != nil {
		return err
	}

	store, prices, err := loadLedger()
	if err != nil {
		return err
	}

	record, err := store.SetReason(date, milk, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	return printDay(record, prices, "saved")
}

func runDay(cmd *cobra.Command, args []string) error {
	date, err := parser.ParseDate(strings.Join(args, " "), ctx.Now())
	if err != nil {
		return err
	}

	store, prices, err := loadLedger()
	if err != nil {
		return err
	}

	return printDay(store.Get(date), prices, "")
}

func printDay(record model.DailyRecord, prices model.Prices, message string) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewDayOutput(record, prices))
	}

	cli := ctx.CLIFormatter()
	cli.PrintDay(record, prices)
	if message != "" {
		cli.Success(message)
	}
	return nil
}

// loadLedger returns the record store and the current prices.
func loadLedger() (*ledger.Store, model.Prices, error) {
	store, err := ctx.Ledger()
	if err != nil {
		return nil, model.Prices{}, err
	}
	prices, err := ctx.Prices()
	if err != nil {
		return nil, model.Prices{}, err
	}
	return store, prices, nil
}

func parseMilkArg(s string) (model.Milk, error) {
	m, err := model.ParseMilk(s)
	if err != nil {
		return "", errors.NewInvalidInput(errors.ErrInvalidMilk, "milk", s)
	}
	return m, nil
}

// parseMonthArgs joins free-form month arguments, e.g. "last month".
func parseMonthArgs(args []string) (ledger.Period, error) {
	return parser.ParseMonth(strings.Join(args, " "), ctx.Now())
}
