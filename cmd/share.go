package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/share"
	"github.com/manav03panchal/milkledger/internal/summary"
)

// Share command flags.
var shareFlagSend bool

// shareCmd renders the month's bill for WhatsApp.
var shareCmd = &cobra.Command{
	Use:   "share [MONTH]",
	Short: "Prepare the month's bill for WhatsApp",
	Long: `Print the month's bill as a WhatsApp message and a wa.me link that opens
WhatsApp with the message filled in. With --send the message is delivered
through the WhatsApp Cloud API instead (needs whatsapp settings in the
config file or WHATSAPP_* variables).

Examples:
  milkledger share
  milkledger share last month
  milkledger share --send`,
	ValidArgsFunction: completeMonthArg,
	RunE:              runShare,
}

// summaryCmd asks the AI service about a month.
var summaryCmd = &cobra.Command{
	Use:     "summary [MONTH]",
	Aliases: []string{"ai"},
	Short:   "Ask the AI service for a Gujarati summary of a month",
	Long: `Send the month's records and prices to the configured AI service and
print its Gujarati summary. Set GEMINI_API_KEY (or ANTHROPIC_API_KEY with
ai.provider: anthropic) first. Failures print a fixed apology instead of an
error.

Examples:
  milkledger summary
  milkledger summary 2024-01`,
	ValidArgsFunction: completeMonthArg,
	RunE:              runSummary,
}

func init() {
	shareCmd.Flags().BoolVar(&shareFlagSend, "send", false, "Send through the WhatsApp Cloud API")

	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(summaryCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	period, err := parseMonthArgs(args)
	if err != nil {
		return err
	}
	store, prices, err := loadLedger()
	if err != nil {
		return err
	}

	stats := ledger.Aggregate(store.Records(), period, prices)
	text := share.BuildText(locale.MonthLabel(period.Year, period.Month), stats)

	sink, err := ctx.ShareSink(shareFlagSend)
	if err != nil {
		return err
	}
	outcome, err := sink.Share(cmd.Context(), text)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(struct {
			Text string `json:"text"`
			share.Outcome
		}{Text: text, Outcome: outcome})
	}

	cli := ctx.CLIFormatter()
	cli.PrintBox(text)
	if outcome.Link != "" {
		cli.Println("")
		cli.Println(outcome.Link)
	}
	if outcome.MessageID != "" {
		cli.Success(fmt.Sprintf("Sent (message %s)", outcome.MessageID))
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	period, err := parseMonthArgs(args)
	if err != nil {
		return err
	}
	store, prices, err := loadLedger()
	if err != nil {
		return err
	}

	svc := ctx.Summary()
	result := svc.Summarize(cmd.Context(), summary.Request{
		MonthLabel: locale.MonthLabel(period.Year, period.Month),
		Records:    ledger.InMonth(store.Records(), period),
		Prices:     prices,
	})

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(result)
	}

	cli := ctx.CLIFormatter()
	cli.PrintBox(result.Text)
	if result.Fallback {
		cli.Muted(fmt.Sprintf("(provider: %s, request %s; run with --debug for details)", svc.Provider(), result.RequestID))
	}
	return nil
}
