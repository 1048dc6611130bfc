package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/milkledger/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d", "tui"},
	Short:   "Open the interactive calendar dashboard",
	Long: `Open an interactive terminal dashboard with the month calendar, the
selected day and the month's totals.

Keyboard Controls:
  ←↓↑→ / hjkl  Move between days
  [ ]          Previous / next month
  t            Jump to today
  c / b        Toggle cow / buffalo milk for the selected day
  C / B        Edit the cow / buffalo reason (enter saves, esc cancels)
  a            AI summary of the month
  s            WhatsApp share text and link
  esc          Close the panel
  q            Quit dashboard

Examples:
  milkledger dashboard
  milkledger tui`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	store, prices, err := loadLedger()
	if err != nil {
		return err
	}

	// Configure the dashboard
	config := tui.DashboardConfig{
		Store:   store,
		Prices:     prices,
		PriceSaver: ctx.PriceRepo,
		Summary:    ctx.Summary(),
		Now:        ctx.Now,
	}

	// Run the TUI dashboard
	return tui.Run(config)
}
