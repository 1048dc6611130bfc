package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/validate"
)

// Price command flags.
var (
	priceFlagCow     string
	priceFlagBuffalo string
)

// priceCmd shows the prices.
var priceCmd = &cobra.Command{
	Use:     "price",
	Aliases: []string{"prices", "p"},
	Short:   "Show the per-day milk prices",
	Long: `Show the fixed per-day price of cow and buffalo milk.

Examples:
  milkledger price
  milkledger price set --cow 65 --buffalo 85`,
	Args: cobra.NoArgs,
	RunE: runPrice,
}

// priceSetCmd changes the prices.
var priceSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the per-day milk prices",
	Long: `Change the per-day price of cow and/or buffalo milk. Prices must be
non-negative numbers.

Examples:
  milkledger price set --cow 65
  milkledger price set --buffalo 82.5
  milkledger price set --cow 60 --buffalo 80`,
	Args: cobra.NoArgs,
	RunE: runPriceSet,
}

func init() {
	priceSetCmd.Flags().StringVar(&priceFlagCow, "cow", "", "Cow milk price per day")
	priceSetCmd.Flags().StringVar(&priceFlagBuffalo, "buffalo", "", "Buffalo milk price per day")

	priceCmd.AddCommand(priceSetCmd)
	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
	prices, err := ctx.Prices()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(prices)
	}
	ctx.CLIFormatter().PrintPrices(prices)
	return nil
}

func runPriceSet(cmd *cobra.Command, args []string) error {
	changedCow := cmd.Flags().Changed("cow")
	changedBuffalo := cmd.Flags().Changed("buffalo")
	if !changedCow && !changedBuffalo {
		return errors.NewUserError("Nothing to change", "Pass --cow and/or --buffalo")
	}

	prices, err := ctx.Prices()
	if err != nil {
		return err
	}
	if changedCow {
		if prices.Cow, err = validate.Price("cow", priceFlagCow); err != nil {
			return err
		}
	}
	if changedBuffalo {
		if prices.Buffalo, err = validate.Price("buffalo", priceFlagBuffalo); err != nil {
			return err
		}
	}

	if err := ctx.PriceRepo.Set(prices); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintOK("prices saved", prices)
	}
	cli := ctx.CLIFormatter()
	cli.PrintPrices(prices)
	cli.Success("prices saved")
	return nil
}
