package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
)

var milkCompletions = []string{
	"cow\t" + locale.Cow,
	"buffalo\t" + locale.Buffalo,
}

var answerCompletions = []string{
	"yes\t" + locale.Yes,
	"no\t" + locale.No,
}

// completeMilkArg completes the milk type as the first argument.
func completeMilkArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return filterCompletions(milkCompletions, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeMarkArgs completes "mark cow|buffalo yes|no".
func completeMarkArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return filterCompletions(milkCompletions, toComplete), cobra.ShellCompDirectiveNoFileComp
	case 1:
		return filterCompletions(answerCompletions, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// completeMonthArg suggests relative months and the last twelve months.
func completeMonthArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	options := []string{
		"this month\tcurrent month",
		"last month\tprevious month",
	}
	p := ledger.PeriodOf(now())
	for i := 0; i < 12; i++ {
		options = append(options, p.String()+"\t"+locale.MonthLabel(p.Year, p.Month))
		p = p.Prev()
	}
	return filterCompletions(options, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterCompletions(options []string, toComplete string) []string {
	var filtered []string
	for _, o := range options {
		if strings.HasPrefix(strings.Split(o, "\t")[0], toComplete) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
