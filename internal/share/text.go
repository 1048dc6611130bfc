// Package share renders the monthly bill as a fixed Gujarati message and
// hands it to WhatsApp, either as a wa.me link or through the Cloud API.
package share

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/model"
)

// BuildText renders the share message for a month.
func BuildText(monthLabel string, stats ledger.MonthlyStats) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🥛 *%s - %s* 🥛\n\n", locale.AppTitle, monthLabel)
	fmt.Fprintf(&sb, "🗓 %s: %d\n\n", locale.TotalDays, stats.ActiveDays)

	writeMilk(&sb, "🐄", model.MilkCow, stats)
	sb.WriteString("\n")
	writeMilk(&sb, "🐃", model.MilkBuffalo, stats)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "💰 *%s: %s*\n\n", locale.TotalDue, locale.Money(stats.TotalCost))
	sb.WriteString(locale.Footer)

	return sb.String()
}

func writeMilk(sb *strings.Builder, icon string, m model.Milk, stats ledger.MonthlyStats) {
	fmt.Fprintf(sb, "%s *%s:*\n", icon, locale.MilkName(m))
	fmt.Fprintf(sb, "- %s: %d\n", locale.Days, stats.Days(m))
	fmt.Fprintf(sb, "- %s: %s\n", locale.Price, locale.Money(stats.Prices.For(m)))
	fmt.Fprintf(sb, "- %s: %s\n", locale.Amount, locale.Money(stats.Cost(m)))
}
