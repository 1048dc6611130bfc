package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/milkledger/internal/backup"
	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#2563EB") // Blue
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleAmount = lipgloss.NewStyle().
			Bold(true)

	styleReason = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) style(s lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return s.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.style(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.style(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.style(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.style(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.style(styleMuted, text))
}

// Received renders a received flag as a colored yes/no.
func (c *CLIFormatter) Received(v bool) string {
	if v {
		return c.style(styleSuccess, locale.Yes)
	}
	return c.style(styleError, locale.No)
}

// Money renders an amount.
func (c *CLIFormatter) Money(v float64) string {
	return c.style(styleAmount, locale.Money(v))
}

// PrintDay prints one day's record and its bill.
func (c *CLIFormatter) PrintDay(r model.DailyRecord, prices model.Prices) {
	heading := r.Date
	if t, ok := r.Day(); ok {
		heading = locale.LongDate(t)
	}
	c.Title(heading)

	for _, m := range model.AllMilks {
		line := fmt.Sprintf("  %s: %s", locale.MilkName(m), c.Received(r.Received(m)))
		if reason := r.VisibleReason(m); reason != "" {
			line += " " + c.style(styleReason, fmt.Sprintf("(%s: %s)", locale.Reason, reason))
		}
		c.Println(line)
	}
	c.Printf("  %s: %s\n", locale.Amount, c.Money(ledger.DayCost(r, prices)))
}

// PrintStats prints a month's totals as a table.
func (c *CLIFormatter) PrintStats(label string, stats ledger.MonthlyStats) {
	c.Title(label)
	c.Println(StatsTable(stats, c.IsColorEnabled()))
}

// PrintReasons prints the reasons recorded in a month.
func (c *CLIFormatter) PrintReasons(records []model.DailyRecord) {
	if len(records) == 0 {
		c.Muted(locale.NoReasons)
		return
	}
	c.Println(ReasonsTable(records, c.Width()))
}

// PrintCalendar prints the month grid.
func (c *CLIFormatter) PrintCalendar(period ledger.Period, records []model.DailyRecord, today string) {
	c.Println(Calendar(period, records, today))
	c.Muted(CalendarLegend)
}

// PrintPrices prints the current prices.
func (c *CLIFormatter) PrintPrices(p model.Prices) {
	c.Printf("%s %s: %s/%s\n", locale.Cow, locale.Price, c.Money(p.Cow), locale.Days)
	c.Printf("%s %s: %s/%s\n", locale.Buffalo, locale.Price, c.Money(p.Buffalo), locale.Days)
}

// PrintImport reports the outcome of an import.
func (c *CLIFormatter) PrintImport(result *backup.ImportResult, dryRun bool) {
	msg := fmt.Sprintf("%d of %d records imported", result.Accepted, result.Total)
	if dryRun {
		msg = fmt.Sprintf("%d of %d records would be imported (dry run)", result.Accepted, result.Total)
	}
	c.Success(msg)

	if result.Migrated > 0 {
		c.Muted(fmt.Sprintf("  %d legacy records converted", result.Migrated))
	}
	for _, rej := range result.Rejected {
		c.Warning(fmt.Sprintf("skipped element %d: %s", rej.Index, rej.Reason))
	}
}

// PrintBox prints text inside a rounded border, used for summaries and
// share messages.
func (c *CLIFormatter) PrintBox(text string) {
	if c.IsColorEnabled() {
		c.Println(styleBox.Render(text))
		return
	}
	c.Println(text)
}
