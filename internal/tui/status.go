package tui

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/model"
)

// DayComponent displays the selected day.
type DayComponent struct {
	Record model.DailyRecord
	Prices model.Prices
	Width  int
}

// NewDayComponent creates a new day component.
func NewDayComponent(r model.DailyRecord, prices model.Prices, width int) *DayComponent {
	return &DayComponent{Record: r, Prices: prices, Width: width}
}

// View renders the day component.
func (dc *DayComponent) View() string {
	var content strings.Builder

	heading := dc.Record.Date
	if t, ok := dc.Record.Day(); ok {
		heading = locale.LongDate(t)
	}
	content.WriteString(StyleTitle.Render(heading))
	content.WriteString("\n")

	for _, m := range model.AllMilks {
		content.WriteString("\n")
		content.WriteString(fmt.Sprintf("%s: %s", locale.MilkName(m), yesNo(dc.Record.Received(m))))
		if reason := dc.Record.VisibleReason(m); reason != "" {
			content.WriteString("  ")
			content.WriteString(StyleReason.Render(fmt.Sprintf("(%s: %s)", locale.Reason, reason)))
		}
	}

	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("%s: %s", locale.Amount,
		StyleAmount.Render(locale.Money(ledger.DayCost(dc.Record, dc.Prices)))))

	return StyleDayBox.Width(boxWidth(dc.Width)).Render(content.String())
}

func yesNo(v bool) string {
	if v {
		return StyleYes.Render(locale.Yes)
	}
	return StyleNo.Render(locale.No)
}

// StatsComponent displays the month totals.
type StatsComponent struct {
	Stats ledger.MonthlyStats
	Width int
}

// NewStatsComponent creates a new stats component.
func NewStatsComponent(stats ledger.MonthlyStats, width int) *StatsComponent {
	return &StatsComponent{Stats: stats, Width: width}
}

// View renders the stats component.
func (sc *StatsComponent) View() string {
	var content strings.Builder

	s := sc.Stats
	for _, m := range model.AllMilks {
		content.WriteString(fmt.Sprintf("%s: %d %s × %s = %s\n",
			locale.MilkName(m), s.Days(m), locale.Days,
			locale.Money(s.Prices.For(m)), locale.Money(s.Cost(m))))
	}

	// Share of the month with any milk.
	var pct float64
	if days := s.Period.Days(); days > 0 {
		pct = float64(s.ActiveDays) * 100 / float64(days)
	}
	barWidth := boxWidth(sc.Width) - 8
	if barWidth < 10 {
		barWidth = 10
	}
	content.WriteString(fmt.Sprintf("%s: %d\n", locale.TotalDays, s.ActiveDays))
	content.WriteString(ProgressBar(pct, barWidth))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("%s: %s", locale.TotalDue, StyleAmount.Render(locale.Money(s.TotalCost))))

	return StyleStatsBox.Width(boxWidth(sc.Width)).Render(content.String())
}

// PanelComponent displays free text under a title: the summary, the share
// message or the reason being typed.
type PanelComponent struct {
	Title string
	Body  string
	Width int
}

// View renders the panel, or nothing when it has no title.
func (pc *PanelComponent) View() string {
	if pc.Title == "" {
		return ""
	}
	content := StyleTitle.Render(pc.Title) + "\n\n" + pc.Body
	return StylePanelBox.Width(boxWidth(pc.Width)).Render(content)
}

func boxWidth(width int) int {
	if width < 24 {
		return 20
	}
	return width - 4
}

type helpKey struct {
	key  string
	desc string
}

var (
	navigationKeys = []helpKey{
		{"←↓↑→", "move"},
		{"[ ]", "month"},
		{"t", "today"},
		{"c/b", "toggle"},
		{"C/B", "reason"},
		{"p", "prices"},
		{"a", "summary"},
		{"s", "share"},
		{"q", "quit"},
	}
	inputKeys = []helpKey{
		{"enter", "save"},
		{"esc", "cancel"},
	}
)

// HelpBar renders the help bar at the bottom.
func HelpBar(editing bool) string {
	keys := navigationKeys
	if editing {
		keys = inputKeys
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleHelpDesc.Render(k.desc))
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
