package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/model"
)

// CalendarLegend explains the calendar cell markers.
const CalendarLegend = "C = " + locale.Cow + "   B = " + locale.Buffalo + "   * = " + locale.Reason + "   [ ] = " + locale.Today

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

func bold(s string, color bool) string {
	if color {
		return text.Bold.Sprint(s)
	}
	return s
}

// StatsTable renders the per-milk days, price and subtotal with a total row.
func StatsTable(stats ledger.MonthlyStats, color bool) string {
	t := newTable()
	t.AppendHeader(table.Row{"", locale.Days, locale.Price, locale.Amount})

	for _, m := range model.AllMilks {
		t.AppendRow(table.Row{
			locale.MilkName(m),
			stats.Days(m),
			locale.Money(stats.Prices.For(m)),
			locale.Money(stats.Cost(m)),
		})
	}

	t.AppendFooter(table.Row{
		bold(locale.TotalDays, color),
		bold(fmt.Sprintf("%d", stats.ActiveDays), color),
		bold(locale.TotalDue, color),
		bold(locale.Money(stats.TotalCost), color),
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	return t.Render()
}

// ReasonsTable renders the visible reasons of each day, wrapped to width.
func ReasonsTable(records []model.DailyRecord, width int) string {
	t := newTable()
	t.AppendHeader(table.Row{"તારીખ", locale.Cow, locale.Buffalo})

	for _, r := range records {
		t.AppendRow(table.Row{
			r.Date,
			reasonCell(r, model.MilkCow),
			reasonCell(r, model.MilkBuffalo),
		})
	}

	// Borders and the date column take about 20 columns.
	reasonWidth := (width - 20) / 2
	if reasonWidth < 12 {
		reasonWidth = 12
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: reasonWidth},
		{Number: 3, WidthMax: reasonWidth},
	})

	return t.Render()
}

func reasonCell(r model.DailyRecord, m model.Milk) string {
	if reason := r.VisibleReason(m); reason != "" {
		return reason
	}
	if r.Received(m) {
		return locale.Yes
	}
	return "-"
}

// Calendar renders a month as a week grid starting on Sunday. Each cell
// shows the day number and C/B for the milks received; * marks a reason and
// brackets mark the highlighted day.
func Calendar(period ledger.Period, records []model.DailyRecord, highlight string) string {
	t := newTable()

	header := make(table.Row, 7)
	for i := range header {
		header[i] = locale.WeekdayShort(time.Weekday(i))
	}
	t.AppendHeader(header)

	days := ledger.MonthDays(records, period)
	offset := int(period.First().Weekday())

	row := make(table.Row, 7)
	for i := range row {
		row[i] = ""
	}
	for i, d := range days {
		col := (offset + i) % 7
		row[col] = CalendarCell(i+1, d, d.Date == highlight)
		if col == 6 {
			t.AppendRow(row)
			row = make(table.Row, 7)
			for j := range row {
				row[j] = ""
			}
		}
	}
	if (offset+len(days))%7 != 0 {
		t.AppendRow(row)
	}

	configs := make([]table.ColumnConfig, 7)
	for i := range configs {
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignCenter, AlignHeader: text.AlignCenter}
	}
	t.SetColumnConfigs(configs)

	return t.Render()
}

// CalendarCell renders one calendar day, e.g. "15 CB", "[16 C*]".
func CalendarCell(day int, r model.DailyRecord, highlight bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%2d ", day)
	sb.WriteString(marker(r.Cow, "C"))
	sb.WriteString(marker(r.Buffalo, "B"))
	if r.HasVisibleReason() {
		sb.WriteString("*")
	} else {
		sb.WriteString(" ")
	}
	if highlight {
		return "[" + sb.String() + "]"
	}
	return sb.String()
}

func marker(on bool, s string) string {
	if on {
		return s
	}
	return "·"
}
