package backup

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/model"
)

// Month export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ParseFormat validates an export format name.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatCSV, FormatXLSX:
		return f, nil
	}
	return "", errors.NewInvalidInput(errors.ErrUnknownFormat, "format", s)
}

// MonthFileName returns the default sheet file name for a month.
func MonthFileName(period ledger.Period, format string) string {
	return fmt.Sprintf("milk-%s.%s", period.String(), format)
}

var sheetHeader = []string{
	"તારીખ", "વાર",
	locale.Cow, locale.Cow + " " + locale.Reason,
	locale.Buffalo, locale.Buffalo + " " + locale.Reason,
	locale.Amount,
}

// MonthSheet is every day of one month plus its totals.
type MonthSheet struct {
	Label string
	Days  []model.DailyRecord
	Stats ledger.MonthlyStats
}

// NewMonthSheet builds the sheet for a month from all records.
func NewMonthSheet(records []model.DailyRecord, period ledger.Period, prices model.Prices) MonthSheet {
	return MonthSheet{
		Label: locale.MonthLabel(period.Year, period.Month),
		Days:  ledger.MonthDays(records, period),
		Stats: ledger.Aggregate(records, period, prices),
	}
}

// rows renders the header, one row per day and the totals row.
func (s MonthSheet) rows() [][]string {
	rows := make([][]string, 0, len(s.Days)+2)
	rows = append(rows, sheetHeader)

	for _, d := range s.Days {
		weekday := ""
		if t, ok := d.Day(); ok {
			weekday = locale.WeekdayName(t.Weekday())
		}
		rows = append(rows, []string{
			d.Date, weekday,
			locale.YesNo(d.Cow), d.VisibleReason(model.MilkCow),
			locale.YesNo(d.Buffalo), d.VisibleReason(model.MilkBuffalo),
			model.FormatAmount(ledger.DayCost(d, s.Stats.Prices)),
		})
	}

	rows = append(rows, []string{
		locale.TotalDue, fmt.Sprintf("%d", s.Stats.ActiveDays),
		fmt.Sprintf("%d", s.Stats.TotalCowDays), "",
		fmt.Sprintf("%d", s.Stats.TotalBuffaloDays), "",
		model.FormatAmount(s.Stats.TotalCost),
	})
	return rows
}

// WriteCSV writes the sheet as CSV.
func (s MonthSheet) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(s.rows()); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// WriteXLSX writes the sheet as an Excel workbook with a single sheet named
// after the month.
func (s MonthSheet) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := s.Stats.Period.String()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	rows := s.rows()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		// Counts and amounts are written as numbers so that the sheet can sum them.
		if i > 0 {
			last := len(row) - 1
			values[last] = numeric(row[last])
			if i == len(rows)-1 {
				values[1], values[2], values[4] = numeric(row[1]), numeric(row[2]), numeric(row[4])
			}
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.WithContextf(err, "writing row %d", i+1)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(sheetHeader))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		return err
	}
	totalRow := fmt.Sprintf("%d", len(rows))
	if err := f.SetCellStyle(sheet, "A"+totalRow, lastCol+totalRow, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 14); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

func numeric(s string) any {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return v
}
