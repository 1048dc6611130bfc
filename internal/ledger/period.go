package ledger

import (
	"fmt"
	"time"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/model"
)

// PeriodLayout is the text form of a period.
const PeriodLayout = "2006-01"

// Period is a calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the month containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses a YYYY-MM string.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(PeriodLayout, s)
	if err != nil {
		return Period{}, errors.NewInvalidInput(errors.ErrInvalidMonth, "month", s)
	}
	return PeriodOf(t), nil
}

// String returns the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// First returns midnight on the first day of the month, local time.
func (p Period) First() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.Local)
}

// Days returns the number of days in the month.
func (p Period) Days() int {
	return p.First().AddDate(0, 1, -1).Day()
}

// Dates returns every date of the month in record form.
func (p Period) Dates() []string {
	n := p.Days()
	dates := make([]string, n)
	first := p.First()
	for i := 0; i < n; i++ {
		dates[i] = model.FormatDate(first.AddDate(0, 0, i))
	}
	return dates
}

// Next returns the following month.
func (p Period) Next() Period {
	return PeriodOf(p.First().AddDate(0, 1, 0))
}

// Prev returns the preceding month.
func (p Period) Prev() Period {
	return PeriodOf(p.First().AddDate(0, -1, 0))
}

// Contains reports whether a record date falls in the month. Only the date's
// own year and month are compared; malformed dates belong to no month.
func (p Period) Contains(date string) bool {
	d, ok := model.ParseDate(date)
	if !ok {
		return false
	}
	return d.Year() == p.Year && d.Month() == p.Month
}
