package ledger

import (
	"sort"

	"github.com/manav03panchal/milkledger/internal/model"
)

// MonthlyStats are the derived totals for one month. They are never stored.
type MonthlyStats struct {
	Period           Period       `json:"-"`
	Month            string       `json:"month"`
	Prices           model.Prices `json:"prices"`
	TotalCowDays     int          `json:"totalCowDays"`
	TotalBuffaloDays int          `json:"totalBuffaloDays"`
	ActiveDays       int          `json:"activeDays"`
	CowCost          float64      `json:"cowCost"`
	BuffaloCost      float64      `json:"buffaloCost"`
	TotalCost        float64      `json:"totalCost"`
}

// Days returns the received day count for a milk type.
func (s MonthlyStats) Days(m model.Milk) int {
	if m == model.MilkBuffalo {
		return s.TotalBuffaloDays
	}
	return s.TotalCowDays
}

// Cost returns the subtotal for a milk type.
func (s MonthlyStats) Cost(m model.Milk) float64 {
	if m == model.MilkBuffalo {
		return s.BuffaloCost
	}
	return s.CowCost
}

// Aggregate computes the statistics of a month from all records.
func Aggregate(records []model.DailyRecord, period Period, prices model.Prices) MonthlyStats {
	stats := MonthlyStats{
		Period: period,
		Month:  period.String(),
		Prices: prices,
	}

	for _, r := range records {
		if !period.Contains(r.Date) {
			continue
		}
		if r.Cow {
			stats.TotalCowDays++
		}
		if r.Buffalo {
			stats.TotalBuffaloDays++
		}
		if r.IsActive() {
			stats.ActiveDays++
		}
	}

	stats.CowCost = float64(stats.TotalCowDays) * prices.Cow
	stats.BuffaloCost = float64(stats.TotalBuffaloDays) * prices.Buffalo
	stats.TotalCost = stats.CowCost + stats.BuffaloCost

	return stats
}

// InMonth returns the records of a month sorted by date.
func InMonth(records []model.DailyRecord, period Period) []model.DailyRecord {
	var out []model.DailyRecord
	for _, r := range records {
		if period.Contains(r.Date) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// Reasons returns the records of a month that have a visible reason,
// sorted by date.
func Reasons(records []model.DailyRecord, period Period) []model.DailyRecord {
	var out []model.DailyRecord
	for _, r := range InMonth(records, period) {
		if r.HasVisibleReason() {
			out = append(out, r)
		}
	}
	return out
}

// MonthDays returns one record per calendar day of the month, filling days
// without a record with the empty record.
func MonthDays(records []model.DailyRecord, period Period) []model.DailyRecord {
	byDate := make(map[string]model.DailyRecord)
	for _, r := range InMonth(records, period) {
		if _, ok := byDate[r.Date]; !ok {
			byDate[r.Date] = r
		}
	}

	dates := period.Dates()
	out := make([]model.DailyRecord, len(dates))
	for i, d := range dates {
		if r, ok := byDate[d]; ok {
			out[i] = r
		} else {
			out[i] = model.EmptyRecord(d)
		}
	}
	return out
}

// DayCost returns the bill for a single day.
func DayCost(r model.DailyRecord, prices model.Prices) float64 {
	var cost float64
	if r.Cow {
		cost += prices.Cow
	}
	if r.Buffalo {
		cost += prices.Buffalo
	}
	return cost
}
