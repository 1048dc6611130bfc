// Package parser turns user-typed dates and months into record dates and
// periods. Besides ISO forms it understands natural language ("yesterday",
// "3 days ago", "jan 2024") and Gujarati month names.
package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/model"
)

// isoDateRegex matches a date already in record form.
var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// isoMonthRegex matches YYYY-MM.
var isoMonthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// relativeMonthRegex matches "this month", "last month" and friends.
var relativeMonthRegex = regexp.MustCompile(`(?i)^(this|current|last|previous|next)\s+month$`)

func dateConfig(now time.Time) *dateparser.Configuration {
	return &dateparser.Configuration{
		CurrentTime:         now,
		DateOrder:           dateparser.DMY,
		PreferredDateSource: dateparser.Past,
	}
}

// ParseDate resolves a user-typed date to record form (YYYY-MM-DD).
// An empty input means today.
func ParseDate(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "", "today", "now", locale.Today:
		return model.FormatDate(now), nil
	case "yesterday", "ગઈકાલે":
		return model.FormatDate(now.AddDate(0, 0, -1)), nil
	}

	if isoDateRegex.MatchString(input) {
		if _, ok := model.ParseDate(input); !ok {
			return "", newDateError(input)
		}
		return input, nil
	}

	result, err := dateparser.Parse(dateConfig(now), input)
	if err != nil || result.Time.IsZero() {
		return "", newDateError(input)
	}
	return model.FormatDate(result.Time), nil
}

// ParseMonth resolves a user-typed month to a period. An empty input means
// the current month.
func ParseMonth(input string, now time.Time) (ledger.Period, error) {
	input = strings.TrimSpace(input)
	current := ledger.PeriodOf(now)

	if input == "" {
		return current, nil
	}

	if match := relativeMonthRegex.FindStringSubmatch(input); match != nil {
		switch strings.ToLower(match[1]) {
		case "last", "previous":
			return current.Prev(), nil
		case "next":
			return current.Next(), nil
		default:
			return current, nil
		}
	}

	if isoMonthRegex.MatchString(input) {
		p, err := ledger.ParsePeriod(input)
		if err != nil {
			return ledger.Period{}, newMonthError(input)
		}
		return p, nil
	}

	if p, ok := parseGujaratiMonth(input, now); ok {
		return p, nil
	}

	result, err := dateparser.Parse(dateConfig(now), input)
	if err != nil || result.Time.IsZero() {
		return ledger.Period{}, newMonthError(input)
	}
	return ledger.PeriodOf(result.Time), nil
}

// parseGujaratiMonth handles "<month>" and "<month> <year>" with a Gujarati
// month name. A bare month name means its most recent occurrence.
func parseGujaratiMonth(input string, now time.Time) (ledger.Period, bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 || len(fields) > 2 {
		return ledger.Period{}, false
	}

	month, ok := locale.ParseMonthName(fields[0])
	if !ok {
		return ledger.Period{}, false
	}

	if len(fields) == 2 {
		year, err := time.Parse("2006", fields[1])
		if err != nil {
			return ledger.Period{}, false
		}
		return ledger.Period{Year: year.Year(), Month: month}, true
	}

	year := now.Year()
	if month > now.Month() {
		year--
	}
	return ledger.Period{Year: year, Month: month}, true
}
