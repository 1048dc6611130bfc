package model

import (
	"fmt"
	"strings"
	"time"
)

// Milk identifies one of the two tracked milk types.
type Milk string

const (
	MilkCow     Milk = "cow"
	MilkBuffalo Milk = "buffalo"
)

// AllMilks lists the milk types in display order.
var AllMilks = []Milk{MilkCow, MilkBuffalo}

// ParseMilk parses a milk type name. Gujarati names are accepted as well.
func ParseMilk(s string) (Milk, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cow", "c", "gay", "ગાય":
		return MilkCow, nil
	case "buffalo", "b", "bhens", "ભેંસ":
		return MilkBuffalo, nil
	}
	return "", fmt.Errorf("unknown milk type %q", s)
}

// DailyRecord is the milk status for one calendar day.
type DailyRecord struct {
	Date          string `json:"date"`
	Cow           bool   `json:"cow"`
	Buffalo       bool   `json:"buffalo"`
	CowReason     string `json:"cowReason,omitempty"`
	BuffaloReason string `json:"buffaloReason,omitempty"`
}

// EmptyRecord returns the record implied for a date that has never been written.
func EmptyRecord(date string) DailyRecord {
	return DailyRecord{Date: date}
}

// Received reports whether the given milk was received that day.
func (r DailyRecord) Received(m Milk) bool {
	if m == MilkBuffalo {
		return r.Buffalo
	}
	return r.Cow
}

// Reason returns the stored reason for the given milk, visible or not.
func (r DailyRecord) Reason(m Milk) string {
	if m == MilkBuffalo {
		return r.BuffaloReason
	}
	return r.CowReason
}

// VisibleReason returns the reason for the given milk only when that milk
// was not received. A stale reason on a received milk is never surfaced.
func (r DailyRecord) VisibleReason(m Milk) string {
	if r.Received(m) {
		return ""
	}
	return r.Reason(m)
}

// HasVisibleReason reports whether any reason should be shown for the day.
func (r DailyRecord) HasVisibleReason() bool {
	return r.VisibleReason(MilkCow) != "" || r.VisibleReason(MilkBuffalo) != ""
}

// IsActive reports whether at least one milk was received.
func (r DailyRecord) IsActive() bool {
	return r.Cow || r.Buffalo
}

// WithReceived returns a copy with the given milk flag replaced.
func (r DailyRecord) WithReceived(m Milk, value bool) DailyRecord {
	if m == MilkBuffalo {
		r.Buffalo = value
	} else {
		r.Cow = value
	}
	return r
}

// WithReason returns a copy with the given milk reason replaced.
func (r DailyRecord) WithReason(m Milk, reason string) DailyRecord {
	if m == MilkBuffalo {
		r.BuffaloReason = reason
	} else {
		r.CowReason = reason
	}
	return r
}

// Day parses the record date. The second result is false for malformed dates.
func (r DailyRecord) Day() (time.Time, bool) {
	return ParseDate(r.Date)
}

// ParseDate parses a record date in the local calendar without shifting it
// across timezones.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate formats a time as a record date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
