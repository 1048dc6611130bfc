// Package locale holds the fixed Gujarati labels used in every user-facing
// text: month and weekday names, milk names and the summary fallbacks.
package locale

import (
	"fmt"
	"time"

	"github.com/manav03panchal/milkledger/internal/model"
)

// Currency is the rupee sign prefixed to amounts.
const Currency = "₹"

var monthNames = [12]string{
	"જાન્યુઆરી", "ફેબ્રુઆરી", "માર્ચ", "એપ્રિલ", "મે", "જૂન",
	"જુલાઈ", "ઑગસ્ટ", "સપ્ટેમ્બર", "ઑક્ટોબર", "નવેમ્બર", "ડિસેમ્બર",
}

var weekdayNames = [7]string{
	"રવિવાર", "સોમવાર", "મંગળવાર", "બુધવાર", "ગુરુવાર", "શુક્રવાર", "શનિવાર",
}

var weekdayShort = [7]string{
	"રવિ", "સોમ", "મંગળ", "બુધ", "ગુરુ", "શુક્ર", "શનિ",
}

// Labels.
const (
	Cow        = "ગાય"
	Buffalo    = "ભેંસ"
	Yes        = "હા"
	No         = "ના"
	Reason     = "કારણ"
	Today      = "આજે"
	TotalDays  = "કુલ દિવસ"
	Days       = "દિવસ"
	Price      = "ભાવ"
	Amount     = "રકમ"
	TotalDue   = "કુલ બાકી રકમ"
	Reasons    = "કારણો"
	NoReasons  = "આ મહિને કોઈ કારણ નોંધાયેલ નથી"
	AppTitle   = "દૂધનો હિસાબ"
	Footer     = "(દૂધનો હિસાબ એપ દ્વારા જનરેટ કરેલ)"
)

// Summary fallbacks.
const (
	// SummaryEmpty is shown when the service answered without text.
	SummaryEmpty = "માફ કરશો, હું માહિતી લાવી શક્યો નથી."
	// SummaryFailed is shown when the service could not be reached.
	SummaryFailed = "એઆઈ સાથે કનેક્ટ કરવામાં ભૂલ આવી છે. કૃપા કરીને થોડી વાર પછી પ્રયત્ન કરો."
	// SummaryLoading is shown while a summary is being generated.
	SummaryLoading = "સારાંશ તૈયાર થઈ રહ્યો છે..."
)

// Import messages.
const (
	ImportSuccess  = "ડેટા સફળતાપૂર્વક ઇમ્પોર્ટ થયો!"
	ImportInvalid  = "અમાન્ય ફાઇલ ફોર્મેટ."
	ImportReadFail = "ફાઇલ વાંચવામાં ભૂલ આવી."
)

// MonthName returns the Gujarati name of a month.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// MonthLabel returns "<month name> <year>".
func MonthLabel(year int, m time.Month) string {
	return fmt.Sprintf("%s %d", MonthName(m), year)
}

// WeekdayName returns the full Gujarati name of a weekday.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d%7]
}

// WeekdayShort returns the abbreviated Gujarati name used in calendar headers.
func WeekdayShort(d time.Weekday) string {
	return weekdayShort[d%7]
}

// LongDate formats a day as "<weekday>, <day> <month> <year>".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", WeekdayName(t.Weekday()), t.Day(), MonthName(t.Month()), t.Year())
}

// MilkName returns the Gujarati name of a milk type.
func MilkName(m model.Milk) string {
	if m == model.MilkBuffalo {
		return Buffalo
	}
	return Cow
}

// YesNo renders a received flag.
func YesNo(v bool) string {
	if v {
		return Yes
	}
	return No
}

// Money renders an amount with the rupee sign.
func Money(v float64) string {
	return Currency + model.FormatAmount(v)
}

// ParseMonthName recognises a Gujarati month name.
func ParseMonthName(s string) (time.Month, bool) {
	for i, name := range monthNames {
		if name == s {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}
