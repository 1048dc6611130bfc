package locale

import (
	"testing"
	"time"

	"github.com/manav03panchal/milkledger/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMonthName(t *testing.T) {
	assert.Equal(t, "જાન્યુઆરી", MonthName(time.January))
	assert.Equal(t, "ડિસેમ્બર", MonthName(time.December))
	assert.Equal(t, "", MonthName(time.Month(13)))
	assert.Equal(t, "ઑગસ્ટ 2024", MonthLabel(2024, time.August))
}

func TestWeekdays(t *testing.T) {
	assert.Equal(t, "રવિવાર", WeekdayName(time.Sunday))
	assert.Equal(t, "શનિ", WeekdayShort(time.Saturday))
}

func TestLongDate(t *testing.T) {
	d := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "સોમવાર, 15 જાન્યુઆરી 2024", LongDate(d))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, Cow, MilkName(model.MilkCow))
	assert.Equal(t, Buffalo, MilkName(model.MilkBuffalo))
	assert.Equal(t, Yes, YesNo(true))
	assert.Equal(t, No, YesNo(false))
	assert.Equal(t, "₹1240", Money(1240))
	assert.Equal(t, "₹62.5", Money(62.5))
}

func TestParseMonthName(t *testing.T) {
	m, ok := ParseMonthName("માર્ચ")
	assert.True(t, ok)
	assert.Equal(t, time.March, m)

	_, ok = ParseMonthName("march")
	assert.False(t, ok)
}
