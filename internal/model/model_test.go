package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// DailyRecord Tests
// =============================================================================

func TestEmptyRecord(t *testing.T) {
	r := EmptyRecord("2024-01-01")
	assert.Equal(t, "2024-01-01", r.Date)
	assert.False(t, r.Cow)
	assert.False(t, r.Buffalo)
	assert.Empty(t, r.CowReason)
	assert.Empty(t, r.BuffaloReason)
	assert.False(t, r.IsActive())
}

func TestParseMilk(t *testing.T) {
	tests := []struct {
		input string
		want  Milk
	}{
		{"cow", MilkCow},
		{"COW", MilkCow},
		{" c ", MilkCow},
		{"ગાય", MilkCow},
		{"buffalo", MilkBuffalo},
		{"b", MilkBuffalo},
		{"ભેંસ", MilkBuffalo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMilk(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMilk("goat")
	assert.Error(t, err)
}

func TestVisibleReason(t *testing.T) {
	t.Run("reason_on_missing_milk_is_visible", func(t *testing.T) {
		r := DailyRecord{Date: "2024-01-02", Cow: true, Buffalo: false, BuffaloReason: "sick"}
		assert.Equal(t, "sick", r.VisibleReason(MilkBuffalo))
		assert.True(t, r.HasVisibleReason())
	})

	t.Run("stale_reason_on_received_milk_is_hidden", func(t *testing.T) {
		r := DailyRecord{Date: "2024-01-02", Cow: true, Buffalo: true, BuffaloReason: "sick"}
		assert.Empty(t, r.VisibleReason(MilkBuffalo))
		assert.Equal(t, "sick", r.Reason(MilkBuffalo))
		assert.False(t, r.HasVisibleReason())
	})
}

func TestWithReceivedLeavesOtherFields(t *testing.T) {
	r := DailyRecord{Date: "2024-01-02", Buffalo: true, CowReason: "away", BuffaloReason: "x"}
	got := r.WithReceived(MilkCow, true)

	assert.True(t, got.Cow)
	assert.True(t, got.Buffalo)
	assert.Equal(t, "away", got.CowReason)
	assert.Equal(t, "x", got.BuffaloReason)
	assert.False(t, r.Cow, "original must not change")
}

func TestDailyRecordJSON(t *testing.T) {
	data, err := json.Marshal(DailyRecord{Date: "2024-01-01", Cow: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-01","cow":true,"buffalo":false}`, string(data))

	var r DailyRecord
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-03","cow":false,"buffalo":true,"cowReason":"sick"}`), &r))
	assert.Equal(t, "sick", r.CowReason)
	assert.True(t, r.Buffalo)
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, 29, d.Day())
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, ok = ParseDate("2024-2-29")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}

// =============================================================================
// Prices Tests
// =============================================================================

func TestPrices(t *testing.T) {
	p := DefaultPrices()
	assert.Equal(t, 60.0, p.For(MilkCow))
	assert.Equal(t, 80.0, p.For(MilkBuffalo))
	assert.True(t, p.Valid())

	assert.False(t, Prices{Cow: -1, Buffalo: 1}.Valid())
	assert.False(t, Prices{Cow: math.NaN(), Buffalo: 1}.Valid())
	assert.False(t, Prices{Cow: 1, Buffalo: math.Inf(1)}.Valid())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1240", FormatAmount(1240))
	assert.Equal(t, "62.5", FormatAmount(62.5))
	assert.Equal(t, "0", FormatAmount(0))
}
