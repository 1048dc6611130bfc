package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/manav03panchal/milkledger/internal/backup"
	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var january = ledger.Period{Year: 2024, Month: time.January}

func plainCLI() (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewCLIFormatter(&Formatter{Writer: &buf, Format: FormatCLI, ColorMode: ColorNever}), &buf
}

func sampleRecords() []model.DailyRecord {
	return []model.DailyRecord{
		{Date: "2024-01-01", Cow: true, Buffalo: true},
		{Date: "2024-01-02", Cow: true, BuffaloReason: "sick"},
		{Date: "2024-01-03", Cow: true, Buffalo: true, BuffaloReason: "stale"},
	}
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
	assert.False(t, f.IsJSON())
}

func TestParseFormat(t *testing.T) {
	got, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, got)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)

	mode, err := ParseColorMode("never")
	require.NoError(t, err)
	assert.Equal(t, ColorNever, mode)

	_, err = ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("plain_disables_color", func(t *testing.T) {
		f := &Formatter{Format: FormatPlain, ColorMode: ColorAlways}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		f := &Formatter{Writer: &bytes.Buffer{}, ColorMode: ColorAuto}
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterWidthFallback(t *testing.T) {
	f := &Formatter{Writer: &bytes.Buffer{}}
	assert.Equal(t, 80, f.Width())
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}
	require.NoError(t, f.JSON(map[string]string{"a": "<b>"}))
	assert.Equal(t, "{\n  \"a\": \"<b>\"\n}\n", buf.String())
}

// =============================================================================
// CLI Tests
// =============================================================================

func TestCLIMessages(t *testing.T) {
	c, buf := plainCLI()
	c.Success("saved")
	c.Warning("careful")
	c.Error("failed")

	assert.Equal(t, "✓ saved\n⚠ careful\n✗ failed\n", buf.String())
}

func TestPrintDay(t *testing.T) {
	c, buf := plainCLI()
	c.PrintDay(model.DailyRecord{Date: "2024-01-15", Cow: true, BuffaloReason: "બીમાર"}, model.DefaultPrices())

	out := buf.String()
	assert.Contains(t, out, "સોમવાર, 15 જાન્યુઆરી 2024")
	assert.Contains(t, out, "ગાય: હા")
	assert.Contains(t, out, "ભેંસ: ના (કારણ: બીમાર)")
	assert.Contains(t, out, "રકમ: ₹60")
}

func TestPrintStats(t *testing.T) {
	c, buf := plainCLI()
	stats := ledger.Aggregate(sampleRecords(), january, model.DefaultPrices())
	c.PrintStats("જાન્યુઆરી 2024", stats)

	out := buf.String()
	assert.Contains(t, out, "જાન્યુઆરી 2024")
	assert.Contains(t, out, "₹180")
	assert.Contains(t, out, "₹160")
	assert.Contains(t, out, "₹340")
}

func TestPrintReasons(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		c, buf := plainCLI()
		c.PrintReasons(nil)
		assert.Contains(t, buf.String(), "કોઈ કારણ")
	})

	t.Run("visible_only", func(t *testing.T) {
		c, buf := plainCLI()
		c.PrintReasons(ledger.Reasons(sampleRecords(), january))
		assert.Contains(t, buf.String(), "sick")
		assert.NotContains(t, buf.String(), "stale")
	})
}

func TestPrintImport(t *testing.T) {
	c, buf := plainCLI()
	c.PrintImport(&backup.ImportResult{Total: 3, Accepted: 2, Migrated: 1,
		Rejected: []backup.Rejection{{Index: 2, Reason: "invalid date"}}}, true)

	out := buf.String()
	assert.Contains(t, out, "2 of 3 records would be imported (dry run)")
	assert.Contains(t, out, "1 legacy records converted")
	assert.Contains(t, out, "skipped element 2: invalid date")
}

// =============================================================================
// Calendar Tests
// =============================================================================

func TestCalendarCell(t *testing.T) {
	assert.Equal(t, " 1 CB ", CalendarCell(1, model.DailyRecord{Cow: true, Buffalo: true}, false))
	assert.Equal(t, "15 C·*", CalendarCell(15, model.DailyRecord{Cow: true, BuffaloReason: "x"}, false))
	assert.Equal(t, "[ 2 ·· ]", CalendarCell(2, model.DailyRecord{}, true))
}

func TestCalendar(t *testing.T) {
	out := Calendar(january, sampleRecords(), "2024-01-02")

	assert.Contains(t, out, "રવિ")
	assert.Contains(t, out, "શનિ")
	assert.Contains(t, out, " 1 CB")
	assert.Contains(t, out, "[ 2 C·*]")
	assert.Contains(t, out, "31 ··")

	// January 2024 starts on a Monday and spans five weeks.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 9)
}

// =============================================================================
// JSON Tests
// =============================================================================

func TestNewMonthResponse(t *testing.T) {
	resp := NewMonthResponse("જાન્યુઆરી 2024", sampleRecords(), january, model.DefaultPrices(), true)

	assert.Len(t, resp.Days, 31)
	require.Len(t, resp.Reasons, 1)
	assert.Equal(t, "2024-01-02", resp.Reasons[0].Date)
	assert.Equal(t, 60.0, resp.Reasons[0].Cost)
	assert.Equal(t, 340.0, resp.Stats.TotalCost)

	data, err := json.Marshal(resp.Days[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-01","cow":true,"buffalo":true,"cost":140}`, string(data))
}

func TestJSONPrintError(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONFormatter(&Formatter{Writer: &buf, Format: FormatJSON})

	require.NoError(t, j.PrintError(errors.NewInvalidInput(errors.ErrInvalidDate, "date", "x")))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "user", resp.Category)
	assert.Equal(t, "invalid date: 'x'", resp.Error)
	assert.NotEmpty(t, resp.Suggestion)
}

func TestJSONPrintOK(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONFormatter(&Formatter{Writer: &buf, Format: FormatJSON})
	require.NoError(t, j.PrintOK("saved", map[string]int{"n": 1}))
	assert.JSONEq(t, `{"status":"ok","message":"saved","data":{"n":1}}`, buf.String())
}
