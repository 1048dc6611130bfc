package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/model"
	"github.com/manav03panchal/milkledger/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersister struct {
	saved []model.DailyRecord
	fail  error
}

func (p *memPersister) SaveRecords(records []model.DailyRecord) error {
	if p.fail != nil {
		return p.fail
	}
	p.saved = records
	return nil
}

type stubGenerator struct {
	mu      sync.Mutex
	answers []string
	calls   int
}

func (g *stubGenerator) Generate(context.Context, string, string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	answer := g.answers[g.calls%len(g.answers)]
	g.calls++
	return answer, nil
}

func (g *stubGenerator) Name() string { return "stub" }

var fixedNow = time.Date(2024, time.January, 31, 9, 0, 0, 0, time.Local)

func newTestModel(t *testing.T, answers ...string) (*DashboardModel, *memPersister) {
	t.Helper()
	if len(answers) == 0 {
		answers = []string{"સારાંશ"}
	}
	p := &memPersister{}
	m := NewDashboardModel(DashboardConfig{
		Store:   ledger.NewStore(nil, p),
		Prices:  model.DefaultPrices(),
		Summary: summary.NewService(&stubGenerator{answers: answers}, 0),
		Now:     func() time.Time { return fixedNow },
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, p
}

func press(m *DashboardModel, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

// =============================================================================
// Navigation Tests
// =============================================================================

func TestDashboardStartsOnToday(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, "2024-01-31", m.selectedDate())
}

func TestDashboardNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "left")
	assert.Equal(t, "2024-01-30", m.selectedDate())

	press(m, "k")
	assert.Equal(t, "2024-01-23", m.selectedDate())

	press(m, "down", "l")
	assert.Equal(t, "2024-01-31", m.selectedDate())

	press(m, "right")
	assert.Equal(t, "2024-02-01", m.selectedDate())

	press(m, "t")
	assert.Equal(t, "2024-01-31", m.selectedDate())
}

func TestDashboardMonthKeysClampDay(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "]")
	assert.Equal(t, "2024-02-29", m.selectedDate())

	press(m, "[", "[")
	assert.Equal(t, "2023-12-29", m.selectedDate())
}

func TestShiftMonth(t *testing.T) {
	d := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-02-29", model.FormatDate(shiftMonth(d, -1)))
	assert.Equal(t, "2025-03-31", model.FormatDate(shiftMonth(d, 12)))
	assert.Equal(t, "2024-04-30", model.FormatDate(shiftMonth(d, 1)))
}

// =============================================================================
// Editing Tests
// =============================================================================

func TestDashboardToggle(t *testing.T) {
	m, p := newTestModel(t)

	press(m, "c")
	assert.True(t, m.store.Get("2024-01-31").Cow)
	require.Len(t, p.saved, 1)

	press(m, "b", "c")
	r := m.store.Get("2024-01-31")
	assert.False(t, r.Cow)
	assert.True(t, r.Buffalo)
}

func TestDashboardToggleFailureKeepsState(t *testing.T) {
	m, p := newTestModel(t)
	p.fail = errors.New("disk full")

	press(m, "c")
	assert.False(t, m.store.Get("2024-01-31").Cow)
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "disk full")
}

func TestDashboardReasonInput(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "B")
	assert.Equal(t, panelReason, m.panel)

	// Navigation keys are text while typing.
	press(m, "s", "i", "c", "k", "x", "backspace", " ", "ગાય")
	assert.Equal(t, "sick ગાય", string(m.input))

	press(m, "enter")
	assert.Equal(t, panelNone, m.panel)
	assert.Equal(t, "sick ગાય", m.store.Get("2024-01-31").BuffaloReason)
}

func TestDashboardReasonPrefillAndCancel(t *testing.T) {
	m, _ := newTestModel(t)
	_, err := m.store.SetReason("2024-01-31", model.MilkCow, "away")
	require.NoError(t, err)

	press(m, "C")
	assert.Equal(t, "away", string(m.input))

	press(m, "backspace", "backspace", "backspace", "backspace", "esc")
	assert.Equal(t, panelNone, m.panel)
	assert.Equal(t, "away", m.store.Get("2024-01-31").CowReason)
}

// =============================================================================
// Summary Tests
// =============================================================================

func TestDashboardSummary(t *testing.T) {
	m, _ := newTestModel(t, "આ મહિને બધું બરાબર છે")

	cmd := press(m, "a")
	require.NotNil(t, cmd)
	assert.Equal(t, locale.SummaryLoading, m.panelText)

	m.Update(cmd())
	assert.Equal(t, "આ મહિને બધું બરાબર છે", m.panelText)
	assert.Contains(t, m.View(), "આ મહિને બધું બરાબર છે")
}

func TestDashboardDropsStaleSummary(t *testing.T) {
	m, _ := newTestModel(t, "first", "second")

	first := press(m, "a")
	second := press(m, "a")

	firstMsg := first()
	secondMsg := second()

	m.Update(secondMsg)
	assert.Equal(t, "second", m.panelText)

	m.Update(firstMsg)
	assert.Equal(t, "second", m.panelText)
}

func TestDashboardMonthChangeInvalidatesSummary(t *testing.T) {
	m, _ := newTestModel(t, "january")

	cmd := press(m, "a")
	press(m, "]")
	m.Update(cmd())

	assert.Equal(t, panelNone, m.panel)
	assert.Empty(t, m.panelText)
}

// =============================================================================
// Share and View Tests
// =============================================================================

func TestDashboardShare(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "c", "left", "b")

	press(m, "s")
	assert.Equal(t, panelShare, m.panel)
	assert.Contains(t, m.panelText, "જાન્યુઆરી 2024")
	assert.Contains(t, m.panelText, "₹140")
	assert.Contains(t, m.panelText, "https://wa.me/?text=")

	press(m, "esc")
	assert.Equal(t, panelNone, m.panel)
}

type memPrices struct {
	saved []model.Prices
	fail  error
}

func (p *memPrices) Set(prices model.Prices) error {
	if p.fail != nil {
		return p.fail
	}
	p.saved = append(p.saved, prices)
	return nil
}

func clearInput(m *DashboardModel) {
	for len(m.input) > 0 {
		press(m, "backspace")
	}
}

func TestDashboardEditPrices(t *testing.T) {
	m, _ := newTestModel(t)
	saver := &memPrices{}
	m.priceSaver = saver
	press(m, "c")

	press(m, "p")
	require.Equal(t, panelPrice, m.panel)
	assert.Equal(t, "60 80", string(m.input))
	assert.Contains(t, m.View(), "enter")

	clearInput(m)
	press(m, "65", " ", "90", "q")
	assert.Equal(t, "65 90q", string(m.input), "keys are typed, not handled")
	press(m, "backspace", "enter")

	assert.Equal(t, panelNone, m.panel)
	assert.NoError(t, m.err)
	require.Equal(t, []model.Prices{{Cow: 65, Buffalo: 90}}, saver.saved)
	assert.Equal(t, model.Prices{Cow: 65, Buffalo: 90}, m.prices)
	assert.Contains(t, m.View(), "₹65")
}

func TestDashboardEditPricesRejectsInvalid(t *testing.T) {
	m, _ := newTestModel(t)
	saver := &memPrices{}
	m.priceSaver = saver

	press(m, "p")
	clearInput(m)
	press(m, "abc", " ", "80", "enter")
	assert.Error(t, m.err)
	assert.Equal(t, panelPrice, m.panel)

	clearInput(m)
	press(m, "70", "enter")
	assert.Error(t, m.err)
	assert.Empty(t, saver.saved)

	saver.fail = errors.New("disk full")
	clearInput(m)
	press(m, "70", " ", "85", "enter")
	assert.Error(t, m.err)
	assert.Equal(t, model.DefaultPrices(), m.prices)

	press(m, "esc")
	assert.Equal(t, panelNone, m.panel)
}

func TestDashboardPricesNeedSaver(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "p")
	assert.Equal(t, panelNone, m.panel)
}

func TestDashboardView(t *testing.T) {
	t.Run("loading_before_size", func(t *testing.T) {
		m := NewDashboardModel(DashboardConfig{Store: ledger.NewStore(nil, &memPersister{})})
		assert.Equal(t, "Loading...", m.View())
	})

	t.Run("calendar_and_day", func(t *testing.T) {
		m, _ := newTestModel(t)
		press(m, "c")

		view := m.View()
		assert.Contains(t, view, locale.AppTitle)
		assert.Contains(t, view, "જાન્યુઆરી 2024")
		assert.Contains(t, view, "[31 C· ]")
		assert.Contains(t, view, "બુધવાર, 31 જાન્યુઆરી 2024")
		assert.Contains(t, view, "₹60")
	})
}

func TestDashboardQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestTickClearsExpiredMessage(t *testing.T) {
	m, _ := newTestModel(t)
	m.setMessage("saved", time.Second)

	m.Update(tickMsg(fixedNow.Add(500 * time.Millisecond)))
	assert.Equal(t, "saved", m.message)

	m.Update(tickMsg(fixedNow.Add(2 * time.Second)))
	assert.Empty(t, m.message)
}

// =============================================================================
// Component Tests
// =============================================================================

func TestProgressBar(t *testing.T) {
	assert.Equal(t, 5, strings.Count(ProgressBar(50, 10), "█"))
	assert.Equal(t, 10, strings.Count(ProgressBar(150, 10), "█"))
	assert.Equal(t, 10, strings.Count(ProgressBar(-10, 10), "░"))
}

func TestDayComponent(t *testing.T) {
	r := model.DailyRecord{Date: "2024-01-15", Cow: true, BuffaloReason: "બીમાર"}
	view := NewDayComponent(r, model.DefaultPrices(), 80).View()

	assert.Contains(t, view, "સોમવાર, 15 જાન્યુઆરી 2024")
	assert.Contains(t, view, "બીમાર")
	assert.Contains(t, view, "₹60")
}

func TestStatsComponent(t *testing.T) {
	records := []model.DailyRecord{
		{Date: "2024-01-01", Cow: true, Buffalo: true},
		{Date: "2024-01-02", Cow: true},
	}
	period := ledger.Period{Year: 2024, Month: time.January}
	view := NewStatsComponent(ledger.Aggregate(records, period, model.DefaultPrices()), 80).View()

	assert.Contains(t, view, "₹120")
	assert.Contains(t, view, "₹200")
}

func TestHelpBar(t *testing.T) {
	assert.Contains(t, HelpBar(false), "summary")
	assert.Contains(t, HelpBar(false), "prices")
	assert.Contains(t, HelpBar(true), "save")
	assert.NotContains(t, HelpBar(true), "summary")
}
