package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/logging"
	"github.com/manav03panchal/milkledger/internal/model"
	"github.com/manav03panchal/milkledger/internal/output"
	"github.com/manav03panchal/milkledger/internal/share"
	"github.com/manav03panchal/milkledger/internal/summary"
	"github.com/manav03panchal/milkledger/internal/validate"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// summaryMsg carries a finished summary and the token it was issued under.
type summaryMsg struct {
	token  uint64
	result summary.Result
}

// panelKind says what the panel below the calendar shows.
type panelKind int

const (
	panelNone panelKind = iota
	panelReason
	panelSummary
	panelShare
	panelPrice
)

// PriceSaver stores new per-day prices.
type PriceSaver interface {
	Set(prices model.Prices) error
}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	store      *ledger.Store
	prices     model.Prices
	priceSaver PriceSaver
	summary    *summary.Service

	// Navigation
	cursor time.Time
	now    func() time.Time

	// Panel state
	panel        panelKind
	reasonMilk   model.Milk
	input        []rune
	panelText    string
	summaryToken uint64

	// UI state
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	refreshInterval time.Duration
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Store           *ledger.Store
	Prices          model.Prices
	PriceSaver      PriceSaver
	Summary         *summary.Service
	RefreshInterval time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// NewDashboardModel creates a new dashboard model with the cursor on today.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return &DashboardModel{
		store:           config.Store,
		prices:          config.Prices,
		priceSaver:      config.PriceSaver,
		summary:         config.Summary,
		now:             config.Now,
		cursor:          midnight(config.Now()),
		refreshInterval: config.RefreshInterval,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing() {
			return m.handleInput(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Time(msg).After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case summaryMsg:
		m.handleSummary(msg)
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input while navigating.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.moveTo(m.cursor.AddDate(0, 0, -1))
	case "right", "l":
		m.moveTo(m.cursor.AddDate(0, 0, 1))
	case "up", "k":
		m.moveTo(m.cursor.AddDate(0, 0, -7))
	case "down", "j":
		m.moveTo(m.cursor.AddDate(0, 0, 7))
	case "[":
		m.moveTo(shiftMonth(m.cursor, -1))
	case "]":
		m.moveTo(shiftMonth(m.cursor, 1))
	case "t":
		m.moveTo(midnight(m.now()))

	case "c":
		m.toggle(model.MilkCow)
	case "b":
		m.toggle(model.MilkBuffalo)
	case "C":
		m.startReason(model.MilkCow)
	case "B":
		m.startReason(model.MilkBuffalo)
	case "p":
		m.startPrices()

	case "a":
		return m, m.requestSummary()
	case "s":
		m.showShare()
	case "esc":
		m.closePanel()
	}

	return m, nil
}

// handleInput handles keyboard input while a reason or the prices are typed.
func (m *DashboardModel) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.closePanel()
	case tea.KeyEnter:
		if m.panel == panelPrice {
			m.savePrices()
		} else {
			m.saveReason()
		}
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}
	return m, nil
}

// moveTo moves the cursor. Leaving the month invalidates any pending
// summary and closes the panel, which belonged to the old month.
func (m *DashboardModel) moveTo(t time.Time) {
	old := ledger.PeriodOf(m.cursor)
	m.cursor = midnight(t)
	if ledger.PeriodOf(m.cursor) != old {
		m.closePanel()
	}
}

func (m *DashboardModel) toggle(milk model.Milk) {
	date := m.selectedDate()
	current := m.store.Get(date).Received(milk)
	if _, err := m.store.SetBoolean(date, milk, !current); err != nil {
		m.err = err
		return
	}
	m.err = nil
}

func (m *DashboardModel) startReason(milk model.Milk) {
	m.closePanel()
	m.panel = panelReason
	m.reasonMilk = milk
	m.input = []rune(m.store.Get(m.selectedDate()).Reason(milk))
}

func (m *DashboardModel) saveReason() {
	if _, err := m.store.SetReason(m.selectedDate(), m.reasonMilk, string(m.input)); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.closePanel()
	m.setMessage("✓ "+locale.Reason+" "+locale.MilkName(m.reasonMilk), 2*time.Second)
}

func (m *DashboardModel) startPrices() {
	if m.priceSaver == nil {
		return
	}
	m.closePanel()
	m.panel = panelPrice
	m.input = []rune(model.FormatAmount(m.prices.Cow) + " " + model.FormatAmount(m.prices.Buffalo))
}

// savePrices reads "cow buffalo" from the input. Stats use the new prices
// as soon as they are stored.
func (m *DashboardModel) savePrices() {
	fields := strings.Fields(string(m.input))
	if len(fields) != 2 {
		m.err = fmt.Errorf("enter two prices: cow buffalo")
		return
	}
	cow, err := validate.Price("cow", fields[0])
	if err != nil {
		m.err = err
		return
	}
	buffalo, err := validate.Price("buffalo", fields[1])
	if err != nil {
		m.err = err
		return
	}

	prices := model.Prices{Cow: cow, Buffalo: buffalo}
	if err := m.priceSaver.Set(prices); err != nil {
		m.err = err
		return
	}
	m.prices = prices
	m.err = nil
	m.closePanel()
	m.setMessage("✓ "+locale.Price, 2*time.Second)
}

// requestSummary starts a summary for the cursor's month. Only the answer
// to the latest request is shown.
func (m *DashboardModel) requestSummary() tea.Cmd {
	if m.summary == nil {
		return nil
	}

	period := m.period()
	req := summary.Request{
		MonthLabel: locale.MonthLabel(period.Year, period.Month),
		Records:    ledger.InMonth(m.store.Records(), period),
		Prices:     m.prices,
	}

	m.closePanel()
	m.panel = panelSummary
	m.panelText = locale.SummaryLoading
	m.summaryToken = m.summary.Begin()

	svc, token := m.summary, m.summaryToken
	return func() tea.Msg {
		return summaryMsg{token: token, result: svc.Summarize(context.Background(), req)}
	}
}

func (m *DashboardModel) handleSummary(msg summaryMsg) {
	if !m.summary.IsCurrent(msg.token) || m.panel != panelSummary {
		logging.DebugLog("dropping stale summary", logging.KeyToken, msg.token)
		return
	}
	m.panelText = msg.result.Text
}

func (m *DashboardModel) showShare() {
	m.closePanel()
	period := m.period()
	stats := ledger.Aggregate(m.store.Records(), period, m.prices)
	text := share.BuildText(locale.MonthLabel(period.Year, period.Month), stats)

	m.panel = panelShare
	m.panelText = text + "\n\n" + StyleMuted.Render(share.Link(text))
}

// closePanel hides the panel. A summary still in flight is invalidated.
func (m *DashboardModel) closePanel() {
	if m.panel == panelSummary && m.summary != nil {
		m.summary.Begin()
	}
	m.panel = panelNone
	m.panelText = ""
	m.input = nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	period := m.period()
	records := m.store.Records()

	var sections []string

	// Header
	sections = append(sections, m.renderHeader(period))

	// Error message
	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	// Status message
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	sections = append(sections, output.Calendar(period, records, m.selectedDate()))

	day := NewDayComponent(m.store.Get(m.selectedDate()), m.prices, m.width)
	stats := NewStatsComponent(ledger.Aggregate(records, period, m.prices), m.width)
	sections = append(sections, day.View(), stats.View())

	if panel := m.panelView(); panel != "" {
		sections = append(sections, panel)
	}

	sections = append(sections, HelpBar(m.editing()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader(period ledger.Period) string {
	title := StyleTitle.Render(locale.AppTitle)
	month := StyleSubtitle.Render(locale.MonthLabel(period.Year, period.Month))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", month) + "\n"
}

func (m *DashboardModel) panelView() string {
	p := &PanelComponent{Width: m.width}
	switch m.panel {
	case panelReason:
		p.Title = fmt.Sprintf("%s %s", locale.MilkName(m.reasonMilk), locale.Reason)
		p.Body = string(m.input) + "█"
	case panelSummary:
		p.Title = "સારાંશ"
		p.Body = m.panelText
	case panelShare:
		p.Title = "WhatsApp"
		p.Body = m.panelText
	case panelPrice:
		p.Title = fmt.Sprintf("%s (%s %s)", locale.Price, locale.MilkName(model.MilkCow), locale.MilkName(model.MilkBuffalo))
		p.Body = string(m.input) + "█"
	}
	return p.View()
}

func (m *DashboardModel) editing() bool {
	return m.panel == panelReason || m.panel == panelPrice
}

func (m *DashboardModel) selectedDate() string {
	return model.FormatDate(m.cursor)
}

func (m *DashboardModel) period() ledger.Period {
	return ledger.PeriodOf(m.cursor)
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = m.now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// shiftMonth moves t by delta months, clamping the day to the target
// month's length.
func shiftMonth(t time.Time, delta int) time.Time {
	target := ledger.PeriodOf(t)
	for ; delta > 0; delta-- {
		target = target.Next()
	}
	for ; delta < 0; delta++ {
		target = target.Prev()
	}
	day := t.Day()
	if n := target.Days(); day > n {
		day = n
	}
	return time.Date(target.Year, target.Month, day, 0, 0, 0, 0, time.Local)
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	model := NewDashboardModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
