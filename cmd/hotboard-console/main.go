package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hotboard/internal/board"
	"hotboard/internal/config"
	"hotboard/internal/heatmap"
	"hotboard/internal/render"
	"hotboard/internal/view"
	"hotboard/pkg/stockapi"
)

// Styles.
var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	tabActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	tabIdleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

type tab int

const (
	tabHotboard tab = iota
	tabAnalysis
	tabScheduler
	tabReport
	tabMonitor
	tabCount
)

var tabLabels = [tabCount]string{"1 hotboard", "2 analysis", "3 scheduler", "4 report", "5 monitor"}

// Messages. Every load carries the Gate ticket it was issued under; stale
// tickets are dropped in Update.
type tickMsg time.Time

type hotboardMsg struct {
	ticket uint64
	v      view.HotboardView
}

type detailMsg struct {
	ticket uint64
	v      view.BoardDetailView
}

type analysisMsg struct {
	ticket uint64
	v      view.AnalysisView
}

type historyMsg struct {
	ticket uint64
	v      view.AnalysisHistoryView
}

type schedulerMsg struct {
	ticket uint64
	v      view.SchedulerView
}

type logsMsg struct {
	ticket uint64
	v      view.TaskLogsView
}

type reportMsg struct {
	ticket uint64
	v      view.ReportView
}

type monitorMsg struct {
	ticket uint64
	v      view.MonitorView
}

type model struct {
	client  *stockapi.Client
	cfg     *config.Config
	logger  *slog.Logger
	refresh time.Duration

	viewport      viewport.Model
	ready         bool
	width, height int
	active        tab

	// Hotboard.
	gateHot   *view.Gate
	hot       view.HotboardView
	schemeIdx int
	alpha     float64
	catIdx    int
	selected  int

	// Board detail drill-down.
	gateDetail *view.Gate
	inDetail   bool
	detail     view.BoardDetailView

	// Analysis.
	gateAnalysis *view.Gate
	gateHistory  *view.Gate
	input        textinput.Model
	typing       bool
	analysis     view.AnalysisView
	haveAnalysis bool
	history      view.AnalysisHistoryView
	histPage     int

	// Scheduler.
	gateSched *view.Gate
	gateLogs  *view.Gate
	sched     view.SchedulerView
	schedPage int
	taskSel   int
	inLogs    bool
	logs      view.TaskLogsView
	logsPage  int

	// Report.
	gateReport *view.Gate
	report     view.ReportView

	// Monitor.
	gateMonitor *view.Gate
	monitor     view.MonitorView
}

func initialModel(client *stockapi.Client, cfg *config.Config, logger *slog.Logger) model {
	input := textinput.New()
	input.Placeholder = "stock code, e.g. 600519"
	input.CharLimit = 10
	input.Width = 24

	refresh := time.Duration(cfg.Console.RefreshSeconds) * time.Second
	if refresh <= 0 {
		refresh = 30 * time.Second
	}

	schemeIdx := 0
	for i, n := range heatmap.SchemeNames() {
		if n == cfg.Console.DefaultScheme {
			schemeIdx = i
		}
	}
	catIdx := 0
	for i, n := range board.CategoryNames() {
		if n == cfg.Console.DefaultCategory {
			catIdx = i
		}
	}

	return model{
		client:       client,
		cfg:          cfg,
		logger:       logger,
		refresh:      refresh,
		input:        input,
		gateHot:      &view.Gate{},
		gateDetail:   &view.Gate{},
		gateAnalysis: &view.Gate{},
		gateHistory:  &view.Gate{},
		gateSched:    &view.Gate{},
		gateLogs:     &view.Gate{},
		gateReport:   &view.Gate{},
		gateMonitor:  &view.Gate{},
		schemeIdx:    schemeIdx,
		alpha:        cfg.Console.DefaultAlpha,
		catIdx:       catIdx,
		selected:     -1,
		histPage:     1,
		schedPage:    1,
		logsPage:     1,
	}
}

func (m *model) scheme() heatmap.Scheme {
	return heatmap.MustScheme(heatmap.SchemeNames()[m.schemeIdx])
}

func (m *model) category() board.Category {
	c, _ := board.ParseCategory(board.CategoryNames()[m.catIdx])
	return c
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ---------------------------------------------------------------------------
// Load commands
// ---------------------------------------------------------------------------

func (m *model) loadHotboard() tea.Cmd {
	ticket := m.gateHot.Next()
	client, scheme, alpha, cat := m.client, m.scheme(), m.alpha, m.category()
	return func() tea.Msg {
		return hotboardMsg{ticket: ticket, v: view.LoadHotboard(context.Background(), client, scheme, alpha, cat)}
	}
}

func (m *model) loadDetail(code string) tea.Cmd {
	ticket := m.gateDetail.Next()
	client := m.client
	return func() tea.Msg {
		return detailMsg{ticket: ticket, v: view.LoadBoardDetail(context.Background(), client, code, 30, 10)}
	}
}

func (m *model) submitAnalysis(code string) tea.Cmd {
	ticket := m.gateAnalysis.Next()
	client := m.client
	return func() tea.Msg {
		return analysisMsg{ticket: ticket, v: view.RunAnalysis(context.Background(), client, stockapi.AnalysisRequest{StockCode: code})}
	}
}

func (m *model) loadHistory() tea.Cmd {
	ticket := m.gateHistory.Next()
	client, page := m.client, m.histPage
	return func() tea.Msg {
		return historyMsg{ticket: ticket, v: view.LoadAnalysisHistory(context.Background(), client, "", page, 10)}
	}
}

func (m *model) loadScheduler() tea.Cmd {
	ticket := m.gateSched.Next()
	client, page := m.client, m.schedPage
	return func() tea.Msg {
		return schedulerMsg{ticket: ticket, v: view.LoadScheduler(context.Background(), client, page, 10)}
	}
}

func (m *model) applyTask(mutate func(context.Context) error) tea.Cmd {
	ticket := m.gateSched.Next()
	client, page := m.client, m.schedPage
	return func() tea.Msg {
		return schedulerMsg{ticket: ticket, v: view.ApplyTask(context.Background(), client, page, 10, mutate)}
	}
}

func (m *model) loadLogs(taskID int64) tea.Cmd {
	ticket := m.gateLogs.Next()
	client, page := m.client, m.logsPage
	return func() tea.Msg {
		return logsMsg{ticket: ticket, v: view.LoadTaskLogs(context.Background(), client, taskID, page, 20)}
	}
}

func (m *model) loadReport(date string) tea.Cmd {
	ticket := m.gateReport.Next()
	client := m.client
	return func() tea.Msg {
		return reportMsg{ticket: ticket, v: view.LoadReport(context.Background(), client, date)}
	}
}

func (m *model) loadMonitor() tea.Cmd {
	ticket := m.gateMonitor.Next()
	client, limit := m.client, m.cfg.Watch.SignalLimit
	return func() tea.Msg {
		return monitorMsg{ticket: ticket, v: view.LoadMonitor(context.Background(), client, limit)}
	}
}

func (m *model) toggleMonitor() tea.Cmd {
	ticket := m.gateMonitor.Next()
	client, limit := m.client, m.cfg.Watch.SignalLimit
	run := !(m.monitor.Status != nil && m.monitor.Status.Running)
	return func() tea.Msg {
		return monitorMsg{ticket: ticket, v: view.SetMonitorRunning(context.Background(), client, run, limit)}
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.loadHotboard(),
		m.loadHistory(),
		m.loadScheduler(),
		m.loadReport(""),
		m.loadMonitor(),
		tickCmd(m.refresh),
	)
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}
		if handled, next, cmd := m.updateKey(msg); handled {
			return next, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - 2
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.MouseWheelEnabled = true
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.syncContent()
		return m, nil

	case tickMsg:
		// Timed refresh only refetches the visible tab; hidden tabs
		// reload on entry via the r key or their own actions.
		cmds := []tea.Cmd{tickCmd(m.refresh)}
		if m.active == tabHotboard && !m.inDetail {
			cmds = append(cmds, m.loadHotboard())
		}
		if m.active == tabMonitor {
			cmds = append(cmds, m.loadMonitor())
		}
		return m, tea.Batch(cmds...)

	case hotboardMsg:
		if !m.gateHot.Accept(msg.ticket) {
			m.logger.Debug("dropping stale hotboard result", "ticket", msg.ticket)
			return m, nil
		}
		m.hot = msg.v
		if m.selected >= len(m.hot.Records) {
			m.selected = len(m.hot.Records) - 1
		}
		if m.selected < 0 && len(m.hot.Records) > 0 {
			m.selected = 0
		}
		m.syncContent()
		return m, nil

	case detailMsg:
		if !m.gateDetail.Accept(msg.ticket) {
			return m, nil
		}
		m.detail = msg.v
		m.syncContent()
		return m, nil

	case analysisMsg:
		if !m.gateAnalysis.Accept(msg.ticket) {
			return m, nil
		}
		m.analysis = msg.v
		m.haveAnalysis = true
		m.syncContent()
		// A finished submission lands in the history list too.
		return m, m.loadHistory()

	case historyMsg:
		if !m.gateHistory.Accept(msg.ticket) {
			return m, nil
		}
		m.history = msg.v
		m.syncContent()
		return m, nil

	case schedulerMsg:
		if !m.gateSched.Accept(msg.ticket) {
			return m, nil
		}
		m.sched = msg.v
		if m.taskSel >= len(m.sched.Tasks) {
			m.taskSel = len(m.sched.Tasks) - 1
		}
		if m.taskSel < 0 && len(m.sched.Tasks) > 0 {
			m.taskSel = 0
		}
		m.syncContent()
		return m, nil

	case logsMsg:
		if !m.gateLogs.Accept(msg.ticket) {
			return m, nil
		}
		m.logs = msg.v
		m.syncContent()
		return m, nil

	case reportMsg:
		if !m.gateReport.Accept(msg.ticket) {
			return m, nil
		}
		m.report = msg.v
		m.syncContent()
		return m, nil

	case monitorMsg:
		if !m.gateMonitor.Accept(msg.ticket) {
			return m, nil
		}
		m.monitor = msg.v
		m.syncContent()
		return m, nil
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		code := strings.TrimSpace(m.input.Value())
		m.typing = false
		m.input.Blur()
		if code == "" {
			m.syncContent()
			return m, nil
		}
		m.input.SetValue("")
		m.logger.Info("submitting analysis", "code", code)
		m.syncContent()
		return m, m.submitAnalysis(code)
	case "esc":
		m.typing = false
		m.input.Blur()
		m.input.SetValue("")
		m.syncContent()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.syncContent()
	return m, cmd
}

// updateKey handles a key press outside text entry. handled=false defers
// to the viewport (pgup/pgdn scrolling).
func (m model) updateKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return true, m, tea.Quit

	case "tab":
		m.active = (m.active + 1) % tabCount
		m.syncContent()
		return true, m, nil
	case "1", "2", "3", "4", "5":
		m.active = tab(int(msg.String()[0] - '1'))
		m.syncContent()
		return true, m, nil

	case "r":
		return true, m, m.refreshActive()
	}

	switch m.active {
	case tabHotboard:
		return m.updateHotboardKey(msg)
	case tabAnalysis:
		return m.updateAnalysisKey(msg)
	case tabScheduler:
		return m.updateSchedulerKey(msg)
	case tabReport:
		return m.updateReportKey(msg)
	case tabMonitor:
		return m.updateMonitorKey(msg)
	}
	return false, m, nil
}

func (m *model) refreshActive() tea.Cmd {
	switch m.active {
	case tabHotboard:
		if m.inDetail {
			return m.loadDetail(m.detail.BoardCode)
		}
		return m.loadHotboard()
	case tabAnalysis:
		return m.loadHistory()
	case tabScheduler:
		if m.inLogs {
			return m.loadLogs(m.logs.TaskID)
		}
		return m.loadScheduler()
	case tabReport:
		return m.loadReport(m.report.Date)
	case tabMonitor:
		return m.loadMonitor()
	}
	return nil
}

func (m model) updateHotboardKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.inDetail {
		if msg.String() == "esc" {
			m.inDetail = false
			m.syncContent()
			return true, m, nil
		}
		return false, m, nil
	}

	switch msg.String() {
	case "s":
		m.schemeIdx = (m.schemeIdx + 1) % len(heatmap.SchemeNames())
		// Rebuild from the records in hand for instant feedback, then
		// refetch so the backend recomputes under the new metric.
		m.hot = m.hot.WithScheme(m.scheme(), m.alpha)
		m.syncContent()
		return true, m, m.loadHotboard()
	case "a":
		m.alpha -= 0.1
		if m.alpha < 0 {
			m.alpha = 0
		}
		return true, m, m.loadHotboard()
	case "A":
		m.alpha += 0.1
		if m.alpha > 1 {
			m.alpha = 1
		}
		return true, m, m.loadHotboard()
	case "c":
		m.catIdx = (m.catIdx + 1) % len(board.CategoryNames())
		return true, m, m.loadHotboard()
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		m.syncContent()
		return true, m, nil
	case "down":
		if m.selected < len(m.hot.Records)-1 {
			m.selected++
		}
		m.syncContent()
		return true, m, nil
	case "enter":
		if rec, ok := m.hot.Record(m.selected); ok {
			m.inDetail = true
			m.detail = view.BoardDetailView{Phase: view.PhaseLoading, BoardCode: rec.BoardCode, BoardName: rec.BoardName}
			m.syncContent()
			return true, m, m.loadDetail(rec.BoardCode)
		}
		return true, m, nil
	}
	return false, m, nil
}

func (m model) updateAnalysisKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.typing = true
		m.input.Focus()
		m.syncContent()
		return true, m, textinput.Blink
	case "left":
		if m.histPage > 1 {
			m.histPage--
			return true, m, m.loadHistory()
		}
		return true, m, nil
	case "right":
		if m.history.Pages == 0 || m.histPage < m.history.Pages {
			m.histPage++
			return true, m, m.loadHistory()
		}
		return true, m, nil
	case "esc":
		if m.haveAnalysis {
			m.haveAnalysis = false
			m.syncContent()
		}
		return true, m, nil
	}
	return false, m, nil
}

func (m model) updateSchedulerKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.inLogs {
		switch msg.String() {
		case "esc":
			m.inLogs = false
			m.syncContent()
			return true, m, nil
		case "left":
			if m.logsPage > 1 {
				m.logsPage--
				return true, m, m.loadLogs(m.logs.TaskID)
			}
			return true, m, nil
		case "right":
			if m.logs.Pages == 0 || m.logsPage < m.logs.Pages {
				m.logsPage++
				return true, m, m.loadLogs(m.logs.TaskID)
			}
			return true, m, nil
		}
		return false, m, nil
	}

	task, haveTask := m.selectedTask()
	switch msg.String() {
	case "up":
		if m.taskSel > 0 {
			m.taskSel--
		}
		m.syncContent()
		return true, m, nil
	case "down":
		if m.taskSel < len(m.sched.Tasks)-1 {
			m.taskSel++
		}
		m.syncContent()
		return true, m, nil
	case "left":
		if m.schedPage > 1 {
			m.schedPage--
			return true, m, m.loadScheduler()
		}
		return true, m, nil
	case "right":
		if m.sched.Pages == 0 || m.schedPage < m.sched.Pages {
			m.schedPage++
			return true, m, m.loadScheduler()
		}
		return true, m, nil
	case "R":
		if !haveTask {
			return true, m, nil
		}
		id := task.ID
		client := m.client
		m.logger.Info("running task", "id", id)
		return true, m, m.applyTask(func(ctx context.Context) error {
			_, err := client.RunTask(ctx, id)
			return err
		})
	case "e":
		if !haveTask {
			return true, m, nil
		}
		req := stockapi.TaskRequest{Name: task.Name, Cron: task.Cron, Dataset: task.Dataset, Enabled: !task.Enabled}
		id := task.ID
		client := m.client
		return true, m, m.applyTask(func(ctx context.Context) error {
			_, err := client.UpdateTask(ctx, id, req)
			return err
		})
	case "x":
		if !haveTask {
			return true, m, nil
		}
		id := task.ID
		client := m.client
		m.logger.Info("deleting task", "id", id)
		return true, m, m.applyTask(func(ctx context.Context) error {
			return client.DeleteTask(ctx, id)
		})
	case "l":
		if !haveTask {
			return true, m, nil
		}
		m.inLogs = true
		m.logsPage = 1
		m.logs = view.TaskLogsView{Phase: view.PhaseLoading, TaskID: task.ID}
		m.syncContent()
		return true, m, m.loadLogs(task.ID)
	}
	return false, m, nil
}

func (m *model) selectedTask() (stockapi.Task, bool) {
	if m.taskSel < 0 || m.taskSel >= len(m.sched.Tasks) {
		return stockapi.Task{}, false
	}
	return m.sched.Tasks[m.taskSel], true
}

func (m model) updateReportKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	// Dates are newest first: left goes back in time.
	switch msg.String() {
	case "left":
		if m.report.Index >= 0 && m.report.Index+1 < len(m.report.Dates) {
			return true, m, m.loadReport(m.report.Dates[m.report.Index+1])
		}
		return true, m, nil
	case "right":
		if m.report.Index > 0 {
			return true, m, m.loadReport(m.report.Dates[m.report.Index-1])
		}
		return true, m, nil
	}
	return false, m, nil
}

func (m model) updateMonitorKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == " " {
		return true, m, m.toggleMonitor()
	}
	return false, m, nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m *model) syncContent() {
	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var tabs []string
	for i, label := range tabLabels {
		if tab(i) == m.active {
			tabs = append(tabs, tabActiveStyle.Render(" "+label+" "))
		} else {
			tabs = append(tabs, tabIdleStyle.Render(" "+label+" "))
		}
	}
	left := strings.Join(tabs, "")
	right := ""
	if m.hot.Date != "" {
		right = headerStyle.Render(" " + m.hot.Date + " ")
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	header := left + strings.Repeat(" ", gap) + right

	footer := footerStyle.Render(padOrTrunc(" "+m.footerHelp(), m.width))
	return header + "\n" + m.viewport.View() + "\n" + footer
}

func (m *model) footerHelp() string {
	switch m.active {
	case tabHotboard:
		if m.inDetail {
			return "esc back  r refresh  q quit"
		}
		return "s scheme  a/A alpha  c category  up/dn select  enter detail  r refresh  tab view  q quit"
	case tabAnalysis:
		if m.typing {
			return "enter submit  esc cancel"
		}
		return "n new analysis  left/right page  esc close result  r refresh  tab view  q quit"
	case tabScheduler:
		if m.inLogs {
			return "left/right page  esc back  r refresh  q quit"
		}
		return "up/dn select  R run  e enable/disable  x delete  l logs  left/right page  tab view  q quit"
	case tabReport:
		return "left/right date  r refresh  tab view  q quit"
	case tabMonitor:
		return "space start/stop  r refresh  tab view  q quit"
	}
	return "q quit"
}

func (m *model) renderContent() string {
	switch m.active {
	case tabHotboard:
		if m.inDetail {
			return m.renderDetail()
		}
		return m.renderHotboard()
	case tabAnalysis:
		return m.renderAnalysis()
	case tabScheduler:
		return m.renderScheduler()
	case tabReport:
		return m.renderReport()
	case tabMonitor:
		return m.renderMonitor()
	}
	return ""
}

func (m *model) renderHotboard() string {
	var b strings.Builder
	header := fmt.Sprintf("  scheme: %s   alpha: %.1f   category: %s",
		m.scheme().Name, m.alpha, m.category())
	if m.hot.Phase == view.PhaseReady {
		header += fmt.Sprintf("   turnover p50/p90/max: %.1f/%.1f/%.1f%%",
			m.hot.Stats.TurnoverP50, m.hot.Stats.TurnoverP90, m.hot.Stats.TurnoverMax)
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	switch m.hot.Phase {
	case view.PhaseLoading:
		b.WriteString(dimStyle.Render("  Loading..."))
	case view.PhaseFailed:
		b.WriteString(errStyle.Render("  " + m.hot.Err))
	case view.PhaseEmpty:
		b.WriteString(dimStyle.Render("  (no boards)"))
	default:
		width := m.width - 4
		if width < 8 {
			width = 8
		}
		b.WriteString(render.HeatGrid(m.hot.Series, width))
		b.WriteString("\n\n")
		b.WriteString(render.BoardTable(m.hot.Records, m.selected))
	}
	return b.String()
}

func (m *model) renderDetail() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("  %s  %s", m.detail.BoardName, m.detail.BoardCode)))
	b.WriteString("\n\n")

	switch m.detail.Phase {
	case view.PhaseLoading:
		b.WriteString(dimStyle.Render("  Loading..."))
		return b.String()
	case view.PhaseFailed:
		b.WriteString(errStyle.Render("  " + m.detail.Err))
		return b.String()
	case view.PhaseEmpty:
		b.WriteString(dimStyle.Render("  (no data)"))
		return b.String()
	}

	b.WriteString(titleStyle.Render("  Top stocks"))
	b.WriteString("\n")
	if m.detail.TopErr != "" {
		b.WriteString(warnStyle.Render("  " + m.detail.TopErr))
	} else if len(m.detail.Stocks) == 0 {
		b.WriteString(dimStyle.Render("  (no data)"))
	} else {
		b.WriteString(render.ConstituentTable(m.detail.Stocks))
	}
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("  History"))
	b.WriteString("\n")
	if m.detail.HistErr != "" {
		b.WriteString(warnStyle.Render("  " + m.detail.HistErr))
	} else if len(m.detail.Days) == 0 {
		b.WriteString(dimStyle.Render("  (no data)"))
	} else {
		b.WriteString(render.HistoryTable(m.detail.Days))
	}
	return b.String()
}

func (m *model) renderAnalysis() string {
	var b strings.Builder
	if m.typing {
		b.WriteString("  New analysis: " + m.input.View())
		b.WriteString("\n\n")
	}

	if m.haveAnalysis {
		switch m.analysis.Phase {
		case view.PhaseFailed:
			b.WriteString(errStyle.Render("  " + m.analysis.Err))
		default:
			rec := m.analysis.Record
			b.WriteString(titleStyle.Render(fmt.Sprintf("  %s %s  %s", rec.StockCode, rec.StockName, rec.Status)))
			b.WriteString("\n")
			if m.analysis.Verdict != nil {
				v := m.analysis.Verdict
				b.WriteString(okStyle.Render(fmt.Sprintf("  verdict: %s  score: %s  %s",
					v.Action, render.NullableScore(v.Score), v.Summary)))
				b.WriteString("\n")
			}
			if m.analysis.CtxErr != "" {
				b.WriteString(warnStyle.Render("  market context unavailable: " + m.analysis.CtxErr))
				b.WriteString("\n")
			}
			b.WriteString("\n")
			b.WriteString(m.analysis.Content)
		}
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("  History  page %d/%d  total %s",
		m.history.Page, m.history.Pages, render.Count(m.history.Total))))
	b.WriteString("\n")
	switch m.history.Phase {
	case view.PhaseLoading:
		b.WriteString(dimStyle.Render("  Loading..."))
	case view.PhaseFailed:
		b.WriteString(errStyle.Render("  " + m.history.Err))
	case view.PhaseEmpty:
		b.WriteString(dimStyle.Render("  (no analyses yet)"))
	default:
		for _, item := range m.history.Items {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %-12s ", render.Date(item.CreatedAt))))
			b.WriteString(titleStyle.Render(fmt.Sprintf("%-8s %-10s ", item.StockCode, item.StockName)))
			b.WriteString(dimStyle.Render(fmt.Sprintf("%-8s %s", item.Status, render.NullableScore(item.Score))))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *model) renderScheduler() string {
	var b strings.Builder
	if m.inLogs {
		b.WriteString(titleStyle.Render(fmt.Sprintf("  Logs for task %d  page %d/%d", m.logs.TaskID, m.logs.Page, m.logs.Pages)))
		b.WriteString("\n\n")
		switch m.logs.Phase {
		case view.PhaseLoading:
			b.WriteString(dimStyle.Render("  Loading..."))
		case view.PhaseFailed:
			b.WriteString(errStyle.Render("  " + m.logs.Err))
		case view.PhaseEmpty:
			b.WriteString(dimStyle.Render("  (no runs)"))
		default:
			b.WriteString(render.LogTable(m.logs.Items))
		}
		return b.String()
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("  Tasks  page %d/%d  total %s",
		m.sched.Page, m.sched.Pages, render.Count(m.sched.Total))))
	b.WriteString("\n")
	if m.sched.ActionErr != "" {
		b.WriteString(errStyle.Render("  action failed: " + m.sched.ActionErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	switch m.sched.Phase {
	case view.PhaseLoading:
		b.WriteString(dimStyle.Render("  Loading..."))
	case view.PhaseFailed:
		b.WriteString(errStyle.Render("  " + m.sched.Err))
	case view.PhaseEmpty:
		b.WriteString(dimStyle.Render("  (no tasks)"))
	default:
		b.WriteString(render.TaskTable(m.sched.Tasks, m.taskSel))
	}
	b.WriteString("\n\n")
	if m.sched.DsErr != "" {
		b.WriteString(warnStyle.Render("  datasets unavailable: " + m.sched.DsErr))
	} else {
		names := make([]string, 0, len(m.sched.Datasets))
		for _, d := range m.sched.Datasets {
			names = append(names, d.Name)
		}
		b.WriteString(dimStyle.Render("  datasets: " + strings.Join(names, ", ")))
	}
	return b.String()
}

func (m *model) renderReport() string {
	var b strings.Builder
	pos := ""
	if m.report.Index >= 0 {
		pos = fmt.Sprintf("  [%d/%d]", m.report.Index+1, len(m.report.Dates))
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("  Sector report  %s%s", m.report.Date, pos)))
	b.WriteString("\n")
	if m.report.DatesErr != "" {
		b.WriteString(warnStyle.Render("  date list unavailable: " + m.report.DatesErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	switch m.report.Phase {
	case view.PhaseLoading:
		b.WriteString(dimStyle.Render("  Loading..."))
	case view.PhaseFailed:
		b.WriteString(errStyle.Render("  " + m.report.Err))
	case view.PhaseEmpty:
		b.WriteString(dimStyle.Render("  (no report for this date)"))
	default:
		b.WriteString(render.ReportBody(m.report.Content, m.report.Entries))
	}
	return b.String()
}

func (m *model) renderMonitor() string {
	var b strings.Builder
	switch m.monitor.Phase {
	case view.PhaseLoading:
		b.WriteString(dimStyle.Render("  Loading..."))
		return b.String()
	case view.PhaseFailed:
		b.WriteString(errStyle.Render("  " + m.monitor.Err))
		return b.String()
	}

	st := m.monitor.Status
	state := errStyle.Render("stopped")
	if st.Running {
		state = okStyle.Render("running")
	}
	b.WriteString(titleStyle.Render("  Monitor ") + state)
	b.WriteString(dimStyle.Render(fmt.Sprintf("   since %s   interval %ds   watching %d",
		st.Since, st.IntervalSeconds, st.WatchCount)))
	b.WriteString("\n\n")
	if m.monitor.SigErr != "" {
		b.WriteString(warnStyle.Render("  signals unavailable: " + m.monitor.SigErr))
	} else if len(m.monitor.Signals) == 0 {
		b.WriteString(dimStyle.Render("  (no signals)"))
	} else {
		b.WriteString(render.SignalTable(m.monitor.Signals))
	}
	return b.String()
}

// padOrTrunc pads s with spaces to width, or truncates if longer.
func padOrTrunc(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-n)
}

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	logPath := fmt.Sprintf("/tmp/hotboard-console-%s.log", time.Now().Format("2006-01-02"))
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelInfo}))

	client := stockapi.NewClient(cfg.Backend.BaseURL,
		stockapi.WithTimeout(time.Duration(cfg.Backend.TimeoutSeconds)*time.Second),
		stockapi.WithRetries(cfg.Backend.MaxRetries, time.Second),
		stockapi.WithRateLimit(cfg.Backend.RateLimitPerMin),
		stockapi.WithLogger(logger),
	)

	p := tea.NewProgram(
		initialModel(client, cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
