package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hotboard/internal/board"
	"hotboard/pkg/stockapi"
)

// Styles.
var (
	colHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	nameStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	gainStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	lossStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	highlightBG    = lipgloss.Color("236")
)

// hlStyle returns a copy of s with the highlight background applied when
// hl is true.
func hlStyle(s lipgloss.Style, hl bool) lipgloss.Style {
	if hl {
		return s.Background(highlightBG)
	}
	return s
}

// signStyle picks the up/down color for an optional signed value.
func signStyle(p *float64) lipgloss.Style {
	switch {
	case p == nil:
		return dimStyle
	case *p > 0:
		return gainStyle
	case *p < 0:
		return lossStyle
	default:
		return dimStyle
	}
}

// padCell right-pads s to w display columns, truncation aside. CJK board
// names are double-width, so padding goes by rendered width, not bytes.
func padCell(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// padLeft left-pads s to w display columns.
func padLeft(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// BoardTable renders board records, one row per record in input order.
// selected (-1 for none) highlights one row.
func BoardTable(records []board.Record, selected int) string {
	var b strings.Builder
	b.WriteString(colHeaderStyle.Render(fmt.Sprintf(
		"  %-3s %-14s %8s %10s %10s %8s %6s", "#", "Board", "Chg%", "Flow", "Amount", "Turn%", "Score")))
	b.WriteString("\n")

	for i, r := range records {
		hl := i == selected
		b.WriteString(hlStyle(dimStyle, hl).Render(fmt.Sprintf("  %-3d ", i+1)))
		b.WriteString(hlStyle(nameStyle, hl).Render(padCell(r.BoardName, 14)))
		b.WriteString(hlStyle(signStyle(r.PctChg), hl).Render(padLeft(NullablePct(r.PctChg), 9)))
		b.WriteString(hlStyle(signStyle(r.NetInflow), hl).Render(padLeft(NullableFlow(r.NetInflow), 11)))
		b.WriteString(hlStyle(dimStyle, hl).Render(padLeft(NullableAmount(r.Amount), 11)))
		b.WriteString(hlStyle(dimStyle, hl).Render(padLeft(NullablePct(r.Turnover), 9)))
		b.WriteString(hlStyle(dimStyle, hl).Render(padLeft(NullableScore(r.Score), 7)))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// ConstituentTable renders a board's top stocks.
func ConstituentTable(stocks []board.Constituent) string {
	var b strings.Builder
	b.WriteString(colHeaderStyle.Render(fmt.Sprintf(
		"  %-8s %-10s %8s %10s %10s", "Code", "Name", "Chg%", "Flow", "Amount")))
	b.WriteString("\n")
	for _, s := range stocks {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-8s ", s.Code)))
		b.WriteString(nameStyle.Render(padCell(s.Name, 10)))
		b.WriteString(signStyle(s.PctChg).Render(padLeft(NullablePct(s.PctChg), 9)))
		b.WriteString(signStyle(s.NetInflow).Render(padLeft(NullableFlow(s.NetInflow), 11)))
		b.WriteString(dimStyle.Render(padLeft(NullableAmount(s.Amount), 11)))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// HistoryTable renders a board's daily history, newest first as served.
func HistoryTable(days []board.HistoryDay) string {
	var b strings.Builder
	b.WriteString(colHeaderStyle.Render(fmt.Sprintf(
		"  %-12s %8s %10s %10s %8s", "Date", "Chg%", "Flow", "Amount", "Turn%")))
	b.WriteString("\n")
	for _, d := range days {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-12s ", Date(d.Date))))
		b.WriteString(signStyle(d.PctChg).Render(padLeft(NullablePct(d.PctChg), 8)))
		b.WriteString(signStyle(d.NetInflow).Render(padLeft(NullableFlow(d.NetInflow), 11)))
		b.WriteString(dimStyle.Render(padLeft(NullableAmount(d.Amount), 11)))
		b.WriteString(dimStyle.Render(padLeft(NullablePct(d.Turnover), 9)))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// TaskTable renders scheduler tasks. selected (-1 for none) highlights one
// row.
func TaskTable(tasks []stockapi.Task, selected int) string {
	var b strings.Builder
	b.WriteString(colHeaderStyle.Render(fmt.Sprintf(
		"  %-5s %-18s %-16s %-12s %-4s %-17s %s", "ID", "Name", "Cron", "Dataset", "On", "Last Run", "Status")))
	b.WriteString("\n")
	for i, t := range tasks {
		hl := i == selected
		enabled := " "
		if t.Enabled {
			enabled = "*"
		}
		statusStyle := dimStyle
		switch t.LastStatus {
		case "success":
			statusStyle = okStyle
		case "failed":
			statusStyle = failStyle
		}
		b.WriteString(hlStyle(dimStyle, hl).Render(fmt.Sprintf("  %-5d ", t.ID)))
		b.WriteString(hlStyle(nameStyle, hl).Render(padCell(t.Name, 18)))
		b.WriteString(hlStyle(dimStyle, hl).Render(fmt.Sprintf(" %-16s %-12s %-4s %-17s", t.Cron, t.Dataset, enabled, t.LastRunAt)))
		b.WriteString(hlStyle(statusStyle, hl).Render(" " + t.LastStatus))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// LogTable renders task execution logs.
func LogTable(logs []stockapi.TaskLog) string {
	var b strings.Builder
	b.WriteString(colHeaderStyle.Render(fmt.Sprintf(
		"  %-6s %-6s %-20s %-20s %-8s %s", "ID", "Task", "Started", "Finished", "Status", "Message")))
	b.WriteString("\n")
	for _, l := range logs {
		statusStyle := dimStyle
		switch l.Status {
		case "success":
			statusStyle = okStyle
		case "failed":
			statusStyle = failStyle
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-6d %-6d %-20s %-20s ", l.ID, l.TaskID, l.StartedAt, l.FinishedAt)))
		b.WriteString(statusStyle.Render(fmt.Sprintf("%-8s ", l.Status)))
		b.WriteString(dimStyle.Render(l.Message))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// SignalTable renders monitor signals, newest first as served.
func SignalTable(signals []stockapi.MonitorSignal) string {
	var b strings.Builder
	b.WriteString(colHeaderStyle.Render(fmt.Sprintf(
		"  %-20s %-8s %-10s %-8s %s", "Time", "Code", "Name", "Kind", "Message")))
	b.WriteString("\n")
	for _, s := range signals {
		kindStyle := dimStyle
		switch s.Kind {
		case "surge":
			kindStyle = gainStyle
		case "dive":
			kindStyle = lossStyle
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-20s %-8s ", s.Time, s.Code)))
		b.WriteString(nameStyle.Render(padCell(s.Name, 10)))
		b.WriteString(kindStyle.Render(padCell(" "+s.Kind, 9)))
		b.WriteString(dimStyle.Render(s.Message))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// ReportBody renders a sector report: ranked entries first, prose below.
func ReportBody(content string, entries []stockapi.ReportEntry) string {
	var b strings.Builder
	if len(entries) > 0 {
		b.WriteString(colHeaderStyle.Render(fmt.Sprintf(
			"  %-4s %-8s %-14s %-8s %s", "Rank", "Code", "Board", "Signal", "Score")))
		b.WriteString("\n")
		for _, e := range entries {
			sigStyle := dimStyle
			switch e.Signal {
			case "buy", "bullish":
				sigStyle = gainStyle
			case "sell", "bearish":
				sigStyle = lossStyle
			}
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %-4d %-8s ", e.Rank, e.BoardCode)))
			b.WriteString(nameStyle.Render(padCell(e.BoardName, 14)))
			b.WriteString(sigStyle.Render(padCell(" "+e.Signal, 9)))
			b.WriteString(dimStyle.Render(NullableScore(e.Score)))
			b.WriteString("\n")
		}
		if content != "" {
			b.WriteString("\n")
		}
	}
	b.WriteString(content)
	return strings.TrimSuffix(b.String(), "\n")
}
