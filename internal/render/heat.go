package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hotboard/internal/heatmap"
)

// Diverging ramp, CN market convention: red is up, green is down, a light
// neutral in the middle. Three intensities per side.
var (
	heatPosStrong = lipgloss.Color("196")
	heatPosMedium = lipgloss.Color("160")
	heatPosWeak   = lipgloss.Color("131")
	heatNeutral   = lipgloss.Color("250")
	heatNegWeak   = lipgloss.Color("65")
	heatNegMedium = lipgloss.Color("34")
	heatNegStrong = lipgloss.Color("46")
)

// HeatColor maps a color value onto the diverging ramp, symmetric about
// zero. maxAbs below 1 cannot come out of a Series but is clamped anyway.
func HeatColor(colorValue, maxAbs float64) lipgloss.Color {
	if maxAbs < 1 {
		maxAbs = 1
	}
	t := colorValue / maxAbs
	switch {
	case t >= 0.75:
		return heatPosStrong
	case t >= 0.40:
		return heatPosMedium
	case t >= 0.10:
		return heatPosWeak
	case t <= -0.75:
		return heatNegStrong
	case t <= -0.40:
		return heatNegMedium
	case t <= -0.10:
		return heatNegWeak
	default:
		return heatNeutral
	}
}

// HeatCells returns the cell count per point, proportional to area within
// a budget of width cells. Every point keeps at least one cell, so cell
// blocks stay in one-to-one series order.
func HeatCells(series heatmap.Series, width int) []int {
	if width < len(series.Points) {
		width = len(series.Points)
	}
	total := 0.0
	for _, p := range series.Points {
		total += p.Area
	}
	cells := make([]int, len(series.Points))
	if total <= 0 {
		for i := range cells {
			cells[i] = 1
		}
		return cells
	}
	for i, p := range series.Points {
		n := int(p.Area / total * float64(width))
		if n < 1 {
			n = 1
		}
		cells[i] = n
	}
	return cells
}

// HeatGrid renders the series as rows of colored cells, wrapped at width.
// Cell runs appear in series order, the terminal stand-in for the treemap
// layout: run i belongs to record i.
func HeatGrid(series heatmap.Series, width int) string {
	if len(series.Points) == 0 {
		return ""
	}
	if width < 8 {
		width = 8
	}

	cells := HeatCells(series, width*3)
	var b strings.Builder
	col := 0
	for i, p := range series.Points {
		style := lipgloss.NewStyle().Foreground(HeatColor(p.ColorValue, series.Bounds.MaxAbs))
		for n := cells[i]; n > 0; {
			run := n
			if run > width-col {
				run = width - col
			}
			b.WriteString(style.Render(strings.Repeat("█", run)))
			n -= run
			col += run
			if col >= width {
				b.WriteString("\n")
				col = 0
			}
		}
	}
	out := b.String()
	return strings.TrimSuffix(out, "\n")
}
