// Package render turns board snapshots into terminal output: CN-unit
// number formatting, a diverging heat color ramp, and fixed-width tables
// shared by the console and the CLI. Nil metric values render as "—" so
// missing data never looks like a literal zero.
package render

import (
	"fmt"
	"math"
	"strings"

	"hotboard/internal/view"
)

// Amount formats a CNY amount with 亿/万 grouping.
func Amount(v float64) string {
	a := math.Abs(v)
	switch {
	case a >= 1e8:
		return fmt.Sprintf("%.2f亿", v/1e8)
	case a >= 1e4:
		return fmt.Sprintf("%.1f万", v/1e4)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// Flow formats a signed capital flow in 亿, always with an explicit sign.
func Flow(v float64) string {
	return fmt.Sprintf("%+.2f亿", v/1e8)
}

// Pct formats a signed percentage with two decimals.
func Pct(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// Score formats a composite score.
func Score(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

const noData = "—"

// NullableAmount is Amount with "—" for absent values.
func NullableAmount(p *float64) string {
	if p == nil {
		return noData
	}
	return Amount(*p)
}

// NullableFlow is Flow with "—" for absent values.
func NullableFlow(p *float64) string {
	if p == nil {
		return noData
	}
	return Flow(*p)
}

// NullablePct is Pct with "—" for absent values.
func NullablePct(p *float64) string {
	if p == nil {
		return noData
	}
	return Pct(*p)
}

// NullableScore is Score with "—" for absent values.
func NullableScore(p *float64) string {
	if p == nil {
		return noData
	}
	return Score(*p)
}

// Count formats an integer with comma separators.
func Count(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	start := len(s) % 3
	if start > 0 {
		b.WriteString(s[:start])
	}
	for i := start; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Date shortens a backend timestamp to its date part.
func Date(s string) string {
	return view.TruncateDate(s)
}
