// Package heatmap builds treemap series from board records: one point per
// board, area driven by one metric and color by another under a symmetric
// diverging scale. Pure computation, shared by the console and CLI clients.
package heatmap

import "fmt"

// Metric identifies the board field a scheme reads for sizing or coloring.
type Metric int

const (
	MetricChange    Metric = iota // day change %
	MetricFlow                    // main-capital net inflow
	MetricComposite               // blended heat score (computed backend-side)
)

// Scheme pairs a color metric with a size metric. Schemes are fixed
// presets; Name doubles as the backend "metric" query value.
type Scheme struct {
	Name        string
	ColorMetric Metric
	SizeMetric  Metric
}

var schemes = [...]Scheme{
	{Name: "change", ColorMetric: MetricChange, SizeMetric: MetricFlow},
	{Name: "flow", ColorMetric: MetricFlow, SizeMetric: MetricChange},
	{Name: "composite", ColorMetric: MetricComposite, SizeMetric: MetricFlow},
}

// MustScheme resolves a preset by name. The name set is fixed at compile
// time and only ever comes from selector controls, so an unknown name is a
// programming error: MustScheme panics, it never falls back to a default.
func MustScheme(name string) Scheme {
	for _, s := range schemes {
		if s.Name == name {
			return s
		}
	}
	panic(fmt.Sprintf("heatmap: unknown scheme %q", name))
}

// SchemeNames returns the preset names in selector order.
func SchemeNames() []string {
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = s.Name
	}
	return names
}
