package heatmap

import (
	"math"
	"sort"

	"hotboard/internal/board"
)

// sizeEpsilon is added to every area so zero-metric boards keep a strictly
// positive, visible cell in an area-proportional layout.
const sizeEpsilon = 1e-6

// Point is one treemap cell. Index i of Series.Points corresponds to index
// i of the input records, so a selected cell maps straight back to its record.
type Point struct {
	Label      string
	BoardCode  string
	Category   board.Category
	Area       float64 // strictly positive
	ColorValue float64
}

// Bounds holds the symmetric bound of the diverging color scale.
type Bounds struct {
	MaxAbs float64 // never below 1
}

// Series is one complete treemap dataset. A fetch or scheme switch builds a
// fresh Series that replaces the previous one wholesale.
type Series struct {
	Points []Point
	Bounds Bounds
	Alpha  float64
}

// Build maps records to treemap points under the given scheme, preserving
// input order. Absent fields count as 0. Alpha is carried for display only:
// composite scores arrive pre-blended from the backend.
func Build(records []board.Record, scheme Scheme, alpha float64) Series {
	points := make([]Point, 0, len(records))
	maxAbs := 1.0
	for _, r := range records {
		color := metricValue(r, scheme.ColorMetric)
		if a := math.Abs(color); a > maxAbs {
			maxAbs = a
		}
		points = append(points, Point{
			Label:      r.BoardName,
			BoardCode:  r.BoardCode,
			Category:   r.CateType,
			Area:       math.Abs(metricValue(r, scheme.SizeMetric)) + sizeEpsilon,
			ColorValue: color,
		})
	}
	return Series{Points: points, Bounds: Bounds{MaxAbs: maxAbs}, Alpha: alpha}
}

func metricValue(r board.Record, m Metric) float64 {
	switch m {
	case MetricFlow:
		return board.Value(r.NetInflow)
	case MetricComposite:
		return board.Value(r.Score)
	default: // MetricChange
		return board.Value(r.PctChg)
	}
}

// BoardStats holds turnover percentiles across a snapshot, shown in the
// hotboard header line.
type BoardStats struct {
	TurnoverP50 float64
	TurnoverP90 float64
	TurnoverMax float64
}

// Stats computes turnover percentiles over a snapshot. Boards without a
// turnover value are skipped, not counted as zero.
func Stats(records []board.Record) BoardStats {
	turns := make([]float64, 0, len(records))
	for i := range records {
		if records[i].Turnover != nil {
			turns = append(turns, *records[i].Turnover)
		}
	}
	if len(turns) == 0 {
		return BoardStats{}
	}
	sort.Float64s(turns)
	return BoardStats{
		TurnoverP50: percentile(turns, 0.50),
		TurnoverP90: percentile(turns, 0.90),
		TurnoverMax: turns[len(turns)-1],
	}
}

// percentile linearly interpolates over an ascending slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := p * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi || hi >= len(sorted) {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
