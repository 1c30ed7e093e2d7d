package view

import (
	"context"

	"hotboard/internal/board"
	"hotboard/internal/heatmap"
	"hotboard/pkg/stockapi"
)

// HotboardView is one snapshot of the sector hotboard page.
type HotboardView struct {
	Phase     Phase
	Scheme    heatmap.Scheme
	Alpha     float64
	Category  board.Category
	Date      string
	UpdatedAt string
	Records   []board.Record
	Series    heatmap.Series
	Stats     heatmap.BoardStats
	Err       string
}

// LoadHotboard fetches the realtime board snapshot and builds the treemap
// series for it.
func LoadHotboard(ctx context.Context, client *stockapi.Client, scheme heatmap.Scheme, alpha float64, cat board.Category) HotboardView {
	resp, err := client.BoardRealtime(ctx, stockapi.BoardQuery{
		Metric:   scheme.Name,
		Alpha:    alpha,
		Category: cat,
	})
	if err != nil {
		return HotboardView{
			Phase:    PhaseFailed,
			Scheme:   scheme,
			Alpha:    alpha,
			Category: cat,
			Err:      err.Error(),
		}
	}

	v := HotboardView{
		Scheme:    scheme,
		Alpha:     alpha,
		Category:  cat,
		Date:      TruncateDate(resp.Date),
		UpdatedAt: resp.UpdatedAt,
		Records:   resp.Boards,
		Series:    heatmap.Build(resp.Boards, scheme, alpha),
		Stats:     heatmap.Stats(resp.Boards),
	}
	if len(resp.Boards) == 0 {
		v.Phase = PhaseEmpty
	} else {
		v.Phase = PhaseReady
	}
	return v
}

// WithScheme rebuilds the series from the already-fetched records under a
// different scheme. Composite scores are backend-computed, so switching to
// the composite scheme reuses whatever scores the last fetch carried; a
// fresh LoadHotboard is needed to re-blend with a new alpha.
func (v HotboardView) WithScheme(scheme heatmap.Scheme, alpha float64) HotboardView {
	next := v
	next.Scheme = scheme
	next.Alpha = alpha
	next.Series = heatmap.Build(v.Records, scheme, alpha)
	return next
}

// Record returns the record behind a rendered cell. Series order equals
// record order, so the index maps directly.
func (v HotboardView) Record(i int) (board.Record, bool) {
	if i < 0 || i >= len(v.Records) {
		return board.Record{}, false
	}
	return v.Records[i], true
}
