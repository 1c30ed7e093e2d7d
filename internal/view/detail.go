package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hotboard/internal/board"
	"hotboard/pkg/stockapi"
)

// BoardDetailView is one snapshot of a board drill-down: top constituents
// and daily history, fetched together.
type BoardDetailView struct {
	Phase     Phase
	BoardCode string
	BoardName string
	Stocks    []board.Constituent
	Days      []board.HistoryDay
	TopErr    string // constituents fetch failure, "" when ok
	HistErr   string // history fetch failure, "" when ok
	Err       string
}

// LoadBoardDetail issues the constituents and history fetches in parallel
// and joins them. One half failing does not discard the other: whichever
// arrived is rendered, with the failure noted per half. Only when both
// fail is the snapshot failed as a whole.
func LoadBoardDetail(ctx context.Context, client *stockapi.Client, boardCode string, days, limit int) BoardDetailView {
	var (
		top     *stockapi.BoardTopResponse
		hist    *stockapi.BoardHistoryResponse
		topErr  error
		histErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		top, topErr = client.BoardTop(gctx, boardCode, limit)
		return nil
	})
	g.Go(func() error {
		hist, histErr = client.BoardHistory(gctx, boardCode, days)
		return nil
	})
	// Branch errors land in their slots; the goroutines themselves never
	// fail, so one slow half cannot cancel the other.
	_ = g.Wait()

	v := BoardDetailView{BoardCode: boardCode}
	if topErr != nil {
		v.TopErr = topErr.Error()
	} else if top != nil {
		v.Stocks = top.Stocks
		v.BoardName = top.BoardName
	}
	if histErr != nil {
		v.HistErr = histErr.Error()
	} else if hist != nil {
		v.Days = hist.Days
		if v.BoardName == "" {
			v.BoardName = hist.BoardName
		}
	}

	switch {
	case topErr != nil && histErr != nil:
		v.Phase = PhaseFailed
		v.Err = topErr.Error()
	case len(v.Stocks) == 0 && len(v.Days) == 0 && topErr == nil && histErr == nil:
		v.Phase = PhaseEmpty
	default:
		v.Phase = PhaseReady
	}
	return v
}
