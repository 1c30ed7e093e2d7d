package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hotboard/internal/board"
	"hotboard/pkg/stockapi"
)

// AnalysisView is one snapshot of a submitted analysis run plus the
// market context it was submitted against.
type AnalysisView struct {
	Phase   Phase
	Record  *stockapi.AnalysisRecord
	Content string   // cleaned markdown
	Verdict *Verdict // nil when the analysis has no embedded verdict
	Context []board.Record
	CtxErr  string // context fetch failure, "" when ok
	Err     string
}

// RunAnalysis submits the analysis and fetches the board context in
// parallel. The two are independent: a failed context fetch leaves a
// successful analysis fully renderable, and a failed analysis still
// reports its own error even when the context arrived.
func RunAnalysis(ctx context.Context, client *stockapi.Client, req stockapi.AnalysisRequest) AnalysisView {
	var (
		rec       *stockapi.AnalysisRecord
		boards    *stockapi.BoardRealtimeResponse
		recErr    error
		boardsErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rec, recErr = client.SubmitAnalysis(gctx, req)
		return nil
	})
	g.Go(func() error {
		boards, boardsErr = client.BoardRealtime(gctx, stockapi.BoardQuery{})
		return nil
	})
	_ = g.Wait()

	v := AnalysisView{}
	if boardsErr != nil {
		v.CtxErr = boardsErr.Error()
	} else if boards != nil {
		v.Context = boards.Boards
	}

	if recErr != nil {
		v.Phase = PhaseFailed
		v.Err = recErr.Error()
		return v
	}

	v.Phase = PhaseReady
	v.Record = rec
	v.Content = CleanMarkdown(rec.Content)
	if verdict, ok := ExtractVerdict(rec.Content); ok {
		v.Verdict = verdict
	}
	return v
}

// LoadAnalysis fetches one finished or running analysis by ID.
func LoadAnalysis(ctx context.Context, client *stockapi.Client, id string) AnalysisView {
	rec, err := client.Analysis(ctx, id)
	if err != nil {
		return AnalysisView{Phase: PhaseFailed, Err: err.Error()}
	}

	v := AnalysisView{Phase: PhaseReady, Record: rec, Content: CleanMarkdown(rec.Content)}
	if verdict, ok := ExtractVerdict(rec.Content); ok {
		v.Verdict = verdict
	}
	return v
}

// AnalysisHistoryView is one page of past analyses.
type AnalysisHistoryView struct {
	Phase     Phase
	StockCode string
	Page      int // 1-based
	PageSize  int
	Total     int
	Pages     int
	Items     []stockapi.AnalysisRecord
	Err       string
}

// LoadAnalysisHistory fetches one history page. Pages outside [1, Pages]
// are clamped by the backend; the snapshot reports whatever came back.
func LoadAnalysisHistory(ctx context.Context, client *stockapi.Client, stockCode string, page, pageSize int) AnalysisHistoryView {
	resp, err := client.AnalysisHistory(ctx, stockCode, page, pageSize)
	if err != nil {
		return AnalysisHistoryView{
			Phase:     PhaseFailed,
			StockCode: stockCode,
			Page:      page,
			PageSize:  pageSize,
			Err:       err.Error(),
		}
	}

	v := AnalysisHistoryView{
		StockCode: stockCode,
		Page:      page,
		PageSize:  pageSize,
		Total:     resp.Total,
		Pages:     PageCount(resp.Total, pageSize),
		Items:     resp.Items,
	}
	if len(resp.Items) == 0 {
		v.Phase = PhaseEmpty
	} else {
		v.Phase = PhaseReady
	}
	return v
}
