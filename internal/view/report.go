package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hotboard/pkg/stockapi"
)

// ReportView is one snapshot of the sector-strategy report page.
type ReportView struct {
	Phase    Phase
	Dates    []string // available report dates, newest first
	Index    int      // position of Date in Dates, -1 when not listed
	Date     string
	Content  string // cleaned markdown
	Entries  []stockapi.ReportEntry
	DatesErr string // date list failure, "" when ok
	Err      string
}

// LoadReport fetches the report for date ("" = latest) and the date list
// for navigation in parallel. The report renders even when the date list
// is unavailable; only a failed report fetch fails the page.
func LoadReport(ctx context.Context, client *stockapi.Client, date string) ReportView {
	var (
		report   *stockapi.SectorReport
		dates    []string
		repErr   error
		datesErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report, repErr = client.Report(gctx, date)
		return nil
	})
	g.Go(func() error {
		dates, datesErr = client.ReportDates(gctx)
		return nil
	})
	_ = g.Wait()

	v := ReportView{Index: -1}
	if datesErr != nil {
		v.DatesErr = datesErr.Error()
	} else {
		v.Dates = dates
	}

	if repErr != nil {
		v.Phase = PhaseFailed
		v.Date = date
		v.Err = repErr.Error()
		return v
	}

	v.Date = TruncateDate(report.Date)
	v.Content = CleanMarkdown(report.Content)
	v.Entries = report.Entries
	for i, d := range v.Dates {
		if TruncateDate(d) == v.Date {
			v.Index = i
			break
		}
	}
	if v.Content == "" && len(v.Entries) == 0 {
		v.Phase = PhaseEmpty
	} else {
		v.Phase = PhaseReady
	}
	return v
}
