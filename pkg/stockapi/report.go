package stockapi

import (
	"context"
	"fmt"
	"net/url"
)

// ReportDates lists dates with an available sector report, newest first.
func (c *Client) ReportDates(ctx context.Context) ([]string, error) {
	var resp ReportDatesResponse
	if err := c.get(ctx, "/api/report/dates", nil, &resp); err != nil {
		return nil, fmt.Errorf("report dates: %w", err)
	}
	return resp.Dates, nil
}

// Report fetches the sector report for a date. date "" selects the latest.
func (c *Client) Report(ctx context.Context, date string) (*SectorReport, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}

	var resp SectorReport
	if err := c.get(ctx, "/api/report", query, &resp); err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}

	return &resp, nil
}
