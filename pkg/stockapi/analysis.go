package stockapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// SubmitAnalysis submits a stock for analysis and returns the created
// record. The call blocks until the backend has accepted (not finished)
// the run.
func (c *Client) SubmitAnalysis(ctx context.Context, req AnalysisRequest) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	if err := c.send(ctx, http.MethodPost, "/api/analysis", req, &rec); err != nil {
		return nil, fmt.Errorf("submit analysis %s: %w", req.StockCode, err)
	}
	return &rec, nil
}

// Analysis fetches a single analysis run by ID.
func (c *Client) Analysis(ctx context.Context, id string) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	if err := c.get(ctx, "/api/analysis/"+id, nil, &rec); err != nil {
		return nil, fmt.Errorf("get analysis %s: %w", id, err)
	}
	return &rec, nil
}

// AnalysisHistory fetches one page of past analyses. stockCode "" lists
// runs for all stocks. Pages are 1-based.
func (c *Client) AnalysisHistory(ctx context.Context, stockCode string, page, pageSize int) (*AnalysisHistoryResponse, error) {
	query := url.Values{}
	if stockCode != "" {
		query.Set("stock_code", stockCode)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}

	var resp AnalysisHistoryResponse
	if err := c.get(ctx, "/api/analysis/history", query, &resp); err != nil {
		return nil, fmt.Errorf("analysis history: %w", err)
	}

	return &resp, nil
}
