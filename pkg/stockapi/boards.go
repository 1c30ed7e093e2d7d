package stockapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// BoardRealtime fetches the current board snapshot. CategoryAll omits the
// cate_type parameter entirely; alpha is sent only for the composite metric.
func (c *Client) BoardRealtime(ctx context.Context, q BoardQuery) (*BoardRealtimeResponse, error) {
	query := url.Values{}

	if q.Metric != "" {
		query.Set("metric", q.Metric)
	}
	if q.Metric == MetricComposite {
		query.Set("alpha", strconv.FormatFloat(q.Alpha, 'f', -1, 64))
	}
	if v, ok := q.Category.Param(); ok {
		query.Set("cate_type", v)
	}

	var resp BoardRealtimeResponse
	if err := c.get(ctx, "/api/board/realtime", query, &resp); err != nil {
		return nil, fmt.Errorf("board realtime: %w", err)
	}

	return &resp, nil
}

// BoardHistory fetches up to days of daily history for one board.
func (c *Client) BoardHistory(ctx context.Context, boardCode string, days int) (*BoardHistoryResponse, error) {
	query := url.Values{}
	query.Set("board_code", boardCode)
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}

	var resp BoardHistoryResponse
	if err := c.get(ctx, "/api/board/history", query, &resp); err != nil {
		return nil, fmt.Errorf("board history %s: %w", boardCode, err)
	}

	return &resp, nil
}

// BoardTop fetches a board's top constituent stocks by net inflow.
func (c *Client) BoardTop(ctx context.Context, boardCode string, limit int) (*BoardTopResponse, error) {
	query := url.Values{}
	query.Set("board_code", boardCode)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp BoardTopResponse
	if err := c.get(ctx, "/api/board/top", query, &resp); err != nil {
		return nil, fmt.Errorf("board top %s: %w", boardCode, err)
	}

	return &resp, nil
}
