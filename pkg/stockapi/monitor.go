package stockapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// MonitorStatus fetches the monitor daemon state.
func (c *Client) MonitorStatus(ctx context.Context) (*MonitorStatus, error) {
	var status MonitorStatus
	if err := c.get(ctx, "/api/monitor/status", nil, &status); err != nil {
		return nil, fmt.Errorf("monitor status: %w", err)
	}
	return &status, nil
}

// StartMonitor asks the backend to start intraday monitoring. Starting an
// already-running monitor is not an error; the returned status reflects
// the post-call state.
func (c *Client) StartMonitor(ctx context.Context) (*MonitorStatus, error) {
	var status MonitorStatus
	if err := c.send(ctx, http.MethodPost, "/api/monitor/start", nil, &status); err != nil {
		return nil, fmt.Errorf("start monitor: %w", err)
	}
	return &status, nil
}

// StopMonitor asks the backend to stop intraday monitoring.
func (c *Client) StopMonitor(ctx context.Context) (*MonitorStatus, error) {
	var status MonitorStatus
	if err := c.send(ctx, http.MethodPost, "/api/monitor/stop", nil, &status); err != nil {
		return nil, fmt.Errorf("stop monitor: %w", err)
	}
	return &status, nil
}

// MonitorSignals fetches the most recent monitor signals, newest first.
func (c *Client) MonitorSignals(ctx context.Context, limit int) ([]MonitorSignal, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp MonitorSignalsResponse
	if err := c.get(ctx, "/api/monitor/signals", query, &resp); err != nil {
		return nil, fmt.Errorf("monitor signals: %w", err)
	}

	return resp.Signals, nil
}
