package stockapi

import "hotboard/internal/board"

// MetricComposite is the metric preset whose requests carry the alpha
// blend weight. Other presets never send alpha.
const MetricComposite = "composite"

// BoardQuery filters the realtime board endpoint.
type BoardQuery struct {
	Metric   string  // scheme preset name; "" lets the backend default
	Alpha    float64 // composite blend weight in [0,1]
	Category board.Category
}

// BoardRealtimeResponse is the realtime board snapshot.
type BoardRealtimeResponse struct {
	Date      string         `json:"date"`
	UpdatedAt string         `json:"updated_at"`
	Boards    []board.Record `json:"boards"`
}

// BoardHistoryResponse is the per-board daily history.
type BoardHistoryResponse struct {
	BoardCode string             `json:"board_code"`
	BoardName string             `json:"board_name"`
	Days      []board.HistoryDay `json:"days"`
}

// BoardTopResponse lists a board's top constituent stocks.
type BoardTopResponse struct {
	BoardCode string              `json:"board_code"`
	BoardName string              `json:"board_name"`
	Stocks    []board.Constituent `json:"stocks"`
}

// AnalysisRequest submits a stock for analysis.
type AnalysisRequest struct {
	StockCode string `json:"stock_code"`
	StockName string `json:"stock_name,omitempty"`
	Period    string `json:"period,omitempty"` // e.g. "daily", "weekly"
}

// AnalysisRecord is one analysis run, submitted or historical.
type AnalysisRecord struct {
	ID        string   `json:"id"`
	StockCode string   `json:"stock_code"`
	StockName string   `json:"stock_name"`
	CreatedAt string   `json:"created_at"`
	Status    string   `json:"status"`  // pending | running | done | failed
	Content   string   `json:"content"` // raw markdown
	Score     *float64 `json:"score,omitempty"`
}

// AnalysisHistoryResponse is one page of past analyses.
type AnalysisHistoryResponse struct {
	Total int              `json:"total"`
	Items []AnalysisRecord `json:"items"`
}

// ReportDatesResponse lists dates with an available sector report.
type ReportDatesResponse struct {
	Dates []string `json:"dates"`
}

// ReportEntry is one ranked sector inside a report.
type ReportEntry struct {
	Rank      int      `json:"rank"`
	BoardCode string   `json:"board_code"`
	BoardName string   `json:"board_name"`
	Signal    string   `json:"signal"`
	Score     *float64 `json:"score,omitempty"`
}

// SectorReport is one daily sector-strategy report.
type SectorReport struct {
	Date    string        `json:"date"`
	Content string        `json:"content"` // markdown body
	Entries []ReportEntry `json:"entries,omitempty"`
}

// Task is one scheduled data-pipeline task.
type Task struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Cron       string `json:"cron"`
	Dataset    string `json:"dataset"`
	Enabled    bool   `json:"enabled"`
	LastRunAt  string `json:"last_run_at,omitempty"`
	LastStatus string `json:"last_status,omitempty"`
}

// TaskRequest creates or replaces a task.
type TaskRequest struct {
	Name    string `json:"name"`
	Cron    string `json:"cron"`
	Dataset string `json:"dataset"`
	Enabled bool   `json:"enabled"`
}

// TasksResponse is one page of tasks.
type TasksResponse struct {
	Total int    `json:"total"`
	Items []Task `json:"items"`
}

// Dataset is one ingestable dataset known to the scheduler.
type Dataset struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// TaskLog is one finished or running task execution.
type TaskLog struct {
	ID         int64  `json:"id"`
	TaskID     int64  `json:"task_id"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at,omitempty"`
	Status     string `json:"status"` // running | success | failed
	Message    string `json:"message,omitempty"`
}

// TaskLogsResponse is one page of task executions.
type TaskLogsResponse struct {
	Total int       `json:"total"`
	Items []TaskLog `json:"items"`
}

// MonitorStatus reports the intraday monitor daemon state.
type MonitorStatus struct {
	Running         bool   `json:"running"`
	Since           string `json:"since,omitempty"`
	IntervalSeconds int    `json:"interval_seconds"`
	WatchCount      int    `json:"watch_count"`
}

// MonitorSignal is one alert emitted by the monitor.
type MonitorSignal struct {
	Time    string `json:"time"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Kind    string `json:"kind"` // e.g. "surge", "dive", "volume"
	Message string `json:"message"`
}

// MonitorSignalsResponse lists recent monitor signals, newest first.
type MonitorSignalsResponse struct {
	Signals []MonitorSignal `json:"signals"`
}
