// Package stockapi provides the Go client for the stock-analysis backend
// REST API.
//
// Endpoint families (all JSON over HTTP under a configurable base URL):
//   - /api/board/...      sector board realtime / history / top constituents
//   - /api/analysis/...   stock analysis submission and history
//   - /api/report/...     daily sector-strategy reports
//   - /api/scheduler/...  data-pipeline task CRUD, datasets and run logs
//   - /api/monitor/...    intraday smart-monitor control and signals
//
// GET requests retry on 5xx/429 with exponential backoff; mutating
// requests are issued exactly once.
package stockapi
