package view

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotboard/internal/board"
	"hotboard/internal/heatmap"
	"hotboard/pkg/stockapi"
)

// newTestClient wires a client against mux with retries off so failure
// paths return immediately.
func newTestClient(t *testing.T, mux *http.ServeMux) *stockapi.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return stockapi.NewClient(srv.URL, stockapi.WithRetries(0, 0))
}

func TestLoadHotboard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/board/realtime", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"date": "2026-08-28 15:00:00",
			"updated_at": "15:00:03",
			"boards": [
				{"board_code": "BK01", "board_name": "半导体", "cate_type": 1, "pct_chg": 2.1, "net_inflow": 5e8, "turnover": 3.2},
				{"board_code": "BK02", "board_name": "白酒", "cate_type": 1, "pct_chg": -1.4, "net_inflow": -3e8, "turnover": 1.1}
			]
		}`))
	})
	client := newTestClient(t, mux)

	v := LoadHotboard(context.Background(), client, heatmap.MustScheme("flow"), 0.5, board.CategoryAll)
	if v.Phase != PhaseReady {
		t.Fatalf("Phase = %v, want ready (err %q)", v.Phase, v.Err)
	}
	if v.Date != "2026-08-28" {
		t.Errorf("Date = %q, want truncated date", v.Date)
	}
	if len(v.Series.Points) != 2 {
		t.Fatalf("Series has %d points, want 2", len(v.Series.Points))
	}
	if v.Series.Bounds.MaxAbs != 5e8 {
		t.Errorf("MaxAbs = %g, want 5e8", v.Series.Bounds.MaxAbs)
	}
	if rec, ok := v.Record(1); !ok || rec.BoardCode != "BK02" {
		t.Errorf("Record(1) = %+v, %v; cell index must map back to its record", rec, ok)
	}
}

func TestLoadHotboardEmptyAndFailed(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/board/realtime", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"date": "2026-08-29", "boards": []}`))
		})
		client := newTestClient(t, mux)

		v := LoadHotboard(context.Background(), client, heatmap.MustScheme("change"), 0.5, board.CategoryAll)
		if v.Phase != PhaseEmpty {
			t.Errorf("Phase = %v, want empty", v.Phase)
		}
	})

	t.Run("failed", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/board/realtime", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		client := newTestClient(t, mux)

		v := LoadHotboard(context.Background(), client, heatmap.MustScheme("change"), 0.5, board.CategoryAll)
		if v.Phase != PhaseFailed {
			t.Fatalf("Phase = %v, want failed", v.Phase)
		}
		if v.Err == "" {
			t.Error("failed snapshot must carry a message")
		}
	})
}

func TestLoadHotboardWithScheme(t *testing.T) {
	records := []board.Record{
		{BoardCode: "BK01", BoardName: "半导体", PctChg: board.Ptr(2.1), NetInflow: board.Ptr(5e8)},
	}
	v := HotboardView{Phase: PhaseReady, Records: records,
		Series: heatmap.Build(records, heatmap.MustScheme("change"), 0.5)}

	next := v.WithScheme(heatmap.MustScheme("flow"), 0.5)
	if next.Series.Points[0].ColorValue != 5e8 {
		t.Errorf("ColorValue = %g, want flow value", next.Series.Points[0].ColorValue)
	}
	// The original snapshot is untouched.
	if v.Series.Points[0].ColorValue != 2.1 {
		t.Errorf("prior snapshot mutated: ColorValue = %g", v.Series.Points[0].ColorValue)
	}
}

func TestLoadBoardDetailPartialSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/board/top", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"board_code": "BK01", "board_name": "半导体",
			"stocks": [{"code": "688981", "name": "中芯国际", "pct_chg": 3.0}]}`))
	})
	mux.HandleFunc("/api/board/history", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	client := newTestClient(t, mux)

	v := LoadBoardDetail(context.Background(), client, "BK01", 30, 10)
	if v.Phase != PhaseReady {
		t.Fatalf("Phase = %v, want ready on partial success", v.Phase)
	}
	if len(v.Stocks) != 1 {
		t.Errorf("got %d stocks, want the successful half rendered", len(v.Stocks))
	}
	if v.HistErr == "" {
		t.Error("failed half must be noted")
	}
	if v.TopErr != "" {
		t.Errorf("TopErr = %q, want empty", v.TopErr)
	}
}

func TestLoadBoardDetailBothFail(t *testing.T) {
	mux := http.NewServeMux()
	client := newTestClient(t, mux) // no handlers: both 404

	v := LoadBoardDetail(context.Background(), client, "BK01", 30, 10)
	if v.Phase != PhaseFailed {
		t.Errorf("Phase = %v, want failed when both halves fail", v.Phase)
	}
}

func TestRunAnalysisContextFailureDoesNotInvalidate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analysis", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"id": "a1", "stock_code": "600519", "status": "done",
			"content": "# 分析\n结论如下。"}`))
	})
	mux.HandleFunc("/api/board/realtime", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	client := newTestClient(t, mux)

	v := RunAnalysis(context.Background(), client, stockapi.AnalysisRequest{StockCode: "600519"})
	if v.Phase != PhaseReady {
		t.Fatalf("Phase = %v, want ready despite context failure (err %q)", v.Phase, v.Err)
	}
	if v.CtxErr == "" {
		t.Error("context failure must be noted")
	}
	if v.Content != "分析\n结论如下。" {
		t.Errorf("Content = %q, want cleaned markdown", v.Content)
	}
}

func TestLoadAnalysisHistoryPaging(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analysis/history", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q, want 2", got)
		}
		w.Write([]byte(`{"total": 25, "items": [{"id": "a9", "stock_code": "600519", "status": "done"}]}`))
	})
	client := newTestClient(t, mux)

	v := LoadAnalysisHistory(context.Background(), client, "600519", 2, 10)
	if v.Phase != PhaseReady {
		t.Fatalf("Phase = %v, want ready", v.Phase)
	}
	if v.Pages != 3 {
		t.Errorf("Pages = %d, want ceil(25/10) = 3", v.Pages)
	}
}

func TestLoadSchedulerDegradesWithoutDatasets(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/scheduler/tasks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": 1, "items": [{"id": 1, "name": "daily-ingest", "cron": "0 0 16 * * 1-5", "dataset": "boards", "enabled": true}]}`))
	})
	mux.HandleFunc("/api/scheduler/datasets", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	client := newTestClient(t, mux)

	v := LoadScheduler(context.Background(), client, 1, 10)
	if v.Phase != PhaseReady {
		t.Fatalf("Phase = %v, want ready without the dataset catalog", v.Phase)
	}
	if v.DsErr == "" {
		t.Error("dataset failure must be noted")
	}
	if len(v.Tasks) != 1 {
		t.Errorf("got %d tasks, want 1", len(v.Tasks))
	}
}

func TestApplyTaskFailedMutationStillReloads(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/scheduler/tasks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": 0, "items": []}`))
	})
	mux.HandleFunc("/api/scheduler/datasets", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"datasets": []}`))
	})
	client := newTestClient(t, mux)

	v := ApplyTask(context.Background(), client, 1, 10, func(ctx context.Context) error {
		return context.DeadlineExceeded
	})
	if v.ActionErr == "" {
		t.Error("mutation failure must land in ActionErr")
	}
	if v.Phase != PhaseEmpty {
		t.Errorf("Phase = %v, want the reloaded empty state", v.Phase)
	}
}

func TestLoadReportLatest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/report", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("date") {
			t.Error("latest report request must omit the date parameter")
		}
		w.Write([]byte(`{"date": "2026-08-28", "content": "## 策略\n关注半导体。",
			"entries": [{"rank": 1, "board_code": "BK01", "board_name": "半导体", "signal": "bullish"}]}`))
	})
	mux.HandleFunc("/api/report/dates", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dates": ["2026-08-28", "2026-08-27"]}`))
	})
	client := newTestClient(t, mux)

	v := LoadReport(context.Background(), client, "")
	if v.Phase != PhaseReady {
		t.Fatalf("Phase = %v, want ready", v.Phase)
	}
	if v.Index != 0 {
		t.Errorf("Index = %d, want 0 (newest)", v.Index)
	}
	if v.Content != "策略\n关注半导体。" {
		t.Errorf("Content = %q, want cleaned markdown", v.Content)
	}
}

func TestLoadMonitorAndToggle(t *testing.T) {
	mux := http.NewServeMux()
	running := false
	mux.HandleFunc("/api/monitor/status", func(w http.ResponseWriter, r *http.Request) {
		if running {
			w.Write([]byte(`{"running": true, "interval_seconds": 60, "watch_count": 12}`))
		} else {
			w.Write([]byte(`{"running": false, "interval_seconds": 60, "watch_count": 12}`))
		}
	})
	mux.HandleFunc("/api/monitor/start", func(w http.ResponseWriter, r *http.Request) {
		running = true
		w.Write([]byte(`{"running": true, "interval_seconds": 60, "watch_count": 12}`))
	})
	mux.HandleFunc("/api/monitor/signals", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"signals": [{"time": "10:01", "code": "600519", "name": "贵州茅台", "kind": "surge", "message": "+2.3%"}]}`))
	})
	client := newTestClient(t, mux)

	v := LoadMonitor(context.Background(), client, 20)
	if v.Phase != PhaseReady {
		t.Fatalf("Phase = %v, want ready", v.Phase)
	}
	if v.Status.Running {
		t.Error("monitor should report stopped before start")
	}

	v = SetMonitorRunning(context.Background(), client, true, 20)
	if v.Phase != PhaseReady || !v.Status.Running {
		t.Errorf("after start: phase %v running %v, want ready and running", v.Phase, v.Status.Running)
	}
	if len(v.Signals) != 1 {
		t.Errorf("got %d signals, want re-fetched signals alongside the toggle", len(v.Signals))
	}
}
