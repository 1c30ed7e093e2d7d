package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"hotboard/internal/config"
	"hotboard/internal/util"
	"hotboard/internal/view"
	"hotboard/pkg/stockapi"
)

// watcher polls the monitor endpoints on a cron schedule and logs what
// changed since the previous poll.
type watcher struct {
	client *stockapi.Client
	cfg    *config.Config
	logger *slog.Logger

	seen        map[string]bool // time+code of signals already logged
	lastRunning bool
	polled      bool
}

func newWatcher(client *stockapi.Client, cfg *config.Config, logger *slog.Logger) *watcher {
	return &watcher{
		client: client,
		cfg:    cfg,
		logger: logger,
		seen:   make(map[string]bool),
	}
}

func (w *watcher) poll(ctx context.Context) {
	now := time.Now()
	if w.cfg.Watch.MarketHoursOnly && !util.IsMarketOpen(now) {
		w.logger.Debug("market closed, skipping poll", "next_open", util.NextOpen(now))
		return
	}

	v := view.LoadMonitor(ctx, w.client, w.cfg.Watch.SignalLimit)
	if v.Phase == view.PhaseFailed {
		w.logger.Error("monitor poll failed", "error", v.Err)
		return
	}

	if v.Status != nil {
		if w.polled && w.lastRunning && !v.Status.Running {
			w.logger.Error("monitor stopped running",
				"since", v.Status.Since,
				"watch_count", v.Status.WatchCount)
		}
		w.lastRunning = v.Status.Running
		w.polled = true
		w.logger.Info("monitor status",
			"running", v.Status.Running,
			"interval_seconds", v.Status.IntervalSeconds,
			"watch_count", v.Status.WatchCount)
	}

	if v.SigErr != "" {
		w.logger.Warn("signal fetch failed", "error", v.SigErr)
		return
	}

	for _, sig := range v.Signals {
		key := sig.Time + "|" + sig.Code
		if w.seen[key] {
			continue
		}
		w.seen[key] = true
		w.logger.Warn("monitor signal",
			"time", sig.Time,
			"code", sig.Code,
			"name", sig.Name,
			"kind", sig.Kind,
			"message", sig.Message)
	}
}

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Setup logging to stdout and a daily file.
	logFileName := fmt.Sprintf("/tmp/hotboard-watch-%s.log", time.Now().Format("2006-01-02"))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("opening log file: %v", err)
	}
	defer logFile.Close()

	w := io.MultiWriter(os.Stdout, logFile)
	logger := util.NewLoggerTo(w, cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(logger)

	client := stockapi.NewClient(cfg.Backend.BaseURL,
		stockapi.WithTimeout(time.Duration(cfg.Backend.TimeoutSeconds)*time.Second),
		stockapi.WithRetries(cfg.Backend.MaxRetries, time.Second),
		stockapi.WithRateLimit(cfg.Backend.RateLimitPerMin),
		stockapi.WithLogger(logger),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watch := newWatcher(client, cfg, logger)

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Watch.Cron, func() { watch.poll(ctx) }); err != nil {
		log.Fatalf("registering cron %q: %v", cfg.Watch.Cron, err)
	}

	logger.Info("hotboard-watch started",
		"cron", cfg.Watch.Cron,
		"backend", cfg.Backend.BaseURL,
		"market_hours_only", cfg.Watch.MarketHoursOnly)

	// The backend may still be coming up when the watcher starts, so probe
	// it with backoff before the first poll.
	err = util.Retry(ctx, 5, 2*time.Second, func() error {
		_, err := client.MonitorStatus(ctx)
		return err
	})
	if err != nil {
		logger.Warn("backend unreachable at startup", "error", err)
	}

	// One poll right away so a broken backend surfaces before the first
	// scheduled tick.
	watch.poll(ctx)

	c.Start()
	<-ctx.Done()
	logger.Info("shutting down hotboard-watch")

	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		logger.Warn("cron jobs still running at shutdown deadline")
	}
}
