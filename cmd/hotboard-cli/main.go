package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"hotboard/internal/board"
	"hotboard/internal/config"
	"hotboard/internal/heatmap"
	"hotboard/internal/render"
	"hotboard/internal/util"
	"hotboard/internal/view"
	"hotboard/pkg/stockapi"
)

const version = "0.1.0"

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hotboard-cli <command> [options]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  version                        Print the CLI version\n")
	fmt.Fprintf(os.Stderr, "  boards                         Show the sector hotboard\n")
	fmt.Fprintf(os.Stderr, "  detail <board_code>            Show a board's top stocks and history\n")
	fmt.Fprintf(os.Stderr, "  analyze <stock_code>           Submit a stock analysis and print the result\n")
	fmt.Fprintf(os.Stderr, "  history <stock_code>           List past analyses for a stock\n")
	fmt.Fprintf(os.Stderr, "  report [date]                  Print the sector report (latest without date)\n")
	fmt.Fprintf(os.Stderr, "  tasks                          List scheduler tasks\n")
	fmt.Fprintf(os.Stderr, "  logs <task_id>                 List a task's execution logs\n")
	fmt.Fprintf(os.Stderr, "  monitor status|start|stop|signals\n")
	fmt.Fprintf(os.Stderr, "\n")
}

func main() {
	flag.Usage = usage

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fail("loading config: %v", err)
	}
	logger := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(logger)

	client := stockapi.NewClient(cfg.Backend.BaseURL,
		stockapi.WithTimeout(time.Duration(cfg.Backend.TimeoutSeconds)*time.Second),
		stockapi.WithRetries(cfg.Backend.MaxRetries, time.Second),
		stockapi.WithRateLimit(cfg.Backend.RateLimitPerMin),
		stockapi.WithLogger(logger),
	)

	ctx := context.Background()

	switch os.Args[1] {
	case "version":
		fmt.Printf("hotboard-cli %s\n", version)

	case "boards":
		runBoards(ctx, client, cfg, os.Args[2:])

	case "detail":
		code := requireArg(os.Args[2:], "board_code")
		runDetail(ctx, client, code)

	case "analyze":
		code := requireArg(os.Args[2:], "stock_code")
		runAnalyze(ctx, client, code)

	case "history":
		code := requireArg(os.Args[2:], "stock_code")
		runHistory(ctx, client, code, os.Args[3:])

	case "report":
		date := ""
		if len(os.Args) > 2 {
			date = os.Args[2]
		}
		runReport(ctx, client, date)

	case "tasks":
		runTasks(ctx, client, os.Args[2:])

	case "logs":
		idArg := requireArg(os.Args[2:], "task_id")
		id, err := strconv.ParseInt(idArg, 10, 64)
		if err != nil {
			fail("invalid task_id %q", idArg)
		}
		runLogs(ctx, client, id)

	case "monitor":
		sub := requireArg(os.Args[2:], "status|start|stop|signals")
		runMonitor(ctx, client, cfg, sub)

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func requireArg(args []string, name string) string {
	if len(args) < 1 || args[0] == "" {
		fail("missing required argument <%s>", name)
	}
	return args[0]
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func runBoards(ctx context.Context, client *stockapi.Client, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("boards", flag.ExitOnError)
	schemeName := fs.String("scheme", cfg.Console.DefaultScheme, "color scheme: change, flow or composite")
	alpha := fs.Float64("alpha", cfg.Console.DefaultAlpha, "composite blend weight in [0,1]")
	category := fs.String("category", cfg.Console.DefaultCategory, "category filter: all, industry, concept, regulatory or other")
	fs.Parse(args)

	cat, ok := board.ParseCategory(*category)
	if !ok {
		fail("unknown category %q", *category)
	}
	known := false
	for _, n := range heatmap.SchemeNames() {
		if n == *schemeName {
			known = true
		}
	}
	if !known {
		fail("unknown scheme %q", *schemeName)
	}

	v := view.LoadHotboard(ctx, client, heatmap.MustScheme(*schemeName), *alpha, cat)
	switch v.Phase {
	case view.PhaseFailed:
		fail("%s", v.Err)
	case view.PhaseEmpty:
		fmt.Println("(no boards)")
	default:
		fmt.Printf("%s  updated %s  scheme %s\n\n", v.Date, v.UpdatedAt, v.Scheme.Name)
		fmt.Println(render.HeatGrid(v.Series, 80))
		fmt.Println()
		fmt.Println(render.BoardTable(v.Records, -1))
	}
}

func runDetail(ctx context.Context, client *stockapi.Client, code string) {
	v := view.LoadBoardDetail(ctx, client, code, 30, 10)
	if v.Phase == view.PhaseFailed {
		fail("%s", v.Err)
	}
	fmt.Printf("%s  %s\n\n", v.BoardName, v.BoardCode)
	if v.TopErr != "" {
		fmt.Printf("top stocks unavailable: %s\n", v.TopErr)
	} else if len(v.Stocks) > 0 {
		fmt.Println(render.ConstituentTable(v.Stocks))
	} else {
		fmt.Println("(no constituents)")
	}
	fmt.Println()
	if v.HistErr != "" {
		fmt.Printf("history unavailable: %s\n", v.HistErr)
	} else if len(v.Days) > 0 {
		fmt.Println(render.HistoryTable(v.Days))
	} else {
		fmt.Println("(no history)")
	}
}

func runAnalyze(ctx context.Context, client *stockapi.Client, code string) {
	v := view.RunAnalysis(ctx, client, stockapi.AnalysisRequest{StockCode: code})
	if v.Phase == view.PhaseFailed {
		fail("%s", v.Err)
	}
	rec := v.Record
	fmt.Printf("%s %s  %s  %s\n", rec.StockCode, rec.StockName, rec.Status, render.Date(rec.CreatedAt))
	if v.Verdict != nil {
		fmt.Printf("verdict: %s  score: %s  %s\n", v.Verdict.Action, render.NullableScore(v.Verdict.Score), v.Verdict.Summary)
	}
	if v.CtxErr != "" {
		fmt.Printf("market context unavailable: %s\n", v.CtxErr)
	}
	if v.Content != "" {
		fmt.Println()
		fmt.Println(v.Content)
	}
}

func runHistory(ctx context.Context, client *stockapi.Client, code string, args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	page := fs.Int("page", 1, "page number, 1-based")
	size := fs.Int("size", 10, "page size")
	fs.Parse(args)

	v := view.LoadAnalysisHistory(ctx, client, code, *page, *size)
	switch v.Phase {
	case view.PhaseFailed:
		fail("%s", v.Err)
	case view.PhaseEmpty:
		fmt.Println("(no analyses)")
	default:
		fmt.Printf("page %d/%d  total %s\n\n", v.Page, v.Pages, render.Count(v.Total))
		for _, item := range v.Items {
			fmt.Printf("  %-12s %-8s %-10s %-8s %s\n",
				render.Date(item.CreatedAt), item.StockCode, item.StockName, item.Status,
				render.NullableScore(item.Score))
		}
	}
}

func runReport(ctx context.Context, client *stockapi.Client, date string) {
	v := view.LoadReport(ctx, client, date)
	switch v.Phase {
	case view.PhaseFailed:
		fail("%s", v.Err)
	case view.PhaseEmpty:
		fmt.Println("(no report)")
	default:
		fmt.Printf("Sector report  %s\n\n", v.Date)
		fmt.Println(render.ReportBody(v.Content, v.Entries))
	}
}

func runTasks(ctx context.Context, client *stockapi.Client, args []string) {
	fs := flag.NewFlagSet("tasks", flag.ExitOnError)
	page := fs.Int("page", 1, "page number, 1-based")
	fs.Parse(args)

	v := view.LoadScheduler(ctx, client, *page, 20)
	switch v.Phase {
	case view.PhaseFailed:
		fail("%s", v.Err)
	case view.PhaseEmpty:
		fmt.Println("(no tasks)")
	default:
		fmt.Printf("page %d/%d  total %s\n\n", v.Page, v.Pages, render.Count(v.Total))
		fmt.Println(render.TaskTable(v.Tasks, -1))
	}
}

func runLogs(ctx context.Context, client *stockapi.Client, taskID int64) {
	v := view.LoadTaskLogs(ctx, client, taskID, 1, 50)
	switch v.Phase {
	case view.PhaseFailed:
		fail("%s", v.Err)
	case view.PhaseEmpty:
		fmt.Println("(no runs)")
	default:
		fmt.Println(render.LogTable(v.Items))
	}
}

func runMonitor(ctx context.Context, client *stockapi.Client, cfg *config.Config, sub string) {
	switch sub {
	case "status":
		printMonitor(view.LoadMonitor(ctx, client, cfg.Watch.SignalLimit))
	case "start":
		printMonitor(view.SetMonitorRunning(ctx, client, true, cfg.Watch.SignalLimit))
	case "stop":
		printMonitor(view.SetMonitorRunning(ctx, client, false, cfg.Watch.SignalLimit))
	case "signals":
		v := view.LoadMonitor(ctx, client, cfg.Watch.SignalLimit)
		if v.Phase == view.PhaseFailed {
			fail("%s", v.Err)
		}
		if v.SigErr != "" {
			fail("%s", v.SigErr)
		}
		if len(v.Signals) == 0 {
			fmt.Println("(no signals)")
			return
		}
		fmt.Println(render.SignalTable(v.Signals))
	default:
		fail("unknown monitor subcommand %q", sub)
	}
}

func printMonitor(v view.MonitorView) {
	if v.Phase == view.PhaseFailed {
		fail("%s", v.Err)
	}
	st := v.Status
	state := "stopped"
	if st.Running {
		state = "running"
	}
	fmt.Printf("monitor %s  since %s  interval %ds  watching %d\n",
		state, st.Since, st.IntervalSeconds, st.WatchCount)
	if v.SigErr != "" {
		fmt.Printf("signals unavailable: %s\n", v.SigErr)
	} else if len(v.Signals) > 0 {
		fmt.Println()
		fmt.Println(render.SignalTable(v.Signals))
	}
}
