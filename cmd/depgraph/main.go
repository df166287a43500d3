// # cmd/depgraph/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"depgraph/internal/analyzer"
	"depgraph/internal/app"
	"depgraph/internal/config"
)

var (
	configPath = flag.String("config", "./depgraph.toml", "Path to config file")
	watch      = flag.Bool("watch", false, "Re-analyze on file changes")
	trend      = flag.Bool("trend", false, "Print recorded run history and exit")
	progress   = flag.Bool("progress", false, "Print analysis progress to stderr")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("depgraph v%s\n", VERSION)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	// A positional argument overrides the configured scan roots.
	if flag.NArg() > 0 {
		cfg.ScanPaths = flag.Args()
	}

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	if *trend {
		if err := a.PrintTrend(); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progressFn analyzer.ProgressFunc
	if *progress {
		progressFn = func(current, total int, phase string) {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", current, total, phase)
		}
	}

	result, err := a.Run(ctx, progressFn)
	if err != nil {
		slog.Error("analysis failed", "error", err)
		os.Exit(1)
	}
	a.PrintSummary(result)

	if !*watch {
		return
	}

	if cfg.Metrics.Addr != "" {
		server := app.NewObservabilityServer(cfg.Metrics.Addr, a)
		if err := server.Start(); err != nil {
			slog.Error("failed to start observability server", "error", err)
			os.Exit(1)
		}
		defer server.Stop(context.Background())
	}

	if err := a.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("watch mode failed", "error", err)
		os.Exit(1)
	}
}
