// # internal/app/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"

	"depgraph/internal/analyzer"
	"depgraph/internal/config"
	"depgraph/internal/graph"
	"depgraph/internal/history"
	"depgraph/internal/output"
	"depgraph/internal/shared/util"
	"depgraph/internal/watcher"
)

// App ties the scanner, analyzer, outputs, and history store together for
// one configured project.
type App struct {
	Config   *config.Config
	Analyzer *analyzer.Analyzer

	store   *history.Store
	watcher *watcher.Watcher

	// Watch-mode re-runs are throttled so event storms cannot stack
	// full analyses back to back.
	rerunLimiter *util.Limiter
}

// RunResult is the outcome of one analysis run.
type RunResult struct {
	Files []string
	Links []*graph.Link
	Stats analyzer.Stats
}

func New(cfg *config.Config) (*App, error) {
	a := &App{
		Config:       cfg,
		Analyzer:     analyzer.New(analyzer.WithBatchSize(cfg.Loader.BatchSize)),
		rerunLimiter: util.NewLimiter(1, 2),
	}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open history store: %w", err)
		}
		a.store = store
	}

	return a, nil
}

func (a *App) Close() error {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// Run performs one full analysis: scan, analyze, write outputs, record a
// history snapshot.
func (a *App) Run(ctx context.Context, progress analyzer.ProgressFunc) (*RunResult, error) {
	files, err := a.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	slog.Debug("scan complete", "files", len(files))

	links := a.Analyzer.Analyze(ctx, files, progress)
	stats := a.Analyzer.Stats()

	if err := a.writeOutputs(links); err != nil {
		slog.Warn("failed to write outputs", "error", err)
	}
	if err := a.saveSnapshot(stats); err != nil {
		slog.Warn("failed to record history snapshot", "error", err)
	}

	return &RunResult{Files: files, Links: links, Stats: stats}, nil
}

func (a *App) writeOutputs(links []*graph.Link) error {
	out := a.Config.Output
	if out.DOT != "" {
		if err := util.WriteStringWithDirs(out.DOT, output.DOT(links), 0o644); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
	}
	if out.TSV != "" {
		if err := util.WriteStringWithDirs(out.TSV, output.TSV(links), 0o644); err != nil {
			return fmt.Errorf("write tsv: %w", err)
		}
	}
	if out.Mermaid != "" {
		if err := util.WriteStringWithDirs(out.Mermaid, output.Mermaid(links), 0o644); err != nil {
			return fmt.Errorf("write mermaid: %w", err)
		}
	}
	return nil
}

func (a *App) saveSnapshot(stats analyzer.Stats) error {
	if a.store == nil {
		return nil
	}
	return a.store.SaveSnapshot(a.Config.History.ProjectKey, history.Snapshot{
		FileCount:          stats.Files,
		LinkCount:          stats.Links,
		ImportCount:        stats.Imports,
		CallCount:          stats.Calls,
		InheritCount:       stats.Inherits,
		CircularCount:      stats.Circular,
		BidirectionalCount: stats.Bidirectional,
		UnresolvedCount:    stats.Unresolved,
	})
}

// Watch re-runs the analysis whenever watched source files change. Each
// re-run is a fresh analysis over a fresh scan; blocks until ctx is done.
func (a *App) Watch(ctx context.Context) error {
	changes := make(chan []string, 1)
	w, err := watcher.New(a.Config.Watch.Debounce.Duration, a.Config.Exclude.Dirs, a.Config.Exclude.Files, func(changed []string) {
		select {
		case changes <- changed:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	a.watcher = w

	if err := w.Watch(a.Config.ScanPaths); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	slog.Info("watching for changes", "paths", a.Config.ScanPaths)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case changed := <-changes:
			if err := a.rerunLimiter.Wait(ctx, 1); err != nil {
				return err
			}
			slog.Info("change detected, re-analyzing", "changed", len(changed))
			result, err := a.Run(ctx, nil)
			if err != nil {
				slog.Error("re-analysis failed", "error", err)
				continue
			}
			a.PrintSummary(result)
		}
	}
}
