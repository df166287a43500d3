// # internal/analyzer/analyzer.go
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"depgraph/internal/graph"
	"depgraph/internal/parser"
	"depgraph/internal/resolver"
	"depgraph/internal/shared/observability"
)

// ProgressFunc receives advisory progress notifications. The current value
// is non-decreasing across successive invocations within one Analyze call;
// callers must tolerate not acting on it synchronously.
type ProgressFunc func(current, total int, phase string)

// Progress phase labels.
const (
	PhaseLoading  = "Loading file contents…"
	PhaseIndexing = "Building file index…"
	PhaseCycles   = "Detecting circular dependencies…"
)

// Stats summarizes the most recent run.
type Stats struct {
	Files         int
	Links         int
	Imports       int
	Calls         int
	Inherits      int
	Circular      int
	Bidirectional int
	Unresolved    int
}

// Analyzer builds a cross-file dependency graph for a source tree. One
// analysis run owns its content cache and file index exclusively; the index
// is rebuilt every run and discarded when the run returns.
type Analyzer struct {
	provider  ContentProvider
	batchSize int
	preloaded map[string]string
	stats     Stats
	tracer    trace.Tracer
}

type Option func(*Analyzer)

// WithProvider replaces the filesystem content provider.
func WithProvider(p ContentProvider) Option {
	return func(a *Analyzer) { a.provider = p }
}

// WithBatchSize overrides the loader batch size.
func WithBatchSize(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.batchSize = n
		}
	}
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		provider:  OSContentProvider{},
		batchSize: DefaultBatchSize,
		tracer:    otel.Tracer("depgraph/analyzer"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetContents pre-seeds the content cache for the next run. A non-empty
// mapping makes Analyze skip the loader phase entirely. The seed applies to
// one run only; later runs load fresh unless re-seeded.
func (a *Analyzer) SetContents(contents map[string]string) {
	a.preloaded = contents
}

// Stats returns counters from the most recent Analyze call.
func (a *Analyzer) Stats() Stats {
	return a.stats
}

// Analyze extracts and resolves cross-file references for the given ordered
// file set and returns the resulting dependency links. Unreadable files and
// unresolvable references degrade to absence; the outcome is always a list
// of links, never a partial failure.
func (a *Analyzer) Analyze(ctx context.Context, files []string, progress ProgressFunc) []*graph.Link {
	if progress == nil {
		progress = func(int, int, string) {}
	}

	ctx, span := a.tracer.Start(ctx, "analyze")
	defer span.End()

	a.stats = Stats{Files: len(files)}
	total := len(files)

	// When the loader runs, progress counts load units then analysis units;
	// with a pre-seeded cache only analysis units are reported.
	cache := a.preloaded
	a.preloaded = nil
	grand := total
	offset := 0
	if len(cache) == 0 {
		grand = 2 * total
		start := time.Now()
		cache = loadContents(ctx, a.provider, files, a.batchSize, func(done int) {
			progress(done, grand, PhaseLoading)
		})
		observability.AnalysisDuration.WithLabelValues("load").Observe(time.Since(start).Seconds())
		offset = total
	}

	progress(offset, grand, PhaseIndexing)
	start := time.Now()
	index := resolver.BuildIndex(files)
	res := resolver.New(index)
	observability.AnalysisDuration.WithLabelValues("index").Observe(time.Since(start).Seconds())

	links := graph.NewLinkSet()
	start = time.Now()
	for i, file := range files {
		if ctx.Err() != nil {
			break
		}
		if i == 0 || i == total-1 || i%10 == 0 {
			progress(offset+i, grand, fmt.Sprintf("Analyzing imports (%d/%d)…", i+1, total))
		}
		a.analyzeFile(file, cache, res, links)
	}
	observability.AnalysisDuration.WithLabelValues("extract").Observe(time.Since(start).Seconds())

	progress(grand, grand, PhaseCycles)
	start = time.Now()
	result := links.Links()
	graph.MarkCycles(result)
	result = graph.MergeBidirectional(result)
	observability.AnalysisDuration.WithLabelValues("postprocess").Observe(time.Since(start).Seconds())

	a.finishStats(result)
	return result
}

// analyzeFile runs import, call-site, and inheritance extraction over one
// file's lines and accumulates resolved references as links. Files with no
// cached content contribute nothing.
func (a *Analyzer) analyzeFile(file string, cache map[string]string, res *resolver.Resolver, links *graph.LinkSet) {
	content, ok := cache[file]
	if !ok {
		return
	}
	lang := parser.LanguageForPath(file)
	if lang == parser.LangUnknown {
		return
	}

	for lineIdx, line := range strings.Split(content, "\n") {
		n := lineIdx + 1

		for _, imp := range parser.ParseImportLine(line, n, lang) {
			target, ok := res.ResolveModule(file, imp.Module)
			if !ok {
				a.noteUnresolved()
				continue
			}
			if target == file {
				continue
			}
			links.AddImport(file, target, imp.Symbols, imp.Line, imp.IsDefault)
		}

		for _, call := range parser.ExtractCalls(line, n) {
			target, ok := res.ResolveCall(call.Callee, cache)
			if !ok {
				continue
			}
			if target == file {
				continue
			}
			links.AddCall(file, target, parser.CalleeFunction(call.Callee), call.Line)
		}

		for _, inh := range parser.ParseInheritance(line, n, lang) {
			target, ok := res.ResolveBase(file, inh.Base)
			if !ok {
				continue
			}
			if target == file {
				continue
			}
			links.AddInherit(file, target, inh.Base, inh.Line)
		}
	}
}

func (a *Analyzer) noteUnresolved() {
	a.stats.Unresolved++
	observability.UnresolvedReferences.Inc()
}

func (a *Analyzer) finishStats(links []*graph.Link) {
	a.stats.Links = len(links)
	for _, l := range links {
		switch l.Kind {
		case graph.KindImport:
			a.stats.Imports++
		case graph.KindCall:
			a.stats.Calls++
		case graph.KindInherit:
			a.stats.Inherits++
		case graph.KindCircular:
			a.stats.Circular++
		}
		if l.Bidirectional {
			a.stats.Bidirectional++
		}
	}

	observability.GraphEdges.Set(float64(a.stats.Links))
	observability.CircularEdges.Set(float64(a.stats.Circular))
	observability.RunsTotal.Inc()
}
