package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "depgraph_analysis_seconds",
		Help:    "Time spent on each analysis phase.",
		Buckets: prometheus.DefBuckets,
	}, []string{"phase"})

	FilesLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "depgraph_files_loaded_total",
		Help: "Total number of file contents loaded into the cache.",
	})

	LoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "depgraph_load_failures_total",
		Help: "Total number of file reads that failed and were skipped.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "depgraph_graph_edges",
		Help: "Number of dependency links produced by the last analysis.",
	})

	CircularEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "depgraph_circular_edges",
		Help: "Number of links marked circular by the last analysis.",
	})

	UnresolvedReferences = promauto.NewCounter(prometheus.CounterOpts{
		Name: "depgraph_unresolved_references_total",
		Help: "Total number of references that could not be resolved to a file.",
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "depgraph_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	RunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "depgraph_runs_total",
		Help: "Total number of completed analysis runs.",
	})
)
