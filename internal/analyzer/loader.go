// # internal/analyzer/loader.go
package analyzer

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"depgraph/internal/shared/observability"
)

// DefaultBatchSize bounds the number of concurrent reads per loader batch.
const DefaultBatchSize = 50

// ContentProvider supplies decoded UTF-8 text for a path, or fails. Failures
// for individual paths are tolerated and never abort a run.
type ContentProvider interface {
	ReadFile(path string) (string, error)
}

// OSContentProvider reads files from the local filesystem.
type OSContentProvider struct{}

func (OSContentProvider) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loadContents fills a path->text cache in fixed-size batches with parallel
// I/O inside each batch. A batch proceeds only once every read in it has
// settled. A failed read is dropped silently: the path is simply absent from
// the cache and downstream stages treat it as having no content.
func loadContents(ctx context.Context, provider ContentProvider, files []string, batchSize int, report func(done int)) map[string]string {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	cache := make(map[string]string, len(files))
	var mu sync.Mutex

	for start := 0; start < len(files); start += batchSize {
		if ctx.Err() != nil {
			return cache
		}

		end := min(start+batchSize, len(files))
		g := new(errgroup.Group)
		for _, file := range files[start:end] {
			g.Go(func() error {
				text, err := provider.ReadFile(file)
				if err != nil {
					observability.LoadFailures.Inc()
					slog.Debug("skipping unreadable file", "path", file, "error", err)
					return nil
				}
				observability.FilesLoaded.Inc()
				mu.Lock()
				cache[file] = text
				mu.Unlock()
				return nil
			})
		}
		// Goroutines above never return an error; Wait is the batch join.
		_ = g.Wait()
		report(end)
	}

	return cache
}
