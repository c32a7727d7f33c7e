// Package pipeline partitions the discovered file list across worker
// goroutines and joins their results into a Forest, grounded on the
// original analyzer's thread::scope fan-out in lib.rs. golang.org/x/sync/errgroup
// replaces the scoped-thread join: Wait returns once every worker has
// finished, yielding the first worker error (no worker is cancelled),
// matching the "parse failure is all-or-nothing per run" design note.
package pipeline

import (
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/cache"
	"github.com/ara-lang/forest/internal/collector"
	"github.com/ara-lang/forest/internal/foresterr"
	"github.com/ara-lang/forest/internal/report"
)

// Orchestrator runs the parallel parse phase.
type Orchestrator struct {
	Root      string
	CacheDir  string
	Threads   int
	Collector *collector.Collector
	Builder   *cache.Builder
}

func New(root, cacheDir string, threads int, col *collector.Collector, builder *cache.Builder) *Orchestrator {
	return &Orchestrator{Root: root, CacheDir: cacheDir, Threads: threads, Collector: col, Builder: builder}
}

type workerResult struct {
	sources []ast.Source
	trees   []*ast.Tree
}

// Run creates the cache directory (if configured), discovers files,
// partitions them into min(Threads, len(files)) contiguous chunks, and
// runs one worker goroutine per chunk. If any worker returns a parse
// report, that report is returned and every other result is discarded.
func (o *Orchestrator) Run() (*ast.Forest, *report.Report, error) {
	if o.CacheDir != "" {
		if err := os.MkdirAll(o.CacheDir, 0o755); err != nil {
			return nil, nil, foresterr.Wrap(foresterr.IO, "creating cache dir "+o.CacheDir, err)
		}
	}

	files, err := o.Collector.Collect()
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return ast.NewForest(nil, nil), nil, nil
	}

	n := o.Threads
	if n <= 0 {
		n = 1
	}
	if n > len(files) {
		n = len(files)
	}
	chunks := partition(files, n)

	results := make([]workerResult, len(chunks))
	reports := make([]*report.Report, len(chunks))
	var g errgroup.Group

	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			res, rep, err := o.runChunk(chunk)
			if err != nil {
				return err
			}
			if rep != nil {
				reports[i] = rep
				return nil
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	for _, rep := range reports {
		if rep != nil {
			return nil, rep, nil
		}
	}

	var sources []ast.Source
	var trees []*ast.Tree
	for _, r := range results {
		sources = append(sources, r.sources...)
		trees = append(trees, r.trees...)
	}
	return ast.NewForest(sources, trees), nil, nil
}

func (o *Orchestrator) runChunk(chunk []collector.Discovered) (workerResult, *report.Report, error) {
	var res workerResult
	for _, file := range chunk {
		source, tree, rep, err := o.Builder.Build(file)
		if err != nil {
			return workerResult{}, nil, err
		}
		if rep != nil {
			return workerResult{}, rep, nil
		}
		res.sources = append(res.sources, source)
		res.trees = append(res.trees, tree)
	}
	return res, nil, nil
}

// partition splits files into n roughly equal contiguous chunks.
func partition(files []collector.Discovered, n int) [][]collector.Discovered {
	if n <= 1 {
		return [][]collector.Discovered{files}
	}
	chunkSize := (len(files) + n - 1) / n
	var chunks [][]collector.Discovered
	for start := 0; start < len(files); start += chunkSize {
		end := start + chunkSize
		if end > len(files) {
			end = len(files)
		}
		chunks = append(chunks, files[start:end])
	}
	return chunks
}
