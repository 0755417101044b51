package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/textsieve/textsieve/internal/model"
)

// Runner processes one collection source end to end
type Runner interface {
	RunSource(ctx context.Context, src string) (*model.Report, error)
}

// SourceJob is a single collection source queued on the pool
type SourceJob struct {
	Source  string
	Runner  Runner
	Limiter *Limiter // nil = unthrottled
}

// SourceResult pairs a source with its report or failure
type SourceResult struct {
	Source string
	Report *model.Report
	Error  error
}

// Err implements Result
func (r *SourceResult) Err() error {
	return r.Error
}

// Execute runs the pipeline over the job's source, waiting on the host
// limiter first for URL sources
func (j *SourceJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Source); err != nil {
			return &SourceResult{Source: j.Source, Error: fmt.Errorf("rate limit wait: %w", err)}
		}
	}
	report, err := j.Runner.RunSource(ctx, j.Source)
	return &SourceResult{Source: j.Source, Report: report, Error: err}
}

// BatchProcessor fans a list of collection sources out over a worker pool.
// One failed source does not stop the rest of the batch.
type BatchProcessor struct {
	runner      Runner
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor backed by the given runner
func NewBatchProcessor(runner Runner, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
		limiter:     NewLimiter(requestsPerSecond, burst),
	}
}

// ProcessSources runs every source concurrently and returns one result per
// source. Result order follows completion, not submission.
func (b *BatchProcessor) ProcessSources(ctx context.Context, sources []string) []*SourceResult {
	pool := NewPool(b.concurrency)
	pool.Start()

	for _, src := range sources {
		if ctx.Err() != nil {
			break
		}
		pool.Submit(&SourceJob{Source: src, Runner: b.runner, Limiter: b.limiter})
	}

	results := make([]*SourceResult, 0, len(sources))
	for _, r := range pool.Wait() {
		if sr, ok := r.(*SourceResult); ok {
			results = append(results, sr)
		}
	}
	return results
}

// ProcessManifest reads a manifest file of sources and processes them
func (b *BatchProcessor) ProcessManifest(ctx context.Context, path string) ([]*SourceResult, error) {
	sources, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources found in %s", path)
	}
	return b.ProcessSources(ctx, sources), nil
}

// ReadManifest parses a manifest: one source per line, file path or URL,
// blank lines and #-comments skipped, duplicates dropped keeping first
func ReadManifest(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	var sources []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		sources = append(sources, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return sources, nil
}
