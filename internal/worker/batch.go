package worker

import (
	"context"
	"sort"

	"github.com/ppiankov/precedence/internal/assembly"
)

// RunFunc runs one pipeline on its own fresh manager
type RunFunc func(ctx context.Context) (*assembly.Manager, error)

// PipelineJob is a named pipeline run
type PipelineJob struct {
	Name string
	Run  RunFunc
}

// Execute runs the pipeline
func (j *PipelineJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &PipelineResult{Name: j.Name, Error: err}
	}
	manager, err := j.Run(ctx)
	return &PipelineResult{
		Name:    j.Name,
		Manager: manager,
		Error:   err,
	}
}

// PipelineResult is the outcome of a pipeline job
type PipelineResult struct {
	Name    string
	Manager *assembly.Manager
	Error   error
}

// GetError returns the error from the run
func (r *PipelineResult) GetError() error {
	return r.Error
}

// BatchProcessor runs pipelines concurrently. Runs share no state, so no
// synchronization beyond the pool is needed.
type BatchProcessor struct {
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(concurrency int) *BatchProcessor {
	return &BatchProcessor{
		concurrency: concurrency,
	}
}

// ProcessPipelines runs every job and returns the results sorted by name
func (b *BatchProcessor) ProcessPipelines(ctx context.Context, jobs []*PipelineJob) []*PipelineResult {
	if len(jobs) == 0 {
		return []*PipelineResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Submit from a separate goroutine so a full queue cannot block collection
	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Close()
	}()

	var results []Result
	for r := range pool.Results() {
		results = append(results, r)
	}
	pool.Shutdown()

	out := make([]*PipelineResult, 0, len(results))
	for _, r := range results {
		out = append(out, r.(*PipelineResult))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
