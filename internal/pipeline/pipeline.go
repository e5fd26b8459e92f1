// Package pipeline runs sieve chains over mentions and evaluates them
// against gold annotations.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/classify"
	"github.com/ppiankov/precedence/internal/corpus"
	"github.com/ppiankov/precedence/internal/model"
	"github.com/ppiankov/precedence/internal/score"
	"github.com/ppiankov/precedence/internal/sieve"
	"github.com/ppiankov/precedence/internal/worker"
	"go.uber.org/zap"
)

// FullPipelineName is the report name of dedup followed by every strategy
const FullPipelineName = "combined"

// Strategies are the rule-based pipelines returned by ApplyEachSieve
var Strategies = []string{
	sieve.NameWithinRbPrecedence,
	sieve.NameReichenbachPrecedence,
	sieve.NameBetweenRbPrecedence,
}

// Pipeline orchestrates assembly and evaluation
type Pipeline struct {
	sieves *sieve.Sieves
	scorer *score.Scorer
	batch  *worker.BatchProcessor
	logger *zap.Logger
}

// NewPipeline creates a pipeline. A nil classifier disables classifier
// predictions; a nil logger discards logs.
func NewPipeline(cfg *model.Config, classifier *classify.Model, logger *zap.Logger) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Concurrency.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Pipeline{
		sieves: sieve.New(cfg, classifier, logger.Named("sieve")),
		scorer: score.NewScorer(cfg.Evaluation.Smoothing),
		batch:  worker.NewBatchProcessor(workers),
		logger: logger,
	}
}

// validate rejects malformed mentions before any sieve sees them; cyclic
// arguments would never terminate hashing
func validate(mentions []*model.Mention) error {
	return model.ValidateMentions(mentions)
}

// ApplySieves runs deduplication followed by every precedence strategy on a
// fresh manager
func (p *Pipeline) ApplySieves(mentions []*model.Mention) (*assembly.Manager, error) {
	if err := validate(mentions); err != nil {
		return nil, err
	}
	return p.sieves.FullPipeline().Apply(mentions, p.newManager())
}

// ApplyEachSieve runs every rule-based strategy in isolation, each after its
// own deduplication pass, and returns the managers by strategy name
func (p *Pipeline) ApplyEachSieve(ctx context.Context, mentions []*model.Mention) (map[string]*assembly.Manager, error) {
	if err := validate(mentions); err != nil {
		return nil, err
	}

	jobs := make([]*worker.PipelineJob, 0, len(Strategies))
	for _, name := range Strategies {
		job, err := p.isolatedJob(name, mentions)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return p.run(ctx, jobs)
}

// Evaluate scores each strategy alone, the classifier alone and the full
// pipeline against the corpus gold relations
func (p *Pipeline) Evaluate(ctx context.Context, c *corpus.Corpus) (*model.Report, error) {
	gold, err := c.Gold()
	if err != nil {
		return nil, fmt.Errorf("gold relations: %w", err)
	}
	if err := validate(c.Mentions); err != nil {
		return nil, err
	}

	var jobs []*worker.PipelineJob
	names := append(append([]string(nil), Strategies...), sieve.NameFeatureBasedClassifier)
	for _, name := range names {
		job, err := p.isolatedJob(name, c.Mentions)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	full := p.sieves.FullPipeline()
	jobs = append(jobs, &worker.PipelineJob{
		Name: FullPipelineName,
		Run: func(context.Context) (*assembly.Manager, error) {
			return full.Apply(c.Mentions, p.newManager())
		},
	})

	start := time.Now()
	managers, err := p.run(ctx, jobs)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		Corpus:      c.Name,
		GeneratedAt: time.Now().UTC(),
		Gold:        len(gold),
	}
	for _, job := range jobs {
		predicted := managers[job.Name].GetPrecedenceRelations()
		report.Rows = append(report.Rows, p.scorer.Rows(job.Name, gold, predicted)...)
	}
	score.SortByPrecision(report.Rows)

	for _, conflict := range managers[FullPipelineName].Conflicts() {
		report.Conflicts = append(report.Conflicts, conflict.String())
	}

	p.logger.Info("evaluation complete",
		zap.String("corpus", c.Name),
		zap.Int("gold", len(gold)),
		zap.Int("pipelines", len(jobs)),
		zap.Int("conflicts", len(report.Conflicts)),
		zap.Duration("elapsed", time.Since(start)))
	return report, nil
}

func (p *Pipeline) isolatedJob(name string, mentions []*model.Mention) (*worker.PipelineJob, error) {
	chain, ok := p.sieves.Isolated(name)
	if !ok {
		return nil, fmt.Errorf("unknown sieve %q", name)
	}
	return &worker.PipelineJob{
		Name: name,
		Run: func(context.Context) (*assembly.Manager, error) {
			return chain.Apply(mentions, p.newManager())
		},
	}, nil
}

// run executes the jobs on the worker pool; the first failure, in name
// order, is returned
func (p *Pipeline) run(ctx context.Context, jobs []*worker.PipelineJob) (map[string]*assembly.Manager, error) {
	results := p.batch.ProcessPipelines(ctx, jobs)

	out := make(map[string]*assembly.Manager, len(results))
	for _, r := range results {
		if r.Error != nil {
			return nil, fmt.Errorf("pipeline %s: %w", r.Name, r.Error)
		}
		out[r.Name] = r.Manager
		p.logger.Debug("pipeline finished",
			zap.String("pipeline", r.Name),
			zap.Int("eers", len(r.Manager.EERs())),
			zap.Int("relations", len(r.Manager.GetPrecedenceRelations())))
	}
	if len(out) != len(jobs) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%d of %d pipelines did not report", len(jobs)-len(out), len(jobs))
	}
	return out, nil
}

func (p *Pipeline) newManager() *assembly.Manager {
	return assembly.NewManager(assembly.WithLogger(p.logger.Named("assembly")))
}
