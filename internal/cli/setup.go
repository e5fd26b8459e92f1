package cli

import (
	"fmt"

	"github.com/ppiankov/precedence/internal/cache"
	"github.com/ppiankov/precedence/internal/classify"
	"github.com/ppiankov/precedence/internal/corpus"
	"github.com/ppiankov/precedence/internal/model"
	"go.uber.org/zap"
)

var noCache bool

// session bundles what every corpus command needs
type session struct {
	cfg    *model.Config
	logger *zap.Logger
	loader *corpus.Loader
}

func newSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	logger, err := newLogger(verbose || cfg.Output.Verbose)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return &session{
		cfg:    cfg,
		logger: logger,
		loader: corpus.NewLoader(c, logger.Named("corpus")),
	}, nil
}

// classifier loads the configured model, or returns nil when none is set
func (r *session) classifier() (*classify.Model, error) {
	path := r.cfg.Classifier.ModelPath
	if path == "" {
		r.logger.Debug("no classifier model configured")
		return nil, nil
	}
	m, err := classify.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}
	r.logger.Debug("loaded classifier",
		zap.String("path", path),
		zap.Int("features", len(m.Weights)),
		zap.Int("trained_on", m.TrainedOn))
	return m, nil
}

func (r *session) close() {
	_ = r.logger.Sync()
}
