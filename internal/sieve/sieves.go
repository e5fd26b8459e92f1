package sieve

import (
	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/classify"
	"github.com/ppiankov/precedence/internal/extract"
	"github.com/ppiankov/precedence/internal/model"
	"go.uber.org/zap"
)

// Sieves builds the concrete sieves from shared configuration
type Sieves struct {
	cues       *extract.CueExtractor
	rules      model.SieveConfig
	classCfg   model.ClassifierConfig
	classifier *classify.Model
	logger     *zap.Logger
}

// New creates the sieve set. A nil classifier behaves like an untrained
// model and never predicts precedence.
func New(cfg *model.Config, classifier *classify.Model, logger *zap.Logger) *Sieves {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if classifier == nil {
		classifier = classify.NewModel()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sieves{
		cues:       extract.NewCueExtractor(),
		rules:      cfg.Sieves,
		classCfg:   cfg.Classifier,
		classifier: classifier,
		logger:     logger,
	}
}

// TrackMentions is the deduplication sieve. It must run before any
// precedence sieve.
func (s *Sieves) TrackMentions() Sieve {
	return Sieve{
		Name: NameTrackMentions,
		Apply: func(mentions []*model.Mention, manager *assembly.Manager) (*assembly.Manager, error) {
			manager = manager.TrackMentions(mentions)
			s.logger.Debug("tracked mentions",
				zap.Int("mentions", len(mentions)),
				zap.Int("eers", len(manager.EERs())))
			return manager, nil
		},
	}
}

// FullPipeline is dedup followed by every precedence strategy, rules first
func (s *Sieves) FullPipeline() Pipeline {
	return Pipeline{
		s.TrackMentions(),
		s.WithinRbPrecedence(),
		s.ReichenbachPrecedence(),
		s.BetweenRbPrecedence(),
		s.FeatureBasedClassifier(),
	}
}

// Strategy returns the named precedence sieve
func (s *Sieves) Strategy(name string) (Sieve, bool) {
	switch name {
	case NameWithinRbPrecedence:
		return s.WithinRbPrecedence(), true
	case NameReichenbachPrecedence:
		return s.ReichenbachPrecedence(), true
	case NameBetweenRbPrecedence:
		return s.BetweenRbPrecedence(), true
	case NameFeatureBasedClassifier:
		return s.FeatureBasedClassifier(), true
	default:
		return Sieve{}, false
	}
}

// Isolated returns dedup followed by a single strategy
func (s *Sieves) Isolated(name string) (Pipeline, bool) {
	strategy, ok := s.Strategy(name)
	if !ok {
		return nil, false
	}
	return Pipeline{s.TrackMentions()}.AndThen(strategy), true
}
