package sieve

import (
	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/classify"
	"github.com/ppiankov/precedence/internal/model"
	"go.uber.org/zap"
)

const classifierRule = "feature_classifier"

// FeatureBasedClassifier predicts precedence for event pairs with the trained
// perceptron model.
func (s *Sieves) FeatureBasedClassifier() Sieve {
	return Sieve{
		Name: NameFeatureBasedClassifier,
		Apply: func(mentions []*model.Mention, manager *assembly.Manager) (*assembly.Manager, error) {
			evs := events(mentions)

			var cands []candidate
			pairs := 0
			for i := 0; i < len(evs); i++ {
				for j := i + 1; j < len(evs); j++ {
					a, b := evs[i], evs[j]
					if b.DocumentID() != a.DocumentID() || b.Sentence-a.Sentence > s.classCfg.MaxSentenceDistance {
						break
					}
					if related(a, b) {
						continue
					}
					pairs++

					label, _ := s.classifier.Predict(classify.PairFeatures(a, b), s.classCfg.Margin)
					switch label {
					case classify.LabelE1PrecedesE2:
						cands = append(cands, candidate{before: a, after: b, rule: classifierRule})
					case classify.LabelE2PrecedesE1:
						cands = append(cands, candidate{before: b, after: a, rule: classifierRule})
					}
				}
			}

			manager, added, err := commit(manager, NameFeatureBasedClassifier, cands)
			if err != nil {
				return manager, err
			}
			s.logger.Debug("classifier precedence",
				zap.Int("pairs", pairs),
				zap.Int("candidates", len(cands)),
				zap.Int("added", added))
			return manager, nil
		},
	}
}
