package sieve

import (
	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/extract"
	"github.com/ppiankov/precedence/internal/model"
	"go.uber.org/zap"
)

// ReichenbachPrecedence orders events from the tense and aspect of their
// verbal triggers, across sentences up to the configured window.
func (s *Sieves) ReichenbachPrecedence() Sieve {
	return Sieve{
		Name: NameReichenbachPrecedence,
		Apply: func(mentions []*model.Mention, manager *assembly.Manager) (*assembly.Manager, error) {
			evs := events(mentions)

			described := make(map[string]extract.TenseAspect, len(evs))
			for _, e := range evs {
				sent, ok := e.SentenceOf()
				if !ok {
					continue
				}
				if ta, ok := extract.DetectTenseAspect(sent.Words, sent.Tags, e.Trigger); ok {
					described[e.ID] = ta
				}
			}

			var cands []candidate
			for i := 0; i < len(evs); i++ {
				a := evs[i]
				taA, ok := described[a.ID]
				if !ok {
					continue
				}
				for j := i + 1; j < len(evs); j++ {
					b := evs[j]
					if b.DocumentID() != a.DocumentID() || b.Sentence-a.Sentence > s.rules.ReichenbachWindow {
						break
					}
					taB, ok := described[b.ID]
					if !ok || related(a, b) {
						continue
					}

					dir := extract.ReichenbachOrder(taA, taB)
					rule := "reichenbach_" + taA.String() + "<" + taB.String()
					if dir == extract.Backward {
						rule = "reichenbach_" + taB.String() + "<" + taA.String()
					}
					if c, ok := orient(a, b, dir, rule); ok {
						cands = append(cands, c)
					}
				}
			}

			manager, added, err := commit(manager, NameReichenbachPrecedence, cands)
			if err != nil {
				return manager, err
			}
			s.logger.Debug("reichenbach precedence",
				zap.Int("described", len(described)),
				zap.Int("candidates", len(cands)),
				zap.Int("added", added))
			return manager, nil
		},
	}
}
