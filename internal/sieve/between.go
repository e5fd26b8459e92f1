package sieve

import (
	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/model"
	"go.uber.org/zap"
)

// BetweenRbPrecedence orders the main events of adjacent sentences when the
// second sentence opens with a discourse cue ("Subsequently, ...").
func (s *Sieves) BetweenRbPrecedence() Sieve {
	return Sieve{
		Name: NameBetweenRbPrecedence,
		Apply: func(mentions []*model.Mention, manager *assembly.Manager) (*assembly.Manager, error) {
			var cands []candidate
			keys, groups := groupBySentence(events(mentions))
			for _, k := range keys {
				next, ok := groups[sentenceKey{doc: k.doc, sentence: k.sentence + 1}]
				if !ok {
					continue
				}
				sent, ok := next[0].SentenceOf()
				if !ok {
					continue
				}
				match, ok := s.cues.Discourse(sent.Words, s.rules.CueWindow)
				if !ok {
					continue
				}
				cueEnd := match.Index + len(match.Cue.Phrase)

				for _, a := range topLevel(groups[k]) {
					for _, b := range topLevel(next) {
						if b.Start < cueEnd || related(a, b) {
							continue
						}
						if c, ok := orient(a, b, match.Cue.Direction, "between_"+match.Cue.Name); ok {
							cands = append(cands, c)
						}
					}
				}
			}

			manager, added, err := commit(manager, NameBetweenRbPrecedence, cands)
			if err != nil {
				return manager, err
			}
			s.logger.Debug("between-sentence precedence",
				zap.Int("candidates", len(cands)),
				zap.Int("added", added))
			return manager, nil
		},
	}
}
