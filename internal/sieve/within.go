package sieve

import (
	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/model"
	"go.uber.org/zap"
)

// WithinRbPrecedence orders events of the same sentence connected by a
// lexical cue between them ("X, followed by Y") or a clause-initial cue
// ("After X, Y").
func (s *Sieves) WithinRbPrecedence() Sieve {
	return Sieve{
		Name: NameWithinRbPrecedence,
		Apply: func(mentions []*model.Mention, manager *assembly.Manager) (*assembly.Manager, error) {
			var cands []candidate
			keys, groups := groupBySentence(events(mentions))
			for _, k := range keys {
				cands = append(cands, s.withinSentence(groups[k])...)
			}

			manager, added, err := commit(manager, NameWithinRbPrecedence, cands)
			if err != nil {
				return manager, err
			}
			s.logger.Debug("within-sentence precedence",
				zap.Int("candidates", len(cands)),
				zap.Int("added", added))
			return manager, nil
		},
	}
}

func (s *Sieves) withinSentence(group []*model.Mention) []candidate {
	var cands []candidate
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			a, b := group[i], group[j]
			if related(a, b) || intervening(group, a, b) {
				continue
			}
			sent, ok := a.SentenceOf()
			if !ok || a.End > b.Start || b.Start > len(sent.Words) {
				continue
			}

			between := sent.Words[a.End:b.Start]
			if match, ok := s.cues.Between(between); ok {
				if c, ok := orient(a, b, match.Cue.Direction, "within_"+match.Cue.Name); ok {
					cands = append(cands, c)
				}
				continue
			}

			if a.Start < 0 || !hasComma(between) || !firstInSentence(group, a) {
				continue
			}
			match, ok := s.cues.Leading(sent.Words[:a.Start])
			if !ok || hasComma(sent.Words[len(match.Cue.Phrase):a.Start]) {
				continue
			}
			if c, ok := orient(a, b, match.Cue.Direction, "within_leading_"+match.Cue.Name); ok {
				cands = append(cands, c)
			}
		}
	}
	return cands
}

// intervening reports whether another event sits entirely between a and b
func intervening(group []*model.Mention, a, b *model.Mention) bool {
	for _, e := range group {
		if e.ID == a.ID || e.ID == b.ID || a.Contains(e) || b.Contains(e) {
			continue
		}
		if e.Start >= a.End && e.End <= b.Start {
			return true
		}
	}
	return false
}

// firstInSentence reports whether no unrelated event starts before a, so a
// clause-initial cue governs it
func firstInSentence(group []*model.Mention, a *model.Mention) bool {
	for _, e := range group {
		if !related(a, e) && e.Start < a.Start {
			return false
		}
	}
	return true
}

func hasComma(words []string) bool {
	for _, w := range words {
		if w == "," || w == ";" {
			return true
		}
	}
	return false
}
