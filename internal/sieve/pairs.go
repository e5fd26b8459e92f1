package sieve

import (
	"sort"

	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/extract"
	"github.com/ppiankov/precedence/internal/model"
)

// candidate is a precedence finding not yet committed to the manager
type candidate struct {
	before *model.Mention
	after  *model.Mention
	rule   string
}

// orient turns a textual pair and a direction into a candidate
func orient(earlier, later *model.Mention, dir extract.Direction, rule string) (candidate, bool) {
	switch dir {
	case extract.Forward:
		return candidate{before: earlier, after: later, rule: rule}, true
	case extract.Backward:
		return candidate{before: later, after: earlier, rule: rule}, true
	default:
		return candidate{}, false
	}
}

// events returns the distinct event mentions sorted by text position
func events(mentions []*model.Mention) []*model.Mention {
	seen := make(map[string]bool)
	var out []*model.Mention
	for _, m := range mentions {
		if !m.IsEvent() || seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DocumentID() != b.DocumentID() {
			return a.DocumentID() < b.DocumentID()
		}
		return a.Before(b)
	})
	return out
}

// sentenceKey groups mentions by document and sentence
type sentenceKey struct {
	doc      string
	sentence int
}

// groupBySentence returns the sentence keys in text order and the events of each
func groupBySentence(evs []*model.Mention) ([]sentenceKey, map[sentenceKey][]*model.Mention) {
	var keys []sentenceKey
	groups := make(map[sentenceKey][]*model.Mention)
	for _, e := range evs {
		k := sentenceKey{doc: e.DocumentID(), sentence: e.Sentence}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], e)
	}
	return keys, groups
}

// related reports whether one event is nested in the other or they share tokens
func related(a, b *model.Mention) bool {
	return a.ID == b.ID || a.Overlaps(b) || a.Contains(b) || b.Contains(a)
}

// topLevel drops events that are arguments of another event in the same group
func topLevel(group []*model.Mention) []*model.Mention {
	var out []*model.Mention
	for _, e := range group {
		nested := false
		for _, other := range group {
			if other.ID != e.ID && other.Contains(e) {
				nested = true
				break
			}
		}
		if !nested {
			out = append(out, e)
		}
	}
	return out
}

// evidenceMention records which rule linked two events
func evidenceMention(c candidate) *model.Mention {
	first, second := c.before, c.after
	if second.Before(first) {
		first, second = second, first
	}
	end := second.End
	if first.Sentence != second.Sentence {
		end = first.End
	}
	return &model.Mention{
		ID:       c.rule + ":" + c.before.ID + ">" + c.after.ID,
		Label:    model.LabelPrecedence,
		Document: first.Document,
		Sentence: first.Sentence,
		Start:    first.Start,
		End:      end,
		Trigger:  -1,
		Arguments: map[string][]*model.Mention{
			model.RoleBefore: {c.before},
			model.RoleAfter:  {c.after},
		},
		FoundBy: c.rule,
	}
}

// commit resolves every candidate to EERs and only then adds the relations,
// so a failure leaves the manager untouched by this sieve.
func commit(manager *assembly.Manager, sieveName string, cands []candidate) (*assembly.Manager, int, error) {
	rels := make([]assembly.PrecedenceRelation, 0, len(cands))
	for _, c := range cands {
		before, err := manager.GetEER(c.before)
		if err != nil {
			return manager, 0, err
		}
		after, err := manager.GetEER(c.after)
		if err != nil {
			return manager, 0, err
		}
		if before == after {
			continue
		}
		rels = append(rels, assembly.PrecedenceRelation{
			Before:   before.Hash(),
			After:    after.Hash(),
			Evidence: []*model.Mention{evidenceMention(c)},
			FoundBy:  sieveName,
		})
	}

	added := 0
	for _, r := range rels {
		if manager.AddRelation(r) {
			added++
		}
	}
	return manager, added, nil
}
