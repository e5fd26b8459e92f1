package assembly

import "github.com/ppiankov/precedence/internal/model"

// EER (equivalence event representation) is the canonical record of one
// distinct event. Its hash never changes once created; equivalent mentions
// only extend Members.
type EER struct {
	Label string

	hash      uint64
	members   []*model.Mention
	memberIDs map[string]struct{}
}

func newEER(hash uint64, first *model.Mention) *EER {
	e := &EER{
		Label:     first.Label,
		hash:      hash,
		memberIDs: make(map[string]struct{}),
	}
	e.add(first)
	return e
}

// Hash returns the equivalence hash shared by every member
func (e *EER) Hash() uint64 {
	return e.hash
}

// add inserts a mention, returning false when it is already a member
func (e *EER) add(m *model.Mention) bool {
	if _, ok := e.memberIDs[m.ID]; ok {
		return false
	}
	e.memberIDs[m.ID] = struct{}{}
	e.members = append(e.members, m)
	return true
}

// Members returns a copy of the equivalent mentions
func (e *EER) Members() []*model.Mention {
	out := make([]*model.Mention, len(e.members))
	copy(out, e.members)
	return out
}

// Has reports whether the mention is a member
func (e *EER) Has(m *model.Mention) bool {
	_, ok := e.memberIDs[m.ID]
	return ok
}

// Size returns the number of members
func (e *EER) Size() int {
	return len(e.members)
}
