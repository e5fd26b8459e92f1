package assembly

import (
	"github.com/ppiankov/precedence/internal/model"
	"go.uber.org/zap"
)

// Manager maps mentions to EERs and holds the precedence edges between them.
// One manager belongs to one pipeline run and is not safe for concurrent use.
type Manager struct {
	eers      map[uint64]*EER
	byMention map[string]*EER
	eerOrder  []uint64

	relations map[RelationKey]*PrecedenceRelation
	relOrder  []RelationKey
	conflicts []Conflict

	logger *zap.Logger
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the manager's logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates an empty manager
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		eers:      make(map[uint64]*EER),
		byMention: make(map[string]*EER),
		relations: make(map[RelationKey]*PrecedenceRelation),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TrackMentions registers mentions (and, recursively, their arguments) into
// EERs. Tracking a mention twice is a no-op.
func (m *Manager) TrackMentions(mentions []*model.Mention) *Manager {
	for _, mention := range mentions {
		m.track(mention)
	}
	return m
}

func (m *Manager) track(mention *model.Mention) {
	if _, ok := m.byMention[mention.ID]; ok {
		return
	}

	for _, args := range mention.Arguments {
		for _, a := range args {
			m.track(a)
		}
	}

	hash := EquivalenceHash(mention)
	eer, ok := m.eers[hash]
	if !ok {
		eer = newEER(hash, mention)
		m.eers[hash] = eer
		m.eerOrder = append(m.eerOrder, hash)
	} else {
		eer.add(mention)
		m.logger.Debug("merged duplicate mention",
			zap.String("mention", mention.ID),
			zap.String("label", mention.Label),
			zap.Int("members", eer.Size()))
	}
	m.byMention[mention.ID] = eer
}

// GetEER returns the EER of a tracked mention
func (m *Manager) GetEER(mention *model.Mention) (*EER, error) {
	eer, ok := m.byMention[mention.ID]
	if !ok {
		return nil, &NotTrackedError{MentionID: mention.ID}
	}
	return eer, nil
}

// EERByHash looks up an EER by its equivalence hash
func (m *Manager) EERByHash(hash uint64) (*EER, bool) {
	eer, ok := m.eers[hash]
	return eer, ok
}

// EERs returns all EERs in creation order
func (m *Manager) EERs() []*EER {
	out := make([]*EER, 0, len(m.eerOrder))
	for _, h := range m.eerOrder {
		out = append(out, m.eers[h])
	}
	return out
}

// IsTracked reports whether the mention has an EER
func (m *Manager) IsTracked(mention *model.Mention) bool {
	_, ok := m.byMention[mention.ID]
	return ok
}

// AddRelation inserts rel unless an equivalent edge exists, in which case the
// evidence is merged into the existing edge. Self-precedence is ignored and an
// edge whose reverse is already present is recorded as a conflict instead.
// It reports whether a new edge was inserted.
func (m *Manager) AddRelation(rel PrecedenceRelation) bool {
	if rel.Before == rel.After {
		m.logger.Debug("ignored self-precedence", zap.String("found_by", rel.FoundBy))
		return false
	}

	key := rel.Key()
	if existing, ok := m.relations[key]; ok {
		existing.Evidence = mergeEvidence(existing.Evidence, rel.Evidence)
		return false
	}

	if reverse, ok := m.relations[key.Reverse()]; ok {
		c := Conflict{
			Existing:        reverse.Key(),
			ExistingFoundBy: reverse.FoundBy,
			Rejected:        key,
			RejectedFoundBy: rel.FoundBy,
		}
		m.conflicts = append(m.conflicts, c)
		m.logger.Warn("precedence conflict", zap.String("conflict", c.String()))
		return false
	}

	stored := rel.clone()
	stored.Evidence = mergeEvidence(nil, rel.Evidence)
	m.relations[key] = &stored
	m.relOrder = append(m.relOrder, key)
	return true
}

// HasRelation reports whether the directed edge exists
func (m *Manager) HasRelation(before, after uint64) bool {
	_, ok := m.relations[RelationKey{Before: before, After: after}]
	return ok
}

// GetPrecedenceRelations returns a copy of all edges in insertion order
func (m *Manager) GetPrecedenceRelations() []PrecedenceRelation {
	out := make([]PrecedenceRelation, 0, len(m.relOrder))
	for _, k := range m.relOrder {
		out = append(out, m.relations[k].clone())
	}
	return out
}

// Conflicts returns the rejected reverse-direction assertions
func (m *Manager) Conflicts() []Conflict {
	out := make([]Conflict, len(m.conflicts))
	copy(out, m.conflicts)
	return out
}

// mergeEvidence appends mentions from add that dst lacks, keeping order
func mergeEvidence(dst, add []*model.Mention) []*model.Mention {
	seen := make(map[string]struct{}, len(dst)+len(add))
	for _, e := range dst {
		seen[e.ID] = struct{}{}
	}
	for _, e := range add {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		dst = append(dst, e)
	}
	return dst
}
