package assembly

import (
	"fmt"

	"github.com/ppiankov/precedence/internal/model"
)

// RelationKey identifies a precedence edge by direction and endpoints
type RelationKey struct {
	Before uint64
	After  uint64
}

// Reverse returns the key of the opposite edge
func (k RelationKey) Reverse() RelationKey {
	return RelationKey{Before: k.After, After: k.Before}
}

func (k RelationKey) String() string {
	return fmt.Sprintf("%016x->%016x", k.Before, k.After)
}

// PrecedenceRelation is a directed happens-before edge between two EERs
type PrecedenceRelation struct {
	Before   uint64
	After    uint64
	Evidence []*model.Mention
	FoundBy  string
}

// Key returns the (before, after) projection used for equivalence
func (r PrecedenceRelation) Key() RelationKey {
	return RelationKey{Before: r.Before, After: r.After}
}

// IsEquivalentTo compares endpoints and direction only; evidence and
// provenance are ignored.
func (r PrecedenceRelation) IsEquivalentTo(other PrecedenceRelation) bool {
	return r.Before == other.Before && r.After == other.After
}

// RuleFoundBy returns the extraction rule of the first evidence mention
func (r PrecedenceRelation) RuleFoundBy() string {
	if len(r.Evidence) == 0 {
		return ""
	}
	return r.Evidence[0].FoundBy
}

func (r PrecedenceRelation) clone() PrecedenceRelation {
	ev := make([]*model.Mention, len(r.Evidence))
	copy(ev, r.Evidence)
	r.Evidence = ev
	return r
}

// Conflict records an edge rejected because the reverse edge was already asserted
type Conflict struct {
	Existing        RelationKey
	ExistingFoundBy string
	Rejected        RelationKey
	RejectedFoundBy string
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s (%s) rejected: %s already asserted by %s",
		c.Rejected, c.RejectedFoundBy, c.Existing, c.ExistingFoundBy)
}
