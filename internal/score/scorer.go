// Package score compares predicted precedence relations with gold relations.
package score

import (
	"sort"

	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/model"
)

// DefaultSmoothing keeps precision, recall and F1 defined on empty categories
const DefaultSmoothing = 1e-5

// Counts are pooled match counts
type Counts struct {
	TP int
	FP int
	FN int
}

// Metrics are micro-averaged scores
type Metrics struct {
	Counts
	Precision float64
	Recall    float64
	F1        float64
}

// Compute derives precision, recall and F1 from counts. The smoothing
// constant is added to every denominator, so empty categories score 0.
func Compute(c Counts, smoothing float64) Metrics {
	tp := float64(c.TP)
	p := tp / (tp + float64(c.FP) + smoothing)
	r := tp / (tp + float64(c.FN) + smoothing)
	return Metrics{
		Counts:    c,
		Precision: p,
		Recall:    r,
		F1:        2 * p * r / (p + r + smoothing),
	}
}

// Match counts predicted relations against gold by (before, after) only.
// A relation whose hashes have no counterpart simply does not match.
func Match(gold, predicted []assembly.PrecedenceRelation) Counts {
	goldKeys := keySet(gold)
	predKeys := keySet(predicted)

	var c Counts
	for _, p := range predicted {
		if goldKeys[p.Key()] {
			c.TP++
		} else {
			c.FP++
		}
	}
	for _, g := range gold {
		if !predKeys[g.Key()] {
			c.FN++
		}
	}
	return c
}

func keySet(rels []assembly.PrecedenceRelation) map[assembly.RelationKey]bool {
	out := make(map[assembly.RelationKey]bool, len(rels))
	for _, r := range rels {
		out[r.Key()] = true
	}
	return out
}

// Scorer scores sieve output
type Scorer struct {
	smoothing float64
}

// NewScorer creates a scorer; a non-positive smoothing uses DefaultSmoothing
func NewScorer(smoothing float64) *Scorer {
	if smoothing <= 0 {
		smoothing = DefaultSmoothing
	}
	return &Scorer{smoothing: smoothing}
}

// Score computes the aggregate metrics
func (s *Scorer) Score(gold, predicted []assembly.PrecedenceRelation) Metrics {
	return Compute(Match(gold, predicted), s.smoothing)
}

// RuleKey identifies the origin of a relation: the sieve that asserted it and
// the rule behind its first evidence mention
type RuleKey struct {
	Sieve string
	Rule  string
}

func (k RuleKey) String() string {
	return k.Sieve + "/" + k.Rule
}

// ByRule scores each origin group against the full gold set
func (s *Scorer) ByRule(gold, predicted []assembly.PrecedenceRelation) map[RuleKey]Metrics {
	groups := make(map[RuleKey][]assembly.PrecedenceRelation)
	for _, p := range predicted {
		k := RuleKey{Sieve: p.FoundBy, Rule: p.RuleFoundBy()}
		groups[k] = append(groups[k], p)
	}

	out := make(map[RuleKey]Metrics, len(groups))
	for k, rels := range groups {
		out[k] = Compute(Match(gold, rels), s.smoothing)
	}
	return out
}

// Rows returns the aggregate row and one row per origin for a named
// pipeline, sorted by ascending precision
func (s *Scorer) Rows(pipeline string, gold, predicted []assembly.PrecedenceRelation) []model.Row {
	rows := []model.Row{row(pipeline, model.AllRules, s.Score(gold, predicted))}
	for k, m := range s.ByRule(gold, predicted) {
		rows = append(rows, row(pipeline, k.String(), m))
	}
	SortByPrecision(rows)
	return rows
}

func row(sieve, rule string, m Metrics) model.Row {
	return model.Row{
		Sieve:     sieve,
		Rule:      rule,
		Precision: m.Precision,
		Recall:    m.Recall,
		F1:        m.F1,
		TP:        m.TP,
		FP:        m.FP,
		FN:        m.FN,
	}
}

// SortByPrecision orders rows by ascending precision, then sieve and rule
func SortByPrecision(rows []model.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Precision != b.Precision {
			return a.Precision < b.Precision
		}
		if a.Sieve != b.Sieve {
			return a.Sieve < b.Sieve
		}
		return a.Rule < b.Rule
	})
}
