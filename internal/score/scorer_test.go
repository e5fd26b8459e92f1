package score

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/model"
)

func rel(before, after uint64, foundBy, rule string) assembly.PrecedenceRelation {
	return assembly.PrecedenceRelation{
		Before:   before,
		After:    after,
		FoundBy:  foundBy,
		Evidence: []*model.Mention{{ID: rule + "-ev", FoundBy: rule}},
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestScorer_Score_OneHitOneMiss(t *testing.T) {
	scorer := NewScorer(DefaultSmoothing)

	gold := []assembly.PrecedenceRelation{rel(1, 2, "gold", "annotator")}
	predicted := []assembly.PrecedenceRelation{
		rel(1, 2, "withinRbPrecedence", "within_then"),
		rel(3, 4, "withinRbPrecedence", "within_after"),
	}

	m := scorer.Score(gold, predicted)

	if m.TP != 1 || m.FP != 1 || m.FN != 0 {
		t.Fatalf("Expected tp=1 fp=1 fn=0, got tp=%d fp=%d fn=%d", m.TP, m.FP, m.FN)
	}
	if !near(m.Precision, 0.5) {
		t.Errorf("Expected precision ~0.5, got %f", m.Precision)
	}
	if !near(m.Recall, 1.0) {
		t.Errorf("Expected recall ~1.0, got %f", m.Recall)
	}
	if !near(m.F1, 0.667) {
		t.Errorf("Expected F1 ~0.667, got %f", m.F1)
	}
}

func TestScorer_Score_Empty(t *testing.T) {
	m := NewScorer(DefaultSmoothing).Score(nil, nil)

	if m.TP != 0 || m.FP != 0 || m.FN != 0 {
		t.Errorf("Expected all counts 0, got %+v", m.Counts)
	}
	for name, v := range map[string]float64{"precision": m.Precision, "recall": m.Recall, "f1": m.F1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Expected finite %s, got %f", name, v)
		}
		if !near(v, 0) {
			t.Errorf("Expected %s ~0, got %f", name, v)
		}
	}
}

func TestScorer_Score_DirectionMatters(t *testing.T) {
	gold := []assembly.PrecedenceRelation{rel(1, 2, "gold", "annotator")}
	predicted := []assembly.PrecedenceRelation{rel(2, 1, "betweenRbPrecedence", "between_then")}

	m := NewScorer(DefaultSmoothing).Score(gold, predicted)

	if m.TP != 0 || m.FP != 1 || m.FN != 1 {
		t.Errorf("Expected reversed edge to miss, got %+v", m.Counts)
	}
}

func TestScorer_Score_UnknownHashesAreMisses(t *testing.T) {
	gold := []assembly.PrecedenceRelation{rel(10, 20, "gold", "annotator")}
	predicted := []assembly.PrecedenceRelation{rel(30, 40, "reichenbachPrecedence", "reichenbach")}

	m := NewScorer(DefaultSmoothing).Score(gold, predicted)
	if m.TP != 0 || m.FP != 1 || m.FN != 1 {
		t.Errorf("Expected no matches, got %+v", m.Counts)
	}
}

func TestScorer_ByRule(t *testing.T) {
	scorer := NewScorer(DefaultSmoothing)

	gold := []assembly.PrecedenceRelation{
		rel(1, 2, "gold", "annotator"),
		rel(3, 4, "gold", "annotator"),
	}
	predicted := []assembly.PrecedenceRelation{
		rel(1, 2, "withinRbPrecedence", "within_then"),
		rel(3, 4, "withinRbPrecedence", "within_after"),
		rel(5, 6, "withinRbPrecedence", "within_after"),
	}

	byRule := scorer.ByRule(gold, predicted)
	if len(byRule) != 2 {
		t.Fatalf("Expected 2 rule groups, got %d", len(byRule))
	}

	then := byRule[RuleKey{Sieve: "withinRbPrecedence", Rule: "within_then"}]
	if then.TP != 1 || then.FP != 0 || then.FN != 1 {
		t.Errorf("within_then: expected tp=1 fp=0 fn=1, got %+v", then.Counts)
	}

	after := byRule[RuleKey{Sieve: "withinRbPrecedence", Rule: "within_after"}]
	if after.TP != 1 || after.FP != 1 || after.FN != 1 {
		t.Errorf("within_after: expected tp=1 fp=1 fn=1, got %+v", after.Counts)
	}
}

func TestScorer_Rows_SortedByPrecision(t *testing.T) {
	scorer := NewScorer(DefaultSmoothing)

	gold := []assembly.PrecedenceRelation{rel(1, 2, "gold", "annotator")}
	predicted := []assembly.PrecedenceRelation{
		rel(1, 2, "withinRbPrecedence", "within_then"),
		rel(5, 6, "withinRbPrecedence", "within_after"),
	}

	rows := scorer.Rows("withinRbPrecedence", gold, predicted)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Precision > rows[i].Precision {
			t.Errorf("Rows not ascending by precision at %d: %f > %f", i, rows[i-1].Precision, rows[i].Precision)
		}
	}

	foundAll := false
	for _, r := range rows {
		if r.Rule == model.AllRules {
			foundAll = true
			if r.TP != 1 || r.FP != 1 {
				t.Errorf("Expected aggregate tp=1 fp=1, got tp=%d fp=%d", r.TP, r.FP)
			}
		}
	}
	if !foundAll {
		t.Error("Expected an aggregate row")
	}
	if rows[0].Rule != "withinRbPrecedence/within_after" {
		t.Errorf("Expected least precise rule first, got %s", rows[0].Rule)
	}
}

func TestRenderTSV(t *testing.T) {
	rows := []model.Row{{
		Sieve: "betweenRbPrecedence", Rule: model.AllRules,
		Precision: 0.5, Recall: 1, F1: 0.6667, TP: 1, FP: 1, FN: 0,
	}}

	var buf bytes.Buffer
	if err := RenderTSV(&buf, rows); err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header and one row, got %d lines", len(lines))
	}
	if lines[0] != "sieve\trule\tprecision\trecall\tf1\ttp\tfp\tfn" {
		t.Errorf("Unexpected header %q", lines[0])
	}
	fields := strings.Split(lines[1], "\t")
	if len(fields) != 8 {
		t.Fatalf("Expected 8 columns, got %d", len(fields))
	}
	if fields[0] != "betweenRbPrecedence" || fields[1] != "**ALL**" || fields[5] != "1" || fields[7] != "0" {
		t.Errorf("Unexpected row %q", lines[1])
	}
}
