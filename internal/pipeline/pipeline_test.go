package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ppiankov/precedence/internal/classify"
	"github.com/ppiankov/precedence/internal/corpus"
	"github.com/ppiankov/precedence/internal/model"
	"github.com/ppiankov/precedence/internal/sieve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `
documents:
  - id: doc1
    sentences:
      - text: "X phosphorylates Y ."
        pos: "NN VBZ NN ."
      - text: "After that , Y translocates to the nucleus ."
        pos: "IN DT , NN VBZ TO DT NN ."
mentions:
  - {id: x, label: Gene_or_gene_product, document: doc1, sentence: 0, start: 0, end: 1, found_by: ner}
  - {id: y1, label: Gene_or_gene_product, document: doc1, sentence: 0, start: 2, end: 3, found_by: ner}
  - {id: y2, label: Gene_or_gene_product, document: doc1, sentence: 1, start: 3, end: 4, found_by: ner}
  - id: phos
    label: Phosphorylation
    document: doc1
    sentence: 0
    start: 1
    end: 3
    trigger: 1
    found_by: phospho_rule
    arguments:
      theme: [y1]
  - id: trans
    label: Translocation
    document: doc1
    sentence: 1
    start: 3
    end: 5
    trigger: 4
    found_by: transloc_rule
    arguments:
      theme: [y2]
annotations:
  - {e1: phos, e2: trans, label: E1 precedes E2}
`

func load(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.Parse("fixture", []byte(fixture))
	require.NoError(t, err)
	return c
}

func TestApplySieves(t *testing.T) {
	c := load(t)
	p := NewPipeline(nil, nil, nil)

	manager, err := p.ApplySieves(c.Mentions)
	require.NoError(t, err)

	rels := manager.GetPrecedenceRelations()
	require.Len(t, rels, 1)
	assert.Equal(t, sieve.NameBetweenRbPrecedence, rels[0].FoundBy)

	phos, _ := c.Mention("phos")
	trans, _ := c.Mention("trans")
	before, err := manager.GetEER(phos)
	require.NoError(t, err)
	after, err := manager.GetEER(trans)
	require.NoError(t, err)
	assert.True(t, manager.HasRelation(before.Hash(), after.Hash()))

	// y1 and y2 collapse into one EER
	assert.Len(t, manager.EERs(), 4)
}

func TestApplySieves_RejectsMalformedMentions(t *testing.T) {
	c := load(t)
	trans, _ := c.Mention("trans")
	delete(trans.Arguments, model.RoleTheme)

	_, err := NewPipeline(nil, nil, nil).ApplySieves(c.Mentions)

	var missing *model.MissingArgumentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "trans", missing.MentionID)
}

func cyclicRegulations() []*model.Mention {
	g := &model.Mention{ID: "g", Label: "Gene_or_gene_product", Text: "G", Trigger: -1}
	a := &model.Mention{ID: "a", Label: "Positive_regulation", Trigger: -1}
	b := &model.Mention{ID: "b", Label: "Positive_regulation", Trigger: -1}
	a.Arguments = map[string][]*model.Mention{model.RoleController: {g}, model.RoleControlled: {b}}
	b.Arguments = map[string][]*model.Mention{model.RoleController: {g}, model.RoleControlled: {a}}
	return []*model.Mention{g, a, b}
}

func TestApplySieves_RejectsCyclicArguments(t *testing.T) {
	_, err := NewPipeline(nil, nil, nil).ApplySieves(cyclicRegulations())

	var cyclic *model.CyclicArgumentError
	require.ErrorAs(t, err, &cyclic)
}

func TestApplyEachSieve_RejectsCyclicArguments(t *testing.T) {
	managers, err := NewPipeline(nil, nil, nil).ApplyEachSieve(context.Background(), cyclicRegulations())

	var cyclic *model.CyclicArgumentError
	require.ErrorAs(t, err, &cyclic)
	assert.Nil(t, managers)
}

func TestApplyEachSieve(t *testing.T) {
	c := load(t)
	p := NewPipeline(nil, nil, nil)

	managers, err := p.ApplyEachSieve(context.Background(), c.Mentions)
	require.NoError(t, err)

	require.Len(t, managers, 3)
	for _, name := range []string{"withinRbPrecedence", "reichenbachPrecedence", "betweenRbPrecedence"} {
		require.Contains(t, managers, name)
	}
	assert.Empty(t, managers["withinRbPrecedence"].GetPrecedenceRelations())
	assert.Empty(t, managers["reichenbachPrecedence"].GetPrecedenceRelations())
	assert.Len(t, managers["betweenRbPrecedence"].GetPrecedenceRelations(), 1)

	// Every run owns its manager
	assert.NotSame(t, managers["withinRbPrecedence"], managers["betweenRbPrecedence"])
	assert.Len(t, managers["withinRbPrecedence"].EERs(), 4)
}

func TestApplyEachSieve_Cancelled(t *testing.T) {
	c := load(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPipeline(nil, nil, nil).ApplyEachSieve(ctx, c.Mentions)
	require.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	c := load(t)
	p := NewPipeline(nil, nil, nil)

	report, err := p.Evaluate(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, "fixture", report.Corpus)
	assert.Equal(t, 1, report.Gold)
	assert.Empty(t, report.Conflicts)

	for i := 1; i < len(report.Rows); i++ {
		assert.LessOrEqual(t, report.Rows[i-1].Precision, report.Rows[i].Precision)
	}

	byKey := make(map[string]model.Row)
	for _, r := range report.Rows {
		byKey[r.Sieve+"|"+r.Rule] = r
	}

	between := byKey["betweenRbPrecedence|"+model.AllRules]
	assert.Equal(t, 1, between.TP)
	assert.Equal(t, 0, between.FP)
	assert.Equal(t, 0, between.FN)
	assert.InDelta(t, 1.0, between.Precision, 1e-3)
	assert.InDelta(t, 1.0, between.F1, 1e-3)

	rule := byKey["betweenRbPrecedence|betweenRbPrecedence/between_after_that"]
	assert.Equal(t, 1, rule.TP)

	within := byKey["withinRbPrecedence|"+model.AllRules]
	assert.Equal(t, 0, within.TP)
	assert.Equal(t, 1, within.FN)
	assert.InDelta(t, 0.0, within.F1, 1e-9)

	full := byKey[FullPipelineName+"|"+model.AllRules]
	assert.Equal(t, 1, full.TP)

	_, ok := byKey["featureBasedClassifier|"+model.AllRules]
	assert.True(t, ok)
}

func TestEvaluate_ConflictsReported(t *testing.T) {
	c := load(t)
	m := classify.NewModel()
	m.Weights["bias"] = map[classify.Label]float64{classify.LabelE2PrecedesE1: 1}

	report, err := NewPipeline(nil, m, nil).Evaluate(context.Background(), c)
	require.NoError(t, err)

	require.Len(t, report.Conflicts, 1)
	assert.Contains(t, report.Conflicts[0], sieve.NameFeatureBasedClassifier)

	byKey := make(map[string]model.Row)
	for _, r := range report.Rows {
		byKey[r.Sieve+"|"+r.Rule] = r
	}
	classifier := byKey["featureBasedClassifier|"+model.AllRules]
	assert.Equal(t, 0, classifier.TP)
	assert.Equal(t, 1, classifier.FP)
}

func TestRenderRelations(t *testing.T) {
	c := load(t)
	manager, err := NewPipeline(nil, nil, nil).ApplySieves(c.Mentions)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderRelations(&buf, manager))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	fields := strings.Split(lines[1], "\t")
	require.Len(t, fields, 7)
	assert.Equal(t, "Phosphorylation", fields[1])
	assert.Equal(t, "Translocation", fields[3])
	assert.Equal(t, "between_after_that", fields[5])
}
