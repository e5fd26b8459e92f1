package classify

import (
	"strings"
	"testing"

	"github.com/ppiankov/precedence/internal/model"
	"github.com/stretchr/testify/assert"
)

func pairFixture() (a, b *model.Mention) {
	doc := &model.Document{ID: "d", Sentences: []model.Sentence{
		{Words: strings.Fields("A had phosphorylated B , then B translocated ."), Tags: strings.Fields("NN VBD VBN NN , RB NN VBD .")},
		{Words: strings.Fields("Subsequently B binds C ."), Tags: strings.Fields("RB NN VBZ NN .")},
	}}
	b1 := &model.Mention{ID: "b1", Label: "Gene_or_gene_product", Document: doc, Start: 3, End: 4, Trigger: -1}
	b2 := &model.Mention{ID: "b2", Label: "Gene_or_gene_product", Document: doc, Start: 6, End: 7, Trigger: -1}
	a = &model.Mention{ID: "e1", Label: "Phosphorylation", Document: doc, Start: 2, End: 4, Trigger: 2,
		Arguments: map[string][]*model.Mention{model.RoleTheme: {b1}}}
	b = &model.Mention{ID: "e2", Label: "Translocation", Document: doc, Start: 6, End: 8, Trigger: 7,
		Arguments: map[string][]*model.Mention{model.RoleTheme: {b2}}}
	return a, b
}

func TestPairFeatures_SameSentence(t *testing.T) {
	a, b := pairFixture()

	f := PairFeatures(a, b)

	assert.Contains(t, f, "bias")
	assert.Contains(t, f, "l1l2=Phosphorylation|Translocation")
	assert.Contains(t, f, "t1t2=phosphorylated|translocated")
	assert.Contains(t, f, "ta1ta2=past_perfect|past_simple")
	assert.Contains(t, f, "shared_arg")
	assert.Contains(t, f, "sdist=0")
	assert.Contains(t, f, "tdist=0-2")
	assert.Contains(t, f, "bw=then")
	assert.NotContains(t, f, "neg1")
	assert.NotContains(t, f, "hyp")
}

func TestPairFeatures_AdjacentSentences(t *testing.T) {
	a, _ := pairFixture()
	doc := a.Document
	c := &model.Mention{ID: "c", Label: "Gene_or_gene_product", Document: doc, Sentence: 1, Start: 3, End: 4, Trigger: -1}
	b := &model.Mention{ID: "e3", Label: "Binding", Document: doc, Sentence: 1, Start: 1, End: 4, Trigger: 2,
		Arguments: map[string][]*model.Mention{model.RoleTheme: {c}}, Hypothesized: true}

	f := PairFeatures(a, b)

	assert.Contains(t, f, "sdist=1")
	assert.Contains(t, f, "first2=subsequently")
	assert.Contains(t, f, "first2_2=subsequently_b")
	assert.Contains(t, f, "ta2=present_simple")
	assert.Contains(t, f, "hyp")
	assert.NotContains(t, f, "shared_arg")
	for _, feature := range f {
		assert.False(t, strings.HasPrefix(feature, "bw="), feature)
	}
}

func TestPairFeatures_NominalTrigger(t *testing.T) {
	a, b := pairFixture()
	b.Trigger = -1

	f := PairFeatures(a, b)
	assert.Contains(t, f, "ta2=none")
	assert.Contains(t, f, "t2=")
}

func TestBucket(t *testing.T) {
	tests := map[int]string{0: "0-2", 2: "0-2", 3: "3-5", 6: "6-10", 11: ">10"}
	for n, want := range tests {
		assert.Equal(t, want, bucket(n), n)
	}
}
