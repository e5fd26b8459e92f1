package sieve

import (
	"fmt"
	"strings"

	"github.com/ppiankov/precedence/internal/model"
)

func sentence(words, tags string) model.Sentence {
	return model.Sentence{Words: strings.Fields(words), Tags: strings.Fields(tags)}
}

func document(id string, sentences ...model.Sentence) *model.Document {
	return &model.Document{ID: id, Sentences: sentences}
}

func gene(id string, doc *model.Document, sent, start int) *model.Mention {
	return &model.Mention{
		ID:       id,
		Label:    "Gene_or_gene_product",
		Document: doc,
		Sentence: sent,
		Start:    start,
		End:      start + 1,
		Trigger:  -1,
		FoundBy:  "ner",
	}
}

func event(id, label string, doc *model.Document, sent, start, end, trigger int, theme *model.Mention) *model.Mention {
	return &model.Mention{
		ID:        id,
		Label:     label,
		Document:  doc,
		Sentence:  sent,
		Start:     start,
		End:       end,
		Trigger:   trigger,
		Arguments: map[string][]*model.Mention{model.RoleTheme: {theme}},
		FoundBy:   "event_rule",
	}
}

// withinFixture: "A had phosphorylated B , then B translocated ."
// Both the "then" cue and past perfect before past simple order e1 < e2.
func withinFixture() (e1, e2 *model.Mention, mentions []*model.Mention) {
	d := document("doc-within",
		sentence("A had phosphorylated B , then B translocated .", "NN VBD VBN NN , RB NN VBD ."))
	b1 := gene("b1", d, 0, 3)
	b2 := gene("b2", d, 0, 6)
	e1 = event("e1", "Phosphorylation", d, 0, 2, 4, 2, b1)
	e2 = event("e2", "Translocation", d, 0, 6, 8, 7, b2)
	return e1, e2, []*model.Mention{b1, e1, b2, e2}
}

// followedByFixture: "A phosphorylates B , followed by B translocation ."
func followedByFixture() (e1, e2 *model.Mention, mentions []*model.Mention) {
	d := document("doc-followed",
		sentence("A phosphorylates B , followed by B translocation .", "NN VBZ NN , VBN IN NN NN ."))
	b1 := gene("b1", d, 0, 2)
	b2 := gene("b2", d, 0, 6)
	e1 = event("e1", "Phosphorylation", d, 0, 1, 3, 1, b1)
	e2 = event("e2", "Translocation", d, 0, 6, 8, 7, b2)
	return e1, e2, []*model.Mention{b1, e1, b2, e2}
}

// leadingFixture: "After A phosphorylates B , B translocates ."
func leadingFixture() (e1, e2 *model.Mention, mentions []*model.Mention) {
	d := document("doc-leading",
		sentence("After A phosphorylates B , B translocates .", "IN NN VBZ NN , NN VBZ ."))
	b1 := gene("b1", d, 0, 3)
	b2 := gene("b2", d, 0, 5)
	e1 = event("e1", "Phosphorylation", d, 0, 2, 4, 2, b1)
	e2 = event("e2", "Translocation", d, 0, 5, 7, 6, b2)
	return e1, e2, []*model.Mention{b1, e1, b2, e2}
}

// reichenbachFixture: "A had phosphorylated B ." "B translocated ."
func reichenbachFixture() (e1, e2 *model.Mention, mentions []*model.Mention) {
	d := document("doc-tense",
		sentence("A had phosphorylated B .", "NN VBD VBN NN ."),
		sentence("B translocated .", "NN VBD ."))
	b1 := gene("b1", d, 0, 3)
	b2 := gene("b2", d, 1, 0)
	e1 = event("e1", "Phosphorylation", d, 0, 2, 4, 2, b1)
	e2 = event("e2", "Translocation", d, 1, 0, 2, 1, b2)
	return e1, e2, []*model.Mention{b1, e1, b2, e2}
}

// betweenFixture: "X phosphorylates Y ." "After that , Y translocates to the nucleus ."
func betweenFixture() (e1, e2 *model.Mention, mentions []*model.Mention) {
	d := document("doc-between",
		sentence("X phosphorylates Y .", "NN VBZ NN ."),
		sentence("After that , Y translocates to the nucleus .", "IN DT , NN VBZ TO DT NN ."))
	y1 := gene("y1", d, 0, 2)
	y2 := gene("y2", d, 1, 3)
	e1 = event("e1", "Phosphorylation", d, 0, 1, 3, 1, y1)
	e2 = event("e2", "Translocation", d, 1, 3, 5, 4, y2)
	return e1, e2, []*model.Mention{y1, e1, y2, e2}
}

// chain builds n single-event sentences, each opening with "Then" after the first
func chain(n int) []*model.Mention {
	var sents []model.Sentence
	for i := 0; i < n; i++ {
		if i == 0 {
			sents = append(sents, sentence(fmt.Sprintf("P%d binds .", i), "NN VBZ ."))
			continue
		}
		sents = append(sents, sentence(fmt.Sprintf("Then P%d binds .", i), "RB NN VBZ ."))
	}
	d := document("doc-chain", sents...)

	var out []*model.Mention
	for i := 0; i < n; i++ {
		start := 0
		if i > 0 {
			start = 1
		}
		p := gene(fmt.Sprintf("p%d", i), d, i, start)
		out = append(out, p, event(fmt.Sprintf("bind%d", i), "Binding", d, i, start, start+2, start+1, p))
	}
	return out
}

// leadingNonEventFixture: "Upon stimulation , A phosphorylates B , C binds D ."
// The clause-initial cue governs "stimulation", which is not an event.
func leadingNonEventFixture() []*model.Mention {
	d := document("doc-leading-scope",
		sentence("Upon stimulation , A phosphorylates B , C binds D .", "IN NN , NN VBZ NN , NN VBZ NN ."))
	b := gene("b", d, 0, 5)
	dd := gene("d", d, 0, 9)
	return []*model.Mention{
		b, event("e1", "Phosphorylation", d, 0, 4, 6, 4, b),
		dd, event("e2", "Binding", d, 0, 8, 10, 8, dd),
	}
}

// leadingChainFixture: "After A phosphorylates B , C binds D , E translocates ."
// Only the first event falls under "After".
func leadingChainFixture() (e1, e2 *model.Mention, mentions []*model.Mention) {
	d := document("doc-leading-chain",
		sentence("After A phosphorylates B , C binds D , E translocates .", "IN NN VBZ NN , NN VBZ NN , NN VBZ ."))
	b := gene("b", d, 0, 3)
	dd := gene("d", d, 0, 7)
	e := gene("e", d, 0, 9)
	e1 = event("e1", "Phosphorylation", d, 0, 2, 4, 2, b)
	e2 = event("e2", "Binding", d, 0, 6, 8, 6, dd)
	e3 := event("e3", "Translocation", d, 0, 9, 11, 10, e)
	return e1, e2, []*model.Mention{b, e1, dd, e2, e, e3}
}
