// Test program to demonstrate the rule-based precedence sieves
// Each sample sentence pair is run through every strategy in isolation
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/precedence/internal/corpus"
	"github.com/ppiankov/precedence/internal/pipeline"
)

type sample struct {
	name     string
	text     []string
	pos      []string
	triggers [2][2]int // sentence, token of each event trigger
}

var samples = []sample{
	{
		name:     "within-sentence cue",
		text:     []string{"MEK phosphorylates ERK , followed by ERK translocation ."},
		pos:      []string{"NN VBZ NN , VBN IN NN NN ."},
		triggers: [2][2]int{{0, 1}, {0, 7}},
	},
	{
		name:     "tense and aspect",
		text:     []string{"MEK had phosphorylated ERK .", "ERK translocated ."},
		pos:      []string{"NN VBD VBN NN .", "NN VBD ."},
		triggers: [2][2]int{{0, 2}, {1, 1}},
	},
	{
		name:     "discourse cue",
		text:     []string{"MEK phosphorylates ERK .", "After that , ERK translocates ."},
		pos:      []string{"NN VBZ NN .", "IN DT , NN VBZ ."},
		triggers: [2][2]int{{0, 1}, {1, 4}},
	},
}

func main() {
	fmt.Println("=== Precedence Sieve Demo ===")
	fmt.Println()

	p := pipeline.NewPipeline(nil, nil, nil)
	for _, s := range samples {
		fmt.Printf("Sample: %s\n", s.name)
		fmt.Println(strings.Repeat("-", 60))
		for _, line := range s.text {
			fmt.Printf("  %s\n", line)
		}

		c, err := corpus.Build(s.name, s.file())
		if err != nil {
			fmt.Printf("  Corpus error: %v\n\n", err)
			continue
		}

		managers, err := p.ApplyEachSieve(context.Background(), c.Mentions)
		if err != nil {
			fmt.Printf("  Sieve error: %v\n\n", err)
			continue
		}
		for _, name := range pipeline.Strategies {
			rels := managers[name].GetPrecedenceRelations()
			if len(rels) == 0 {
				fmt.Printf("  %-22s -\n", name)
				continue
			}
			for _, r := range rels {
				fmt.Printf("  %-22s ✓ %s\n", name, r.RuleFoundBy())
			}
		}

		full, err := p.ApplySieves(c.Mentions)
		if err != nil {
			fmt.Printf("  Pipeline error: %v\n\n", err)
			continue
		}
		fmt.Printf("  %-22s %d relation(s)\n", pipeline.FullPipelineName, len(full.GetPrecedenceRelations()))
		if err := pipeline.RenderRelations(os.Stdout, full); err != nil {
			fmt.Printf("  Render error: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("=== Demo Complete ===")
}

// file builds a corpus with a gene mention right after each trigger and one
// event per trigger
func (s sample) file() *corpus.File {
	doc := corpus.DocumentRecord{ID: s.name}
	for i, text := range s.text {
		doc.Sentences = append(doc.Sentences, corpus.SentenceRecord{Text: text, POS: s.pos[i]})
	}
	f := &corpus.File{Documents: []corpus.DocumentRecord{doc}}

	labels := []string{"Phosphorylation", "Translocation"}
	for i, t := range s.triggers {
		sent, tok := t[0], t[1]
		words := strings.Fields(s.text[sent])
		themeTok := tok + 1
		if themeTok >= len(words) || words[themeTok] == "." {
			themeTok = tok - 1
		}
		start, end := tok, themeTok+1
		if themeTok < tok {
			start, end = themeTok, tok+1
		}
		trigger := tok
		gene := fmt.Sprintf("g%d", i)
		f.Mentions = append(f.Mentions,
			corpus.MentionRecord{
				ID: gene, Label: "Gene_or_gene_product", Document: s.name,
				Sentence: sent, Start: themeTok, End: themeTok + 1, FoundBy: "demo",
			},
			corpus.MentionRecord{
				ID: fmt.Sprintf("e%d", i), Label: labels[i], Document: s.name,
				Sentence: sent, Start: start, End: end, Trigger: &trigger, FoundBy: "demo",
				Arguments: map[string][]string{"theme": {gene}},
			})
	}
	return f
}
