package corpus

import (
	"fmt"
	"strings"

	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/classify"
	"github.com/ppiankov/precedence/internal/model"
	"gopkg.in/yaml.v3"
)

// GoldFoundBy tags relations derived from annotations
const GoldFoundBy = "gold"

// Corpus is a resolved corpus: documents, validated mentions, annotations
type Corpus struct {
	Name        string
	Documents   []*model.Document
	Mentions    []*model.Mention
	Annotations []Annotation

	byID map[string]*model.Mention
}

// Parse decodes a YAML or JSON corpus and resolves it
func Parse(name string, data []byte) (*Corpus, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	return Build(name, &f)
}

// Build resolves argument references and validates every mention
func Build(name string, f *File) (*Corpus, error) {
	c := &Corpus{
		Name:        name,
		Annotations: f.Annotations,
		byID:        make(map[string]*model.Mention, len(f.Mentions)),
	}

	docs := make(map[string]*model.Document, len(f.Documents))
	for _, dr := range f.Documents {
		if _, dup := docs[dr.ID]; dup {
			return nil, fmt.Errorf("duplicate document %q", dr.ID)
		}
		doc := &model.Document{ID: dr.ID}
		for i, sr := range dr.Sentences {
			sent, err := buildSentence(sr)
			if err != nil {
				return nil, fmt.Errorf("document %s sentence %d: %w", dr.ID, i, err)
			}
			doc.Sentences = append(doc.Sentences, sent)
		}
		docs[dr.ID] = doc
		c.Documents = append(c.Documents, doc)
	}

	for _, mr := range f.Mentions {
		if _, dup := c.byID[mr.ID]; dup {
			return nil, fmt.Errorf("duplicate mention %q", mr.ID)
		}
		doc, ok := docs[mr.Document]
		if !ok {
			return nil, fmt.Errorf("mention %s: unknown document %q", mr.ID, mr.Document)
		}
		if mr.Sentence < 0 || mr.Sentence >= len(doc.Sentences) {
			return nil, fmt.Errorf("mention %s: sentence %d out of range", mr.ID, mr.Sentence)
		}
		if n := len(doc.Sentences[mr.Sentence].Words); mr.Start < 0 || mr.End > n || mr.Start >= mr.End {
			return nil, fmt.Errorf("mention %s: token span [%d,%d) out of range", mr.ID, mr.Start, mr.End)
		}
		trigger := -1
		if mr.Trigger != nil {
			trigger = *mr.Trigger
		}
		m := &model.Mention{
			ID:           mr.ID,
			Label:        mr.Label,
			Text:         mr.Text,
			Document:     doc,
			Sentence:     mr.Sentence,
			Start:        mr.Start,
			End:          mr.End,
			Trigger:      trigger,
			FoundBy:      mr.FoundBy,
			Negated:      mr.Negated,
			Hypothesized: mr.Hypothesized,
		}
		c.byID[m.ID] = m
		c.Mentions = append(c.Mentions, m)
	}

	for _, mr := range f.Mentions {
		if len(mr.Arguments) == 0 {
			continue
		}
		m := c.byID[mr.ID]
		m.Arguments = make(map[string][]*model.Mention, len(mr.Arguments))
		for role, ids := range mr.Arguments {
			for _, id := range ids {
				arg, ok := c.byID[id]
				if !ok {
					return nil, fmt.Errorf("mention %s: argument %s references unknown mention %q", mr.ID, role, id)
				}
				m.Arguments[role] = append(m.Arguments[role], arg)
			}
		}
	}

	if err := model.ValidateMentions(c.Mentions); err != nil {
		return nil, err
	}
	return c, nil
}

func buildSentence(sr SentenceRecord) (model.Sentence, error) {
	words, tags := sr.Words, sr.Tags
	if len(words) == 0 {
		words = strings.Fields(sr.Text)
	}
	if len(tags) == 0 {
		tags = strings.Fields(sr.POS)
	}
	if len(tags) != 0 && len(tags) != len(words) {
		return model.Sentence{}, fmt.Errorf("%d tags for %d words", len(tags), len(words))
	}
	return model.Sentence{Words: words, Tags: tags}, nil
}

// Mention looks up a mention by ID
func (c *Corpus) Mention(id string) (*model.Mention, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// annotated resolves both sides of an annotation
func (c *Corpus) annotated(a Annotation) (*model.Mention, *model.Mention, error) {
	e1, ok := c.byID[a.E1]
	if !ok {
		return nil, nil, fmt.Errorf("annotation %s/%s: unknown mention %q", a.E1, a.E2, a.E1)
	}
	e2, ok := c.byID[a.E2]
	if !ok {
		return nil, nil, fmt.Errorf("annotation %s/%s: unknown mention %q", a.E1, a.E2, a.E2)
	}
	return e1, e2, nil
}

// Gold derives precedence relations from the annotations using the same
// hashing as deduplication. Non-precedence labels are skipped; unknown labels
// fail with UnsupportedRelationLabelError.
func (c *Corpus) Gold() ([]assembly.PrecedenceRelation, error) {
	var gold []assembly.PrecedenceRelation
	index := make(map[assembly.RelationKey]int)

	for _, a := range c.Annotations {
		e1, e2, err := c.annotated(a)
		if err != nil {
			return nil, err
		}

		var before, after *model.Mention
		switch {
		case a.Label == LabelE1PrecedesE2:
			before, after = e1, e2
		case a.Label == LabelE2PrecedesE1:
			before, after = e2, e1
		case nonPrecedenceLabels[a.Label]:
			continue
		default:
			return nil, &model.UnsupportedRelationLabelError{Label: a.Label, Context: "annotation " + a.E1 + "/" + a.E2}
		}

		rel := assembly.PrecedenceRelation{
			Before:   assembly.EquivalenceHash(before),
			After:    assembly.EquivalenceHash(after),
			Evidence: []*model.Mention{before, after},
			FoundBy:  GoldFoundBy,
		}
		if rel.Before == rel.After {
			continue
		}
		if i, ok := index[rel.Key()]; ok {
			gold[i].Evidence = append(gold[i].Evidence, before, after)
			continue
		}
		index[rel.Key()] = len(gold)
		gold = append(gold, rel)
	}
	return gold, nil
}

// TrainingExamples turns annotations into classifier examples. Pairs are
// oriented by text position so features match what the classifier sieve sees.
func (c *Corpus) TrainingExamples() ([]classify.Example, error) {
	var out []classify.Example
	for _, a := range c.Annotations {
		e1, e2, err := c.annotated(a)
		if err != nil {
			return nil, err
		}

		var label classify.Label
		switch {
		case a.Label == LabelE1PrecedesE2:
			label = classify.LabelE1PrecedesE2
		case a.Label == LabelE2PrecedesE1:
			label = classify.LabelE2PrecedesE1
		case a.Label == LabelBug:
			continue
		case nonPrecedenceLabels[a.Label]:
			label = classify.LabelNone
		default:
			return nil, &model.UnsupportedRelationLabelError{Label: a.Label, Context: "annotation " + a.E1 + "/" + a.E2}
		}

		first, second := e1, e2
		if e2.Before(e1) {
			first, second = e2, e1
			switch label {
			case classify.LabelE1PrecedesE2:
				label = classify.LabelE2PrecedesE1
			case classify.LabelE2PrecedesE1:
				label = classify.LabelE1PrecedesE2
			}
		}
		out = append(out, classify.Example{Features: classify.PairFeatures(first, second), Label: label})
	}
	return out, nil
}
