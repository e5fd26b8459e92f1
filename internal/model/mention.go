package model

import "strings"

// Sentence is one tokenized sentence with its part-of-speech tags
type Sentence struct {
	Words []string `json:"words" yaml:"words"`
	Tags  []string `json:"tags" yaml:"tags"` // Penn Treebank tags, parallel to Words
}

// Document groups the sentences mentions are anchored to
type Document struct {
	ID        string     `json:"id" yaml:"id"`
	Sentences []Sentence `json:"sentences" yaml:"sentences"`
}

// Mention is an extracted entity or event mention.
// Mentions are produced upstream; this module only reads them.
type Mention struct {
	ID           string                `json:"id" yaml:"id"`
	Label        string                `json:"label" yaml:"label"`
	Text         string                `json:"text,omitempty" yaml:"text,omitempty"`
	Document     *Document             `json:"-" yaml:"-"`
	Sentence     int                   `json:"sentence" yaml:"sentence"` // Sentence index in Document (0-based)
	Start        int                   `json:"start" yaml:"start"`       // First token (inclusive)
	End          int                   `json:"end" yaml:"end"`           // Last token (exclusive)
	Trigger      int                   `json:"trigger" yaml:"trigger"`   // Trigger token; events only
	Arguments    map[string][]*Mention `json:"-" yaml:"-"`
	FoundBy      string                `json:"found_by" yaml:"found_by"` // Extraction rule that produced the mention
	Negated      bool                  `json:"negated,omitempty" yaml:"negated,omitempty"`
	Hypothesized bool                  `json:"hypothesized,omitempty" yaml:"hypothesized,omitempty"`
}

// IsEvent reports whether the mention carries an event label
func (m *Mention) IsEvent() bool {
	_, ok := eventLabels[m.Label]
	return ok
}

// DocumentID returns the owning document ID, or "" for detached mentions
func (m *Mention) DocumentID() string {
	if m.Document == nil {
		return ""
	}
	return m.Document.ID
}

// SentenceOf returns the sentence the mention is anchored to
func (m *Mention) SentenceOf() (Sentence, bool) {
	if m.Document == nil || m.Sentence < 0 || m.Sentence >= len(m.Document.Sentences) {
		return Sentence{}, false
	}
	return m.Document.Sentences[m.Sentence], true
}

// TriggerWord returns the lowercased trigger token
func (m *Mention) TriggerWord() string {
	s, ok := m.SentenceOf()
	if !ok || m.Trigger < 0 || m.Trigger >= len(s.Words) {
		return ""
	}
	return strings.ToLower(s.Words[m.Trigger])
}

// TriggerTag returns the POS tag of the trigger token
func (m *Mention) TriggerTag() string {
	s, ok := m.SentenceOf()
	if !ok || m.Trigger < 0 || m.Trigger >= len(s.Tags) {
		return ""
	}
	return s.Tags[m.Trigger]
}

// Overlaps reports whether both mentions share at least one token
func (m *Mention) Overlaps(other *Mention) bool {
	if m.DocumentID() != other.DocumentID() || m.Sentence != other.Sentence {
		return false
	}
	return m.Start < other.End && other.Start < m.End
}

// Before reports whether m starts earlier in the text than other
func (m *Mention) Before(other *Mention) bool {
	if m.Sentence != other.Sentence {
		return m.Sentence < other.Sentence
	}
	if m.Start != other.Start {
		return m.Start < other.Start
	}
	return m.ID < other.ID
}

// Contains reports whether other is reachable through m's arguments
func (m *Mention) Contains(other *Mention) bool {
	for _, args := range m.Arguments {
		for _, a := range args {
			if a == other || a.ID == other.ID || a.Contains(other) {
				return true
			}
		}
	}
	return false
}

// Arg returns the mentions filling a role
func (m *Mention) Arg(role string) []*Mention {
	return m.Arguments[role]
}
