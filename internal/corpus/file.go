// Package corpus loads tokenized documents, extracted mentions and gold
// precedence annotations.
package corpus

// File is the on-disk corpus format (YAML or JSON)
type File struct {
	Documents   []DocumentRecord `json:"documents" yaml:"documents"`
	Mentions    []MentionRecord  `json:"mentions" yaml:"mentions"`
	Annotations []Annotation     `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// DocumentRecord is a document with its sentences
type DocumentRecord struct {
	ID        string           `json:"id" yaml:"id"`
	Sentences []SentenceRecord `json:"sentences" yaml:"sentences"`
}

// SentenceRecord lists tokens and tags, either as arrays or as
// whitespace-separated strings
type SentenceRecord struct {
	Words []string `json:"words,omitempty" yaml:"words,omitempty"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Text  string   `json:"text,omitempty" yaml:"text,omitempty"`
	POS   string   `json:"pos,omitempty" yaml:"pos,omitempty"`
}

// MentionRecord is a mention whose arguments reference other mentions by ID
type MentionRecord struct {
	ID           string              `json:"id" yaml:"id"`
	Label        string              `json:"label" yaml:"label"`
	Document     string              `json:"document" yaml:"document"`
	Sentence     int                 `json:"sentence" yaml:"sentence"`
	Start        int                 `json:"start" yaml:"start"`
	End          int                 `json:"end" yaml:"end"`
	Trigger      *int                `json:"trigger,omitempty" yaml:"trigger,omitempty"`
	Text         string              `json:"text,omitempty" yaml:"text,omitempty"`
	FoundBy      string              `json:"found_by" yaml:"found_by"`
	Negated      bool                `json:"negated,omitempty" yaml:"negated,omitempty"`
	Hypothesized bool                `json:"hypothesized,omitempty" yaml:"hypothesized,omitempty"`
	Arguments    map[string][]string `json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// Annotation is a hand-labeled relation between two event mentions, E1
// occurring before E2 in the text
type Annotation struct {
	E1    string `json:"e1" yaml:"e1"`
	E2    string `json:"e2" yaml:"e2"`
	Label string `json:"label" yaml:"label"`
}

// Annotation labels
const (
	LabelE1PrecedesE2  = "E1 precedes E2"
	LabelE2PrecedesE1  = "E2 precedes E1"
	LabelNone          = "None"
	LabelEquivalent    = "Equivalent"
	LabelE1SpecifiesE2 = "E1 specifies E2"
	LabelE2SpecifiesE1 = "E2 specifies E1"
	LabelBug           = "Bug"
)

var nonPrecedenceLabels = map[string]bool{
	LabelNone:          true,
	LabelEquivalent:    true,
	LabelE1SpecifiesE2: true,
	LabelE2SpecifiesE1: true,
	LabelBug:           true,
}
