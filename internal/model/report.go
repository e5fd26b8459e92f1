package model

import "time"

// AllRules is the rule column value of a sieve's aggregate row
const AllRules = "**ALL**"

// Report is the outcome of scoring sieve pipelines against gold relations
type Report struct {
	Corpus      string    `json:"corpus"`       // Corpus the report was computed on
	GeneratedAt time.Time `json:"generated_at"` // When the evaluation ran
	Gold        int       `json:"gold"`         // Number of gold precedence relations
	Rows        []Row     `json:"rows"`         // Aggregate and per-rule rows, ascending precision
	Conflicts   []string  `json:"conflicts,omitempty"`
}

// Row is one line of the evaluation report
type Row struct {
	Sieve     string  `json:"sieve"`
	Rule      string  `json:"rule"` // Originating rule, or AllRules
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	TP        int     `json:"tp"`
	FP        int     `json:"fp"`
	FN        int     `json:"fn"`
}
