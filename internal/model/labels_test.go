package model

import (
	"errors"
	"testing"
)

func TestValidateMentions_Cycle(t *testing.T) {
	g := &Mention{ID: "g", Label: "Gene_or_gene_product"}
	a := &Mention{ID: "a", Label: "Negative_regulation"}
	b := &Mention{ID: "b", Label: "Negative_regulation"}
	a.Arguments = map[string][]*Mention{RoleController: {g}, RoleControlled: {b}}
	b.Arguments = map[string][]*Mention{RoleController: {g}, RoleControlled: {a}}

	err := ValidateMentions([]*Mention{a})

	var cyclic *CyclicArgumentError
	if !errors.As(err, &cyclic) {
		t.Fatalf("expected CyclicArgumentError, got %v", err)
	}
}

func TestValidateMentions_SelfArgument(t *testing.T) {
	p := &Mention{ID: "p", Label: "Phosphorylation"}
	p.Arguments = map[string][]*Mention{RoleTheme: {p}}

	var cyclic *CyclicArgumentError
	if err := ValidateMentions([]*Mention{p}); !errors.As(err, &cyclic) || cyclic.MentionID != "p" {
		t.Errorf("expected CyclicArgumentError for p, got %v", err)
	}
}

func TestValidateMentions_ReachableArguments(t *testing.T) {
	bad := &Mention{ID: "bad", Label: "Phosphorylation"}
	reg := &Mention{ID: "reg", Label: "Positive_regulation", Arguments: map[string][]*Mention{
		RoleController: {{ID: "g", Label: "Gene_or_gene_product"}},
		RoleControlled: {bad},
	}}

	err := ValidateMentions([]*Mention{reg})

	var missing *MissingArgumentError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingArgumentError, got %v", err)
	}
	if missing.MentionID != "bad" || missing.Role != RoleTheme {
		t.Errorf("expected bad/theme, got %s/%s", missing.MentionID, missing.Role)
	}
}

func TestValidateMentions_SharedArgumentIsNotACycle(t *testing.T) {
	g := &Mention{ID: "g", Label: "Gene_or_gene_product"}
	p1 := &Mention{ID: "p1", Label: "Phosphorylation", Arguments: map[string][]*Mention{RoleTheme: {g}}}
	p2 := &Mention{ID: "p2", Label: "Ubiquitination", Arguments: map[string][]*Mention{RoleTheme: {g}}}

	if err := ValidateMentions([]*Mention{p1, p2, g}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
