// Package sieve implements the ordered assembly stages: deduplication into
// EERs followed by precedence strategies that add edges between EERs.
package sieve

import (
	"fmt"

	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/model"
)

// Sieve names, also used as the FoundBy tag of the relations they add
const (
	NameTrackMentions          = "trackMentions"
	NameWithinRbPrecedence     = "withinRbPrecedence"
	NameReichenbachPrecedence  = "reichenbachPrecedence"
	NameBetweenRbPrecedence    = "betweenRbPrecedence"
	NameFeatureBasedClassifier = "featureBasedClassifier"
)

// Func transforms the manager accumulated so far
type Func func(mentions []*model.Mention, manager *assembly.Manager) (*assembly.Manager, error)

// Sieve is a named assembly stage
type Sieve struct {
	Name  string
	Apply Func
}

// Pipeline is an ordered list of sieves. Each sieve sees the state left by
// the ones before it, so order matters.
type Pipeline []Sieve

// AndThen returns a new pipeline running p followed by next
func (p Pipeline) AndThen(next ...Sieve) Pipeline {
	out := make(Pipeline, 0, len(p)+len(next))
	out = append(out, p...)
	return append(out, next...)
}

// Apply threads manager through every sieve in order. The first failing
// sieve aborts the rest; the returned manager holds what earlier sieves
// committed.
func (p Pipeline) Apply(mentions []*model.Mention, manager *assembly.Manager) (*assembly.Manager, error) {
	for _, s := range p {
		next, err := s.Apply(mentions, manager)
		if err != nil {
			return manager, fmt.Errorf("sieve %s: %w", s.Name, err)
		}
		manager = next
	}
	return manager, nil
}

// Names lists the sieve names in application order
func (p Pipeline) Names() []string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.Name
	}
	return names
}
