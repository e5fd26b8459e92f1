package model

import "fmt"

// MissingArgumentError reports an event mention lacking a required role
type MissingArgumentError struct {
	MentionID string
	Label     string
	Role      string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("mention %s (%s) is missing required argument %q", e.MentionID, e.Label, e.Role)
}

// UnsupportedRelationLabelError reports an event or gold relation label outside the known vocabulary
type UnsupportedRelationLabelError struct {
	Label   string
	Context string
}

func (e *UnsupportedRelationLabelError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("unsupported label %q", e.Label)
	}
	return fmt.Sprintf("unsupported label %q in %s", e.Label, e.Context)
}

// CyclicArgumentError reports a mention that is, directly or through other
// arguments, its own argument
type CyclicArgumentError struct {
	MentionID string
}

func (e *CyclicArgumentError) Error() string {
	return fmt.Sprintf("mention %s is its own argument", e.MentionID)
}
