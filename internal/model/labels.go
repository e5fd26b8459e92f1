package model

import "sort"

// Argument roles
const (
	RoleTheme       = "theme"
	RoleController  = "controller"
	RoleControlled  = "controlled"
	RoleSite        = "site"
	RoleSource      = "source"
	RoleDestination = "destination"
	RoleBefore      = "before"
	RoleAfter       = "after"
)

// LabelPrecedence marks the evidence mentions created by precedence sieves
const LabelPrecedence = "Precedence"

var entityLabels = map[string]struct{}{
	"Gene_or_gene_product": {},
	"Simple_chemical":      {},
	"Complex":              {},
	"Family":               {},
	"Cellular_component":   {},
	"Site":                 {},
	"BioProcess":           {},
	"Species":              {},
	"CellLine":             {},
	"CellType":             {},
	"Organ":                {},
	"TissueType":           {},
}

// eventLabels maps each event label to the roles it must carry
var eventLabels = map[string][]string{
	"Phosphorylation":     {RoleTheme},
	"Dephosphorylation":   {RoleTheme},
	"Ubiquitination":      {RoleTheme},
	"Deubiquitination":    {RoleTheme},
	"Acetylation":         {RoleTheme},
	"Deacetylation":       {RoleTheme},
	"Methylation":         {RoleTheme},
	"Demethylation":       {RoleTheme},
	"Hydroxylation":       {RoleTheme},
	"Sumoylation":         {RoleTheme},
	"Glycosylation":       {RoleTheme},
	"Farnesylation":       {RoleTheme},
	"Ribosylation":        {RoleTheme},
	"Hydrolysis":          {RoleTheme},
	"Transcription":       {RoleTheme},
	"Amount":              {RoleTheme},
	"Binding":             {RoleTheme},
	"Translocation":       {RoleTheme},
	"Positive_activation": {RoleController, RoleControlled},
	"Negative_activation": {RoleController, RoleControlled},
	"Positive_regulation": {RoleController, RoleControlled},
	"Negative_regulation": {RoleController, RoleControlled},
}

// IsKnownLabel reports whether the label belongs to the entity or event vocabulary
func IsKnownLabel(label string) bool {
	if _, ok := entityLabels[label]; ok {
		return true
	}
	_, ok := eventLabels[label]
	return ok
}

// RequiredRoles returns the argument roles an event label must carry
func RequiredRoles(label string) []string {
	return eventLabels[label]
}

// ValidateMention rejects mentions that cannot enter the sieve pipeline
func ValidateMention(m *Mention) error {
	if !IsKnownLabel(m.Label) {
		return &UnsupportedRelationLabelError{Label: m.Label, Context: "mention " + m.ID}
	}
	for _, role := range RequiredRoles(m.Label) {
		if len(m.Arguments[role]) == 0 {
			return &MissingArgumentError{MentionID: m.ID, Label: m.Label, Role: role}
		}
	}
	return nil
}

// ValidateMentions validates every mention and every argument reachable from
// it, and rejects argument graphs in which a mention is its own argument.
func ValidateMentions(mentions []*Mention) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(mentions))
	var visit func(m *Mention) error
	visit = func(m *Mention) error {
		switch state[m.ID] {
		case visiting:
			return &CyclicArgumentError{MentionID: m.ID}
		case done:
			return nil
		}
		state[m.ID] = visiting
		for _, role := range sortedRoles(m.Arguments) {
			for _, a := range m.Arguments[role] {
				if err := visit(a); err != nil {
					return err
				}
			}
		}
		state[m.ID] = done
		return ValidateMention(m)
	}
	for _, m := range mentions {
		if err := visit(m); err != nil {
			return err
		}
	}
	return nil
}

func sortedRoles(args map[string][]*Mention) []string {
	roles := make([]string, 0, len(args))
	for r := range args {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}
