package assembly

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/ppiankov/precedence/internal/model"
)

// Canonical returns the normalized form two mentions share when they denote the
// same event. Argument order, role order and surface variation of entity text
// (case, spacing, punctuation) do not affect it.
func Canonical(m *model.Mention) string {
	if !m.IsEvent() {
		return m.Label + ":" + normalizeText(entityText(m))
	}

	roles := make([]string, 0, len(m.Arguments))
	for role, args := range m.Arguments {
		if len(args) > 0 {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)

	var b strings.Builder
	b.WriteString(m.Label)
	fmt.Fprintf(&b, "(neg=%t,hyp=%t", m.Negated, m.Hypothesized)
	for _, role := range roles {
		args := m.Arguments[role]
		forms := make([]string, 0, len(args))
		seen := make(map[string]bool, len(args))
		for _, a := range args {
			f := Canonical(a)
			if !seen[f] {
				seen[f] = true
				forms = append(forms, f)
			}
		}
		sort.Strings(forms)
		b.WriteString(";")
		b.WriteString(role)
		b.WriteString("=[")
		b.WriteString(strings.Join(forms, ","))
		b.WriteString("]")
	}
	b.WriteString(")")
	return b.String()
}

// EquivalenceHash hashes the canonical form. Equal hashes are intended merges.
func EquivalenceHash(m *model.Mention) uint64 {
	sum := sha256.Sum256([]byte(Canonical(m)))
	return binary.BigEndian.Uint64(sum[:8])
}

func entityText(m *model.Mention) string {
	if m.Text != "" {
		return m.Text
	}
	s, ok := m.SentenceOf()
	if !ok || m.Start < 0 || m.End > len(s.Words) || m.Start >= m.End {
		return ""
	}
	return strings.Join(s.Words[m.Start:m.End], " ")
}

// normalizeText keeps lowercased letters and digits only
func normalizeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
