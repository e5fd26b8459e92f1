package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/precedence/internal/assembly"
)

// RenderRelations writes one tab-separated line per precedence edge:
// before and after hashes with their EER labels, the asserting sieve, the
// rule and the evidence mention IDs.
func RenderRelations(w io.Writer, manager *assembly.Manager) error {
	if _, err := fmt.Fprintln(w, "before\tbefore_label\tafter\tafter_label\tsieve\trule\tevidence"); err != nil {
		return err
	}
	for _, rel := range manager.GetPrecedenceRelations() {
		ids := make([]string, len(rel.Evidence))
		for i, e := range rel.Evidence {
			ids[i] = e.ID
		}
		if _, err := fmt.Fprintf(w, "%016x\t%s\t%016x\t%s\t%s\t%s\t%s\n",
			rel.Before, eerLabel(manager, rel.Before),
			rel.After, eerLabel(manager, rel.After),
			rel.FoundBy, rel.RuleFoundBy(), strings.Join(ids, ",")); err != nil {
			return err
		}
	}
	return nil
}

func eerLabel(manager *assembly.Manager, hash uint64) string {
	if eer, ok := manager.EERByHash(hash); ok {
		return eer.Label
	}
	return "?"
}
