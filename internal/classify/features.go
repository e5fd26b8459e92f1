package classify

import (
	"strings"

	"github.com/ppiankov/precedence/internal/assembly"
	"github.com/ppiankov/precedence/internal/extract"
	"github.com/ppiankov/precedence/internal/model"
)

const maxBetweenWords = 10

// PairFeatures describes an ordered event pair; a must come before b in the text.
func PairFeatures(a, b *model.Mention) []string {
	f := []string{
		"bias",
		"l1=" + a.Label,
		"l2=" + b.Label,
		"l1l2=" + a.Label + "|" + b.Label,
		"t1=" + a.TriggerWord(),
		"t2=" + b.TriggerWord(),
		"t1t2=" + a.TriggerWord() + "|" + b.TriggerWord(),
		"pos1=" + a.TriggerTag(),
		"pos2=" + b.TriggerTag(),
	}

	ta1, ta2 := tenseAspect(a), tenseAspect(b)
	f = append(f, "ta1="+ta1, "ta2="+ta2, "ta1ta2="+ta1+"|"+ta2)

	if a.Negated {
		f = append(f, "neg1")
	}
	if b.Negated {
		f = append(f, "neg2")
	}
	if a.Hypothesized || b.Hypothesized {
		f = append(f, "hyp")
	}
	if sharesArgument(a, b) {
		f = append(f, "shared_arg")
	}

	dist := b.Sentence - a.Sentence
	switch {
	case dist == 0:
		f = append(f, "sdist=0", "tdist="+bucket(b.Start-a.End))
		if s, ok := a.SentenceOf(); ok && a.End <= b.Start && b.Start <= len(s.Words) {
			between := s.Words[a.End:b.Start]
			if len(between) > maxBetweenWords {
				between = between[:maxBetweenWords]
			}
			for _, w := range between {
				f = append(f, "bw="+strings.ToLower(w))
			}
		}
	case dist == 1:
		f = append(f, "sdist=1")
	default:
		f = append(f, "sdist=2+")
	}

	if dist > 0 {
		if s, ok := b.SentenceOf(); ok && len(s.Words) > 0 {
			first := strings.ToLower(s.Words[0])
			f = append(f, "first2="+first)
			if len(s.Words) > 1 {
				f = append(f, "first2_2="+first+"_"+strings.ToLower(s.Words[1]))
			}
		}
	}

	return f
}

func tenseAspect(m *model.Mention) string {
	s, ok := m.SentenceOf()
	if !ok {
		return "none"
	}
	ta, ok := extract.DetectTenseAspect(s.Words, s.Tags, m.Trigger)
	if !ok {
		return "none"
	}
	return ta.String()
}

func sharesArgument(a, b *model.Mention) bool {
	forms := make(map[string]bool)
	for _, args := range a.Arguments {
		for _, arg := range args {
			forms[assembly.Canonical(arg)] = true
		}
	}
	for _, args := range b.Arguments {
		for _, arg := range args {
			if forms[assembly.Canonical(arg)] {
				return true
			}
		}
	}
	return false
}

func bucket(n int) string {
	switch {
	case n <= 2:
		return "0-2"
	case n <= 5:
		return "3-5"
	case n <= 10:
		return "6-10"
	default:
		return ">10"
	}
}
