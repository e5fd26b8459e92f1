package extract

import "strings"

// Direction orders two events by their position in the text
type Direction int

const (
	None     Direction = iota
	Forward            // The earlier mention happens first
	Backward           // The later mention happens first
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Cue is a lexical precedence marker
type Cue struct {
	Phrase    []string  // Lowercased tokens
	Direction Direction // Ordering implied for (earlier, later) mentions
	Name      string    // Rule name, e.g. "followed_by"
}

// CueMatch is a cue found in a token sequence
type CueMatch struct {
	Cue   Cue
	Index int // Token offset of the first cue token
}

// CueExtractor finds precedence cues in tokenized text
type CueExtractor struct {
	between   []Cue // Between two events of one sentence
	leading   []Cue // Clause-initial, before the first event of a sentence
	discourse []Cue // Sentence-initial, linking to the previous sentence
}

// NewCueExtractor creates a cue extractor with the default lexicon
func NewCueExtractor() *CueExtractor {
	return &CueExtractor{
		between: buildCues(map[Direction][]string{
			Forward: {
				"then", "subsequently", "before", "prior to", "followed by",
				"leads to", "led to", "leading to", "results in", "resulted in",
				"resulting in", "which in turn", "thereafter", "afterwards",
			},
			Backward: {
				"after", "following", "upon", "once", "preceded by",
				"subsequent to", "as a result of",
			},
		}),
		leading: buildCues(map[Direction][]string{
			Forward:  {"after", "following", "upon", "once"},
			Backward: {"before", "prior to"},
		}),
		discourse: buildCues(map[Direction][]string{
			Forward: {
				"then", "subsequently", "afterwards", "afterward", "after that",
				"after this", "later", "next", "thereafter", "following this",
				"following that", "following these events", "in turn",
			},
			Backward: {
				"before that", "before this", "previously", "earlier",
				"prior to this", "prior to that",
			},
		}),
	}
}

// Between returns the first cue occurring anywhere in words
func (e *CueExtractor) Between(words []string) (CueMatch, bool) {
	lower := lowerAll(words)
	for i := range lower {
		if c, ok := longestAt(e.between, lower, i); ok {
			return CueMatch{Cue: c, Index: i}, true
		}
	}
	return CueMatch{}, false
}

// Leading returns a cue that opens the token sequence
func (e *CueExtractor) Leading(words []string) (CueMatch, bool) {
	c, ok := longestAt(e.leading, lowerAll(words), 0)
	if !ok {
		return CueMatch{}, false
	}
	return CueMatch{Cue: c, Index: 0}, true
}

// Discourse returns a cue starting within the first window tokens
func (e *CueExtractor) Discourse(words []string, window int) (CueMatch, bool) {
	lower := lowerAll(words)
	for i := 0; i < window && i < len(lower); i++ {
		if c, ok := longestAt(e.discourse, lower, i); ok {
			return CueMatch{Cue: c, Index: i}, true
		}
	}
	return CueMatch{}, false
}

// buildCues converts phrase lists into cues, longest phrases first
func buildCues(byDirection map[Direction][]string) []Cue {
	var cues []Cue
	seen := make(map[string]bool)
	for _, dir := range []Direction{Forward, Backward} {
		for _, phrase := range byDirection[dir] {
			key := strings.ToLower(strings.TrimSpace(phrase))
			if seen[key] {
				continue
			}
			seen[key] = true
			cues = append(cues, Cue{
				Phrase:    strings.Fields(key),
				Direction: dir,
				Name:      strings.ReplaceAll(key, " ", "_"),
			})
		}
	}
	// Stable longest-first so "after that" wins over "after"
	for i := 1; i < len(cues); i++ {
		for j := i; j > 0 && len(cues[j].Phrase) > len(cues[j-1].Phrase); j-- {
			cues[j], cues[j-1] = cues[j-1], cues[j]
		}
	}
	return cues
}

func longestAt(cues []Cue, words []string, i int) (Cue, bool) {
	for _, c := range cues {
		if matchAt(c.Phrase, words, i) {
			return c, true
		}
	}
	return Cue{}, false
}

func matchAt(phrase, words []string, i int) bool {
	if i+len(phrase) > len(words) {
		return false
	}
	for k, w := range phrase {
		if words[i+k] != w {
			return false
		}
	}
	return true
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
