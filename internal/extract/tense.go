package extract

import "strings"

// Tense locates the reference time R relative to the speech time S
type Tense int

const (
	TenseUnknown Tense = iota
	Past
	Present
	Future
)

// Aspect locates the event time E relative to R
type Aspect int

const (
	Simple Aspect = iota
	Perfect
	Progressive
	PerfectProgressive
)

// TenseAspect is the Reichenbach description of a verbal trigger
type TenseAspect struct {
	Tense  Tense
	Aspect Aspect
}

func (ta TenseAspect) String() string {
	tense := [...]string{"unknown", "past", "present", "future"}[ta.Tense]
	aspect := [...]string{"simple", "perfect", "progressive", "perfect_progressive"}[ta.Aspect]
	return tense + "_" + aspect
}

// point relations on the timeline
type relation int

const (
	relUnknown relation = iota
	relBefore
	relSame
	relAfter
)

var haveForms = map[string]bool{"have": true, "has": true, "had": true, "having": true, "'ve": true, "'d": true}
var beForms = map[string]bool{"be": true, "is": true, "are": true, "am": true, "was": true, "were": true, "been": true, "being": true, "'s": true, "'re": true}
var futureModals = map[string]bool{"will": true, "shall": true, "'ll": true}

const maxAuxiliaries = 4

// DetectTenseAspect derives tense and aspect of the verb at trigger from the
// POS tags of the trigger and its auxiliaries. Nominal triggers and verbs
// under non-future modals have no tense.
func DetectTenseAspect(words, tags []string, trigger int) (TenseAspect, bool) {
	if trigger < 0 || trigger >= len(words) || trigger >= len(tags) {
		return TenseAspect{}, false
	}
	tag := tags[trigger]
	if !strings.HasPrefix(tag, "VB") {
		return TenseAspect{}, false
	}

	// Auxiliaries left of the trigger, nearest first; adverbs are skipped
	var aux []string
	var auxTags []string
	for i := trigger - 1; i >= 0 && len(aux) < maxAuxiliaries; i-- {
		t := tags[i]
		if strings.HasPrefix(t, "RB") {
			continue
		}
		if t != "MD" && !strings.HasPrefix(t, "VB") {
			break
		}
		aux = append(aux, strings.ToLower(words[i]))
		auxTags = append(auxTags, t)
	}

	perfect := false
	progressive := tag == "VBG"
	for _, a := range aux {
		if haveForms[a] {
			perfect = true
		}
	}
	if progressive {
		hasBe := false
		for _, a := range aux {
			if beForms[a] {
				hasBe = true
			}
		}
		if !hasBe {
			return TenseAspect{}, false
		}
	}

	aspect := Simple
	switch {
	case perfect && progressive:
		aspect = PerfectProgressive
	case perfect:
		aspect = Perfect
	case progressive:
		aspect = Progressive
	}

	if len(aux) == 0 {
		switch tag {
		case "VBD":
			return TenseAspect{Tense: Past, Aspect: aspect}, true
		case "VBZ", "VBP":
			return TenseAspect{Tense: Present, Aspect: aspect}, true
		default:
			return TenseAspect{}, false
		}
	}

	// The leftmost auxiliary is the finite verb
	finite, finiteTag := aux[len(aux)-1], auxTags[len(aux)-1]
	switch {
	case finiteTag == "MD" && futureModals[finite]:
		return TenseAspect{Tense: Future, Aspect: aspect}, true
	case finiteTag == "MD":
		return TenseAspect{}, false
	case finiteTag == "VBD":
		return TenseAspect{Tense: Past, Aspect: aspect}, true
	case finiteTag == "VBZ" || finiteTag == "VBP":
		return TenseAspect{Tense: Present, Aspect: aspect}, true
	default:
		return TenseAspect{}, false
	}
}

// eventToReference relates E to R
func (ta TenseAspect) eventToReference() relation {
	if ta.Aspect == Perfect || ta.Aspect == PerfectProgressive {
		return relBefore
	}
	return relSame
}

// referenceToSpeech relates R to S
func (ta TenseAspect) referenceToSpeech() relation {
	switch ta.Tense {
	case Past:
		return relBefore
	case Present:
		return relSame
	case Future:
		return relAfter
	default:
		return relUnknown
	}
}

// eventToSpeech composes E-R and R-S
func (ta TenseAspect) eventToSpeech() relation {
	er, rs := ta.eventToReference(), ta.referenceToSpeech()
	switch {
	case rs == relUnknown:
		return relUnknown
	case er == relSame:
		return rs
	case rs == relAfter:
		return relUnknown // E<R, R>S leaves E and S unordered
	default:
		return relBefore
	}
}

// ReichenbachOrder orders two events described by tense and aspect, a being the
// earlier mention in the text. Events sharing a tense share R and are ordered by
// aspect; otherwise both are placed relative to S and ordered when that is
// determinate.
func ReichenbachOrder(a, b TenseAspect) Direction {
	if a.Tense == TenseUnknown || b.Tense == TenseUnknown {
		return None
	}

	if a.Tense == b.Tense {
		ea, eb := a.eventToReference(), b.eventToReference()
		switch {
		case ea == relBefore && eb == relSame:
			return Forward
		case ea == relSame && eb == relBefore:
			return Backward
		default:
			return None
		}
	}

	sa, sb := a.eventToSpeech(), b.eventToSpeech()
	if sa == relUnknown || sb == relUnknown || sa == sb {
		return None
	}
	if sa < sb {
		return Forward
	}
	return Backward
}
