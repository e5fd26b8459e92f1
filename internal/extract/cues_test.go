package extract

import (
	"strings"
	"testing"
)

func TestCueExtractor_Between(t *testing.T) {
	extractor := NewCueExtractor()

	tests := []struct {
		text      string
		wantName  string
		wantDir   Direction
		wantFound bool
	}{
		{"and then", "then", Forward, true},
		{", which is followed by", "followed_by", Forward, true},
		{"only after", "after", Backward, true},
		{"Following", "following", Backward, true},
		{"and binds to", "", None, false},
		{"which in turn triggers", "which_in_turn", Forward, true},
	}

	for _, tt := range tests {
		match, ok := extractor.Between(strings.Fields(tt.text))
		if ok != tt.wantFound {
			t.Errorf("%q: expected found=%v, got %v", tt.text, tt.wantFound, ok)
			continue
		}
		if !ok {
			continue
		}
		if match.Cue.Name != tt.wantName {
			t.Errorf("%q: expected cue %s, got %s", tt.text, tt.wantName, match.Cue.Name)
		}
		if match.Cue.Direction != tt.wantDir {
			t.Errorf("%q: expected direction %s, got %s", tt.text, tt.wantDir, match.Cue.Direction)
		}
	}
}

func TestCueExtractor_LeadingOnlyAtStart(t *testing.T) {
	extractor := NewCueExtractor()

	if _, ok := extractor.Leading([]string{"Prior", "to"}); !ok {
		t.Error("Expected leading cue 'prior to'")
	}
	if _, ok := extractor.Leading([]string{"Shortly", "after"}); ok {
		t.Error("Expected no leading cue when the sentence does not open with it")
	}
}

func TestCueExtractor_DiscoursePrefersLongest(t *testing.T) {
	extractor := NewCueExtractor()

	match, ok := extractor.Discourse(strings.Fields("After that , Y translocates"), 4)
	if !ok {
		t.Fatal("Expected discourse cue")
	}
	if match.Cue.Name != "after_that" {
		t.Errorf("Expected after_that, got %s", match.Cue.Name)
	}
	if match.Cue.Direction != Forward {
		t.Errorf("Expected forward direction, got %s", match.Cue.Direction)
	}

	match, ok = extractor.Discourse(strings.Fields("Before this , X was phosphorylated"), 4)
	if !ok || match.Cue.Direction != Backward {
		t.Errorf("Expected backward discourse cue, got %v (found=%v)", match.Cue, ok)
	}
}

func TestCueExtractor_DiscourseWindow(t *testing.T) {
	extractor := NewCueExtractor()
	words := strings.Fields("In these cells Y was then degraded")

	if _, ok := extractor.Discourse(words, 4); ok {
		t.Error("Expected no cue inside a 4 token window")
	}
	if _, ok := extractor.Discourse(words, 6); !ok {
		t.Error("Expected cue inside a 6 token window")
	}
}
