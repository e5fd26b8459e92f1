package classify

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Label is the relation predicted for an ordered event pair (E1 before E2 in text)
type Label string

const (
	LabelNone         Label = "None"
	LabelE1PrecedesE2 Label = "E1 precedes E2"
	LabelE2PrecedesE1 Label = "E2 precedes E1"
)

// Labels lists the classes in tie-breaking order
var Labels = []Label{LabelNone, LabelE1PrecedesE2, LabelE2PrecedesE1}

// Example is one labeled training pair
type Example struct {
	Features []string
	Label    Label
}

// Model is an averaged multiclass perceptron over sparse binary features
type Model struct {
	Weights   map[string]map[Label]float64 `yaml:"weights"`
	Epochs    int                          `yaml:"epochs"`
	TrainedOn int                          `yaml:"trained_on"`
}

// NewModel creates an untrained model; it predicts LabelNone for every pair
func NewModel() *Model {
	return &Model{Weights: make(map[string]map[Label]float64)}
}

// Scores returns the score of every label
func (m *Model) Scores(features []string) map[Label]float64 {
	scores := make(map[Label]float64, len(Labels))
	for _, l := range Labels {
		scores[l] = 0
	}
	for _, f := range features {
		for l, w := range m.Weights[f] {
			scores[l] += w
		}
	}
	return scores
}

// Predict returns the best label. A precedence label must beat LabelNone by
// at least margin, otherwise LabelNone is returned.
func (m *Model) Predict(features []string, margin float64) (Label, float64) {
	scores := m.Scores(features)
	best := LabelNone
	for _, l := range Labels[1:] {
		if scores[l] > scores[best] {
			best = l
		}
	}
	if best != LabelNone && scores[best]-scores[LabelNone] < margin {
		return LabelNone, scores[LabelNone]
	}
	return best, scores[best]
}

// Train fits an averaged perceptron. Example order is shuffled per epoch
// with a fixed seed so training is reproducible.
func Train(examples []Example, epochs int, seed int64) *Model {
	if epochs <= 0 {
		epochs = 1
	}

	current := NewModel()
	totals := make(map[string]map[Label]float64)
	stamps := make(map[string]map[Label]int)
	step := 0

	update := func(feature string, l Label, delta float64) {
		if current.Weights[feature] == nil {
			current.Weights[feature] = make(map[Label]float64)
			totals[feature] = make(map[Label]float64)
			stamps[feature] = make(map[Label]int)
		}
		w := current.Weights[feature][l]
		totals[feature][l] += float64(step-stamps[feature][l]) * w
		stamps[feature][l] = step
		current.Weights[feature][l] = w + delta
	}

	order := make([]int, len(examples))
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewSource(seed))

	for epoch := 0; epoch < epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, idx := range order {
			ex := examples[idx]
			guess, _ := current.Predict(ex.Features, 0)
			if guess != ex.Label {
				for _, f := range ex.Features {
					update(f, ex.Label, 1)
					update(f, guess, -1)
				}
			}
			step++
		}
	}

	averaged := NewModel()
	averaged.Epochs = epochs
	averaged.TrainedOn = len(examples)
	for f, byLabel := range current.Weights {
		for l, w := range byLabel {
			total := totals[f][l] + float64(step-stamps[f][l])*w
			if avg := total / float64(step); avg != 0 {
				if averaged.Weights[f] == nil {
					averaged.Weights[f] = make(map[Label]float64)
				}
				averaged.Weights[f][l] = avg
			}
		}
	}
	return averaged
}

// Features returns the feature names with non-zero weight, sorted
func (m *Model) Features() []string {
	out := make([]string, 0, len(m.Weights))
	for f := range m.Weights {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Load reads a model saved with Save
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	m := NewModel()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if m.Weights == nil {
		m.Weights = make(map[string]map[Label]float64)
	}
	for f, byLabel := range m.Weights {
		for l := range byLabel {
			if !validLabel(l) {
				return nil, fmt.Errorf("feature %q: unknown label %q", f, l)
			}
		}
	}
	return m, nil
}

// Save writes the model as YAML
func (m *Model) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}

func validLabel(l Label) bool {
	for _, known := range Labels {
		if l == known {
			return true
		}
	}
	return false
}
